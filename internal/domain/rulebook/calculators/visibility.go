package calculators

import (
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
)

// ShowDownstream reports whether the level, prior enhancement and modifier
// sections apply. That is the case once a priceable choice has been made.
func ShowDownstream(sel enhancement.Selection) bool {
	return IsComplete(sel)
}

// Visibility derives which sections a front end should show for sel
func Visibility(sel enhancement.Selection) enhancement.Visibility {
	downstream := ShowDownstream(sel)

	return enhancement.Visibility{
		ShowPlayerPlusOneEffects: sel.Category == enhancement.CategoryPlayerPlusOne,
		ShowSummonPlusOneEffects: sel.Category == enhancement.CategorySummonPlusOne,
		ShowHexCount:             sel.Category == enhancement.CategoryAttackHex,
		ShowOtherEffects:         sel.Category == enhancement.CategoryOtherEffect,
		ShowDownstream:           downstream,
		ShowMultipleTargets:      downstream && DoubleMultipleTargets(sel),
		ShowLostCard:             downstream,
		ShowPersistentBonus:      downstream && sel.Category != enhancement.CategorySummonPlusOne,
	}
}

// Quote prices sel and bundles the result with its visibility
func (c *CostCalculator) Quote(sel enhancement.Selection, table *rulebook.RuleTable) (*enhancement.Quote, error) {
	price, breakdown, err := c.CalculateWithBreakdown(sel, table)
	if err != nil {
		return nil, err
	}

	return &enhancement.Quote{
		Variant:    string(table.Variant),
		Selection:  sel,
		Price:      price,
		Complete:   IsComplete(sel),
		Visibility: Visibility(sel),
		Breakdown:  breakdown,
	}, nil
}
