package calculators

import (
	"math"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
)

// CostCalculator prices enhancement selections against a rule table
type CostCalculator struct{}

// NewCostCalculator creates a new cost calculator
func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// Calculate returns the gold cost of sel under table. An incomplete selection
// costs 0.
func (c *CostCalculator) Calculate(sel enhancement.Selection, table *rulebook.RuleTable) (int, error) {
	price, _, err := c.CalculateWithBreakdown(sel, table)
	return price, err
}

// CalculateWithBreakdown is Calculate that also reports the intermediate values
func (c *CostCalculator) CalculateWithBreakdown(sel enhancement.Selection, table *rulebook.RuleTable) (int, enhancement.Breakdown, error) {
	var breakdown enhancement.Breakdown

	if table == nil || table.Strategy == nil {
		return 0, breakdown, apperr.InvalidArgument("rule table is required")
	}
	if err := ValidateSelection(sel, table); err != nil {
		return 0, breakdown, err
	}
	if !IsComplete(sel) {
		return 0, breakdown, nil
	}

	strategy := table.Strategy

	base, err := baseCost(sel, table)
	if err != nil {
		return 0, breakdown, err
	}
	breakdown.BaseCost = base

	if sel.HasMultipleTargets && DoubleMultipleTargets(sel) {
		base *= 2
	}
	if sel.IsLostCard {
		base /= 2
	}
	if sel.HasPersistentBonus && sel.Category != enhancement.CategorySummonPlusOne {
		base *= 3
	}
	breakdown.ModifiedBaseCost = base

	breakdown.CardLevelSurcharge = strategy.CostFromCardLevel(sel.CardLevel, sel.EnhancerLevel)
	breakdown.PriorSurcharge = strategy.CostFromPriorEnhancements(sel.PriorEnhancements, sel.EnhancerLevel)

	total := base + float64(breakdown.CardLevelSurcharge) + float64(breakdown.PriorSurcharge)
	adjusted := strategy.PostAdjust(total, sel.EnhancerLevel)

	price := int(math.Ceil(adjusted))
	breakdown.Adjustment = price - int(math.Ceil(total))

	return price, breakdown, nil
}

func baseCost(sel enhancement.Selection, table *rulebook.RuleTable) (float64, error) {
	if sel.Category == enhancement.CategoryAttackHex {
		return attackHexCost(table.Strategy, sel.TargetedHexCount), nil
	}

	effects, _ := table.EffectsFor(sel.Category)
	effect, ok := effects.Get(sel.ActiveEffect())
	if !ok {
		return 0, apperr.InvalidSelectionf("effect %q is not available for %s", sel.ActiveEffect(), sel.Category)
	}
	return float64(effect.Cost), nil
}

// attackHexCost spreads the new hex cost over the hexes already targeted, rounding up
func attackHexCost(strategy rulebook.Strategy, hexes int) float64 {
	return math.Ceil(float64(strategy.BaseNewAttackHexCost()) / float64(hexes))
}

// IsComplete reports whether sel has everything needed for a price
func IsComplete(sel enhancement.Selection) bool {
	switch sel.Category {
	case enhancement.CategoryAttackHex:
		return true
	case enhancement.CategoryPlayerPlusOne, enhancement.CategorySummonPlusOne, enhancement.CategoryOtherEffect:
		return sel.ActiveEffect() != enhancement.EffectNone
	}
	return false
}

// DoubleMultipleTargets reports whether the multiple targets modifier doubles the cost.
// Only the effect of the active category is checked; effects left over in the
// other categories' fields never suppress doubling.
func DoubleMultipleTargets(sel enhancement.Selection) bool {
	if sel.Category == enhancement.CategoryAttackHex {
		return false
	}

	if sel.Category == enhancement.CategoryOtherEffect {
		switch sel.OtherEffect {
		case enhancement.EffectSpecificElement, enhancement.EffectWildElement, enhancement.EffectAnyElement:
			return false
		}
	}

	if sel.Category == enhancement.CategoryPlayerPlusOne && sel.PlayerPlusOneEffect == enhancement.EffectTarget {
		return false
	}

	return true
}

// ValidateSelection checks the fields a price calculation would read
func ValidateSelection(sel enhancement.Selection, table *rulebook.RuleTable) error {
	if sel.Category == enhancement.CategoryNone {
		return nil
	}
	if !sel.Category.IsValid() {
		return apperr.InvalidSelectionf("unknown category %q", sel.Category).
			WithMeta("field", "category")
	}

	switch sel.Category {
	case enhancement.CategoryAttackHex:
		if sel.TargetedHexCount < enhancement.MinTargetedHexCount || sel.TargetedHexCount > enhancement.MaxTargetedHexCount {
			return outOfRange("targeted_hex_count", sel.TargetedHexCount, enhancement.MinTargetedHexCount, enhancement.MaxTargetedHexCount)
		}
	default:
		effect := sel.ActiveEffect()
		if effect == enhancement.EffectNone {
			return nil
		}
		effects, _ := table.EffectsFor(sel.Category)
		if !effects.Has(effect) {
			return apperr.InvalidSelectionf("effect %q is not available for %s in %s", effect, sel.Category, table.Variant).
				WithMeta("field", "effect")
		}
	}

	if sel.CardLevel < enhancement.MinCardLevel || sel.CardLevel > enhancement.MaxCardLevel {
		return outOfRange("card_level", sel.CardLevel, enhancement.MinCardLevel, enhancement.MaxCardLevel)
	}
	if maxPrior := table.Strategy.MaxPriorEnhancements(); sel.PriorEnhancements < 0 || sel.PriorEnhancements > maxPrior {
		return outOfRange("prior_enhancements", sel.PriorEnhancements, 0, maxPrior)
	}
	if sel.EnhancerLevel < enhancement.MinEnhancerLevel || sel.EnhancerLevel > enhancement.MaxEnhancerLevel {
		return outOfRange("enhancer_level", sel.EnhancerLevel, enhancement.MinEnhancerLevel, enhancement.MaxEnhancerLevel)
	}

	return nil
}

func outOfRange(field string, value, lo, hi int) error {
	return apperr.InvalidSelectionf("%s must be between %d and %d, got %d", field, lo, hi, value).
		WithMeta("field", field)
}
