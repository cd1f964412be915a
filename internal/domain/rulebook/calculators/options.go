package calculators

import (
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
)

// CategoryOption is one selectable category
type CategoryOption struct {
	Category enhancement.Category `json:"category"`
	Title    string               `json:"title"`
	Selected bool                 `json:"selected"`
}

// EffectOption is one selectable effect with its base cost
type EffectOption struct {
	ID       enhancement.EffectID `json:"id"`
	Title    string               `json:"title"`
	Icon     string               `json:"icon"`
	Cost     int                  `json:"cost"`
	Selected bool                 `json:"selected"`
}

// NumberOption is one value of a numeric choice together with what it adds to the price
type NumberOption struct {
	Value    int  `json:"value"`
	Cost     int  `json:"cost"`
	Selected bool `json:"selected"`
}

// OptionSet lists the choices a front end can offer for the current selection
type OptionSet struct {
	Categories        []CategoryOption `json:"categories"`
	Effects           []EffectOption   `json:"effects,omitempty"`
	HexCounts         []NumberOption   `json:"hex_counts,omitempty"`
	CardLevels        []NumberOption   `json:"card_levels,omitempty"`
	PriorEnhancements []NumberOption   `json:"prior_enhancements,omitempty"`
	EnhancerLevels    []NumberOption   `json:"enhancer_levels,omitempty"`

	// Substitutions prices abilities missing from the chart. Only set before a
	// category is picked.
	Substitutions []rulebook.Substitution `json:"substitutions,omitempty"`
}

// Options lists the valid choices for sel. Sections that are hidden by
// Visibility are left empty.
func Options(table *rulebook.RuleTable, sel enhancement.Selection) *OptionSet {
	vis := Visibility(sel)
	strategy := table.Strategy

	set := &OptionSet{}

	for _, c := range enhancement.Categories() {
		set.Categories = append(set.Categories, CategoryOption{
			Category: c,
			Title:    c.Title(),
			Selected: c == sel.Category,
		})
	}

	if sel.Category == enhancement.CategoryNone {
		set.Substitutions = table.Substitutions()
	}

	if effects, ok := table.EffectsFor(sel.Category); ok {
		active := sel.ActiveEffect()
		effects.Each(func(id enhancement.EffectID, e enhancement.Effect) bool {
			set.Effects = append(set.Effects, EffectOption{
				ID:       id,
				Title:    e.Title,
				Icon:     e.Icon,
				Cost:     e.Cost,
				Selected: id == active,
			})
			return true
		})
	}

	if vis.ShowHexCount {
		for n := enhancement.MinTargetedHexCount; n <= enhancement.MaxTargetedHexCount; n++ {
			set.HexCounts = append(set.HexCounts, NumberOption{
				Value:    n,
				Cost:     int(attackHexCost(strategy, n)),
				Selected: n == sel.TargetedHexCount,
			})
		}
	}

	if vis.ShowDownstream {
		for lvl := enhancement.MinCardLevel; lvl <= enhancement.MaxCardLevel; lvl++ {
			set.CardLevels = append(set.CardLevels, NumberOption{
				Value:    lvl,
				Cost:     strategy.CostFromCardLevel(lvl, sel.EnhancerLevel),
				Selected: lvl == sel.CardLevel,
			})
		}
		for n := 0; n <= strategy.MaxPriorEnhancements(); n++ {
			set.PriorEnhancements = append(set.PriorEnhancements, NumberOption{
				Value:    n,
				Cost:     strategy.CostFromPriorEnhancements(n, sel.EnhancerLevel),
				Selected: n == sel.PriorEnhancements,
			})
		}
	}

	if strategy.HonoursEnhancerLevel() {
		for lvl := enhancement.MinEnhancerLevel; lvl <= enhancement.MaxEnhancerLevel; lvl++ {
			set.EnhancerLevels = append(set.EnhancerLevels, NumberOption{
				Value:    lvl,
				Selected: lvl == sel.EnhancerLevel,
			})
		}
	}

	return set
}
