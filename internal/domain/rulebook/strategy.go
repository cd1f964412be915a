package rulebook

import "math"

// Variant names a pricing rule set
type Variant string

const (
	VariantFrosthaven             Variant = "frosthaven"
	VariantFrosthavenNonPermanent Variant = "frosthaven_non_permanent"
	VariantGloomhavenDigital      Variant = "gloomhaven_digital"
)

// Strategy holds the scaling formulas of a variant
type Strategy interface {
	Name() string
	CostFromCardLevel(cardLevel, enhancerLevel int) int
	CostFromPriorEnhancements(count, enhancerLevel int) int
	BaseNewAttackHexCost() int
	MaxPriorEnhancements() int

	// HonoursEnhancerLevel reports whether the enhancer level changes any price
	HonoursEnhancerLevel() bool

	// PostAdjust runs after all surcharges and returns the adjusted cost
	PostAdjust(cost float64, enhancerLevel int) float64
}

// frosthavenEnhancerDiscount is taken off every price once the enhancer building is upgraded
const frosthavenEnhancerDiscount = 10

type frosthavenStrategy struct{}

func (frosthavenStrategy) Name() string { return string(VariantFrosthaven) }

func (frosthavenStrategy) CostFromCardLevel(cardLevel, enhancerLevel int) int {
	perLevel := 25
	if enhancerLevel >= 3 {
		perLevel = 15
	}
	return (cardLevel - 1) * perLevel
}

func (frosthavenStrategy) CostFromPriorEnhancements(count, enhancerLevel int) int {
	return count * frosthavenPerPrior(enhancerLevel)
}

func (frosthavenStrategy) BaseNewAttackHexCost() int { return 200 }

func (frosthavenStrategy) MaxPriorEnhancements() int { return 3 }

func (frosthavenStrategy) HonoursEnhancerLevel() bool { return true }

func (frosthavenStrategy) PostAdjust(cost float64, enhancerLevel int) float64 {
	if enhancerLevel >= 2 {
		cost -= frosthavenEnhancerDiscount
	}
	return cost
}

func frosthavenPerPrior(enhancerLevel int) int {
	if enhancerLevel == 4 {
		return 50
	}
	return 75
}

// frosthavenNonPermanentStrategy prices temporary enhancements. The first prior
// enhancement costs 55 instead of 75 and the total is reduced by a fifth.
type frosthavenNonPermanentStrategy struct {
	frosthavenStrategy
}

func (frosthavenNonPermanentStrategy) Name() string { return string(VariantFrosthavenNonPermanent) }

func (frosthavenNonPermanentStrategy) CostFromPriorEnhancements(count, enhancerLevel int) int {
	if count == 0 {
		return 0
	}
	return 55 + (count-1)*frosthavenPerPrior(enhancerLevel)
}

func (s frosthavenNonPermanentStrategy) PostAdjust(cost float64, enhancerLevel int) float64 {
	return s.frosthavenStrategy.PostAdjust(math.Ceil(cost*0.8), enhancerLevel)
}

type gloomhavenDigitalStrategy struct{}

func (gloomhavenDigitalStrategy) Name() string { return string(VariantGloomhavenDigital) }

func (gloomhavenDigitalStrategy) CostFromCardLevel(cardLevel, _ int) int {
	return (cardLevel - 1) * 10
}

func (gloomhavenDigitalStrategy) CostFromPriorEnhancements(count, _ int) int {
	return count * 20
}

func (gloomhavenDigitalStrategy) BaseNewAttackHexCost() int { return 150 }

func (gloomhavenDigitalStrategy) MaxPriorEnhancements() int { return 4 }

func (gloomhavenDigitalStrategy) HonoursEnhancerLevel() bool { return false }

func (gloomhavenDigitalStrategy) PostAdjust(cost float64, _ int) float64 { return cost }

var strategies = map[string]Strategy{
	string(VariantFrosthaven):             frosthavenStrategy{},
	string(VariantFrosthavenNonPermanent): frosthavenNonPermanentStrategy{},
	string(VariantGloomhavenDigital):      gloomhavenDigitalStrategy{},
}

// StrategyByName returns the built-in strategy registered under name
func StrategyByName(name string) (Strategy, bool) {
	s, ok := strategies[name]
	return s, ok
}
