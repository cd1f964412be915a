package rulebook

import "github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"

// DotShape is the shape of an enhancement slot printed on an ability card
type DotShape string

const (
	DotSquare      DotShape = "square"
	DotCircle      DotShape = "circle"
	DotDiamond     DotShape = "diamond"
	DotDiamondPlus DotShape = "diamond_plus"
)

// DotRule says which stickers a slot shape accepts
type DotRule struct {
	Shape   DotShape `json:"shape"`
	Title   string   `json:"title"`
	Accepts string   `json:"accepts"`
}

// DotRules lists the slot shapes from the most to the least restrictive
func DotRules() []DotRule {
	return []DotRule{
		{Shape: DotSquare, Title: "Square", Accepts: "Only a +1 sticker"},
		{Shape: DotCircle, Title: "Circle", Accepts: "As Square, plus any element sticker"},
		{Shape: DotDiamond, Title: "Diamond", Accepts: "As Circle, plus any negative condition sticker"},
		{Shape: DotDiamondPlus, Title: "Diamond+", Accepts: "As Circle, plus any positive condition sticker"},
	}
}

// Substitution prices an ability that has no row in the cost chart as the
// +1 effect it stands in for
type Substitution struct {
	Subject string               `json:"subject"`
	Effect  enhancement.EffectID `json:"effect"`
	Title   string               `json:"title"`
	Cost    int                  `json:"cost"`
}

var substitutes = []struct {
	subject string
	effect  enhancement.EffectID
}{
	{"Damage trap", enhancement.EffectAttack},
	{"Healing trap", enhancement.EffectHeal},
	{"Moving tokens or tiles", enhancement.EffectMove},
}

// Substitutions returns the stand-in +1 effects priced from the player table.
// Stand-ins the table does not carry are left out.
func (t *RuleTable) Substitutions() []Substitution {
	out := make([]Substitution, 0, len(substitutes))
	for _, s := range substitutes {
		e, ok := t.PlayerPlusOne.Get(s.effect)
		if !ok {
			continue
		}
		out = append(out, Substitution{
			Subject: s.subject,
			Effect:  s.effect,
			Title:   e.Title,
			Cost:    e.Cost,
		})
	}
	return out
}
