package enhancement

// Category is the top-level kind of enhancement sticker
type Category string

const (
	CategoryNone          Category = ""
	CategoryPlayerPlusOne Category = "player_plus_one"
	CategorySummonPlusOne Category = "summon_plus_one"
	CategoryAttackHex     Category = "attack_hex"
	CategoryOtherEffect   Category = "other_effect"
)

// Categories lists the selectable categories in display order
func Categories() []Category {
	return []Category{
		CategoryPlayerPlusOne,
		CategorySummonPlusOne,
		CategoryAttackHex,
		CategoryOtherEffect,
	}
}

// IsValid reports whether c is one of the known categories. The unset category is not valid.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPlayerPlusOne, CategorySummonPlusOne, CategoryAttackHex, CategoryOtherEffect:
		return true
	}
	return false
}

// Title is the button label of the category
func (c Category) Title() string {
	switch c {
	case CategoryPlayerPlusOne:
		return "Player"
	case CategorySummonPlusOne:
		return "Summon"
	case CategoryAttackHex:
		return "Attack Hex"
	case CategoryOtherEffect:
		return "Other Effect"
	}
	return ""
}

// EffectID identifies an effect within a category's effect table
type EffectID string

const EffectNone EffectID = ""

// Player +1 ability lines
const (
	EffectMove      EffectID = "move"
	EffectAttack    EffectID = "attack"
	EffectRange     EffectID = "range"
	EffectTarget    EffectID = "target"
	EffectShield    EffectID = "shield"
	EffectRetaliate EffectID = "retaliate"
	EffectPierce    EffectID = "pierce"
	EffectHeal      EffectID = "heal"
	EffectPush      EffectID = "push"
	EffectPull      EffectID = "pull"
	EffectTeleport  EffectID = "teleport"
)

// Summon +1 lines. Move, attack and range are shared with the player lines.
const (
	EffectHP EffectID = "hp"
)

// Other base effects
const (
	EffectRegenerate      EffectID = "regenerate"
	EffectWard            EffectID = "ward"
	EffectStrengthen      EffectID = "strengthen"
	EffectBless           EffectID = "bless"
	EffectWound           EffectID = "wound"
	EffectPoison          EffectID = "poison"
	EffectImmobilize      EffectID = "immobilize"
	EffectMuddle          EffectID = "muddle"
	EffectCurse           EffectID = "curse"
	EffectSpecificElement EffectID = "specificElement"
	EffectWildElement     EffectID = "wildElement"
	EffectJump            EffectID = "jump"

	// EffectAnyElement is the older name of EffectWildElement
	EffectAnyElement EffectID = "anyElement"
)

// Effect is one priced entry of an effect table
type Effect struct {
	Cost  int    `json:"cost"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// Selectable ranges shared by every variant
const (
	MinTargetedHexCount = 2
	MaxTargetedHexCount = 13
	MinCardLevel        = 1
	MaxCardLevel        = 9
	MinEnhancerLevel    = 1
	MaxEnhancerLevel    = 4
)
