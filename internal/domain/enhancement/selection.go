package enhancement

import "time"

// Selection is the user's in-progress choice. Only the sub-field that matches
// Category is read when pricing.
type Selection struct {
	Category            Category `json:"category,omitempty"`
	PlayerPlusOneEffect EffectID `json:"player_plus_one_effect,omitempty"`
	SummonPlusOneEffect EffectID `json:"summon_plus_one_effect,omitempty"`
	OtherEffect         EffectID `json:"other_effect,omitempty"`
	TargetedHexCount    int      `json:"targeted_hex_count"`
	CardLevel           int      `json:"card_level"`
	PriorEnhancements   int      `json:"prior_enhancements"`
	HasMultipleTargets  bool     `json:"has_multiple_targets,omitempty"`
	IsLostCard          bool     `json:"is_lost_card,omitempty"`
	HasPersistentBonus  bool     `json:"has_persistent_bonus,omitempty"`
	EnhancerLevel       int      `json:"enhancer_level"`
}

// NewSelection returns the initial state of a fresh calculator
func NewSelection() Selection {
	return Selection{
		TargetedHexCount:  MinTargetedHexCount,
		CardLevel:         MinCardLevel,
		PriorEnhancements: 0,
		EnhancerLevel:     MinEnhancerLevel,
	}
}

// ActiveEffect returns the sub-effect of the current category, or EffectNone
func (s Selection) ActiveEffect() EffectID {
	switch s.Category {
	case CategoryPlayerPlusOne:
		return s.PlayerPlusOneEffect
	case CategorySummonPlusOne:
		return s.SummonPlusOneEffect
	case CategoryOtherEffect:
		return s.OtherEffect
	}
	return EffectNone
}

// Visibility reports which selection sections a front end should show
type Visibility struct {
	ShowPlayerPlusOneEffects bool `json:"show_player_plus_one_effects"`
	ShowSummonPlusOneEffects bool `json:"show_summon_plus_one_effects"`
	ShowHexCount             bool `json:"show_hex_count"`
	ShowOtherEffects         bool `json:"show_other_effects"`
	ShowDownstream           bool `json:"show_downstream"`
	ShowMultipleTargets      bool `json:"show_multiple_targets"`
	ShowLostCard             bool `json:"show_lost_card"`
	ShowPersistentBonus      bool `json:"show_persistent_bonus"`
}

// Breakdown records the intermediate values of a price calculation
type Breakdown struct {
	BaseCost           float64 `json:"base_cost"`
	ModifiedBaseCost   float64 `json:"modified_base_cost"`
	CardLevelSurcharge int     `json:"card_level_surcharge"`
	PriorSurcharge     int     `json:"prior_surcharge"`
	Adjustment         int     `json:"adjustment"`
}

// Quote is the result of pricing a selection under one variant
type Quote struct {
	Variant    string     `json:"variant"`
	Selection  Selection  `json:"selection"`
	Price      int        `json:"price"`
	Complete   bool       `json:"complete"`
	Visibility Visibility `json:"visibility"`
	Breakdown  Breakdown  `json:"breakdown"`
}

// Session is a per-user calculator state owned by a front end
type Session struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Variant   string    `json:"variant"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
