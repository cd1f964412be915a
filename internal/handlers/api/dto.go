package api

import (
	"encoding/json"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
)

// VariantResponse describes one pricing variant
type VariantResponse struct {
	Variant              string `json:"variant"`
	Title                string `json:"title"`
	MaxPriorEnhancements int    `json:"max_prior_enhancements"`
	HonoursEnhancerLevel bool   `json:"honours_enhancer_level"`
}

// EffectResponse is one entry of an effect table
type EffectResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
	Cost  int    `json:"cost"`
}

// EffectsResponse lists the effect tables of a variant in display order
type EffectsResponse struct {
	Variant       string           `json:"variant"`
	PlayerPlusOne []EffectResponse `json:"player_plus_one"`
	SummonPlusOne []EffectResponse `json:"summon_plus_one"`
	OtherEffects  []EffectResponse `json:"other_effects"`
}

// HelpResponse explains card slot shapes and how to price abilities the
// cost chart does not list
type HelpResponse struct {
	Variant       string                  `json:"variant"`
	Dots          []rulebook.DotRule      `json:"dots"`
	Substitutions []rulebook.Substitution `json:"substitutions"`
}

// PriceRequest prices a selection without a session
type PriceRequest struct {
	Variant   string                `json:"variant"`
	Selection enhancement.Selection `json:"selection"`
}

// CreateSessionRequest starts a calculator session
type CreateSessionRequest struct {
	OwnerID       string `json:"owner_id" binding:"required"`
	Variant       string `json:"variant"`
	EnhancerLevel int    `json:"enhancer_level"`
}

// ActionRequest applies one change to a session. Value is a string for
// selections and variants, a number for counts and levels, and omitted for toggles.
type ActionRequest struct {
	Action string          `json:"action" binding:"required"`
	Value  json.RawMessage `json:"value"`
}

// Session actions
const (
	ActionSelectCategory        = "select_category"
	ActionSelectPlayerEffect    = "select_player_plus_one_effect"
	ActionSelectSummonEffect    = "select_summon_plus_one_effect"
	ActionSelectOtherEffect     = "select_other_effect"
	ActionSetTargetedHexCount   = "set_targeted_hex_count"
	ActionSetCardLevel          = "set_card_level"
	ActionSetPriorEnhancements  = "set_prior_enhancements"
	ActionSetEnhancerLevel      = "set_enhancer_level"
	ActionSetVariant            = "set_variant"
	ActionToggleMultipleTargets = "toggle_multiple_targets"
	ActionToggleLostCard        = "toggle_lost_card"
	ActionTogglePersistentBonus = "toggle_persistent_bonus"
	ActionReset                 = "reset"
)

func toVariantResponse(table *rulebook.RuleTable) VariantResponse {
	return VariantResponse{
		Variant:              string(table.Variant),
		Title:                table.Title,
		MaxPriorEnhancements: table.Strategy.MaxPriorEnhancements(),
		HonoursEnhancerLevel: table.Strategy.HonoursEnhancerLevel(),
	}
}

func toEffectsResponse(table *rulebook.RuleTable) EffectsResponse {
	return EffectsResponse{
		Variant:       string(table.Variant),
		PlayerPlusOne: toEffectList(table.PlayerPlusOne),
		SummonPlusOne: toEffectList(table.SummonPlusOne),
		OtherEffects:  toEffectList(table.OtherEffects),
	}
}

func toHelpResponse(table *rulebook.RuleTable) HelpResponse {
	return HelpResponse{
		Variant:       string(table.Variant),
		Dots:          rulebook.DotRules(),
		Substitutions: table.Substitutions(),
	}
}

func toEffectList(table enhancement.EffectTable) []EffectResponse {
	out := make([]EffectResponse, 0, table.Len())
	table.Each(func(id enhancement.EffectID, e enhancement.Effect) bool {
		out = append(out, EffectResponse{
			ID:    string(id),
			Title: e.Title,
			Icon:  e.Icon,
			Cost:  e.Cost,
		})
		return true
	})
	return out
}
