package handlers

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
)

// Component actions. Each custom ID is enhance:<action>:<sessionID>[:<arg>].
const (
	ActionCategory   = "category"
	ActionPlayer     = "player"
	ActionSummon     = "summon"
	ActionOther      = "other"
	ActionHexes      = "hexes"
	ActionLevel      = "level"
	ActionPrior      = "prior"
	ActionEnhancer   = "enhancer"
	ActionMultiple   = "multi"
	ActionLostCard   = "lost"
	ActionPersistent = "persistent"
	ActionReset      = "reset"
)

// EnhancementHandler drives the calculator message
type EnhancementHandler struct {
	service calculator.Service
	ids     *core.CustomIDBuilder
}

// EnhancementHandlerConfig holds the configuration
type EnhancementHandlerConfig struct {
	Service         calculator.Service
	CustomIDBuilder *core.CustomIDBuilder
}

// NewEnhancementHandler creates a new calculator handler
func NewEnhancementHandler(cfg *EnhancementHandlerConfig) (*EnhancementHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("service is required")
	}

	ids := cfg.CustomIDBuilder
	if ids == nil {
		ids = core.NewCustomIDBuilder("enhance")
	}

	return &EnhancementHandler{
		service: cfg.Service,
		ids:     ids,
	}, nil
}

// StartCalculator answers /enhance with a fresh calculator only the caller can see
func (h *EnhancementHandler) StartCalculator(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	result, err := h.service.StartSession(ctx.Context, &calculator.StartSessionInput{
		OwnerID:       ctx.UserID,
		Variant:       rulebook.Variant(ctx.GetStringParam("variant")),
		EnhancerLevel: ctx.GetIntParam("enhancer_level"),
	})
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: RenderCalculator(h.ids, result).AsEphemeral(),
	}, nil
}

// HandleComponent applies one button press or menu choice and redraws the calculator
func (h *EnhancementHandler) HandleComponent(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, core.NewUserError("Unknown calculator control.")
	}
	sessionID := customID.Target
	if sessionID == "" {
		return nil, core.NewUserError("Unknown calculator control.")
	}

	result, err := h.apply(ctx, customID, sessionID)
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: RenderCalculator(h.ids, result).AsUpdate(),
	}, nil
}

func (h *EnhancementHandler) apply(ctx *core.InteractionContext, customID *core.CustomID, sessionID string) (*calculator.Result, error) {
	svc := h.service
	c := ctx.Context

	switch customID.Action {
	case ActionCategory:
		return svc.SelectCategory(c, sessionID, enhancement.Category(ctx.SelectedValue()))
	case ActionPlayer:
		return svc.SelectPlayerPlusOneEffect(c, sessionID, enhancement.EffectID(ctx.SelectedValue()))
	case ActionSummon:
		return svc.SelectSummonPlusOneEffect(c, sessionID, enhancement.EffectID(ctx.SelectedValue()))
	case ActionOther:
		return svc.SelectOtherEffect(c, sessionID, enhancement.EffectID(ctx.SelectedValue()))
	case ActionHexes, ActionLevel, ActionPrior:
		n, err := strconv.Atoi(ctx.SelectedValue())
		if err != nil {
			return nil, core.NewUserError("Pick a number from the menu.")
		}
		switch customID.Action {
		case ActionHexes:
			return svc.SetTargetedHexCount(c, sessionID, n)
		case ActionLevel:
			return svc.SetCardLevel(c, sessionID, n)
		default:
			return svc.SetPriorEnhancements(c, sessionID, n)
		}
	case ActionEnhancer:
		if len(customID.Args) == 0 {
			return nil, core.NewUserError("Unknown calculator control.")
		}
		n, err := strconv.Atoi(customID.Args[0])
		if err != nil {
			return nil, core.NewUserError("Unknown calculator control.")
		}
		return svc.SetEnhancerLevel(c, sessionID, n)
	case ActionMultiple:
		return svc.ToggleMultipleTargets(c, sessionID)
	case ActionLostCard:
		return svc.ToggleLostCard(c, sessionID)
	case ActionPersistent:
		return svc.TogglePersistentBonus(c, sessionID)
	case ActionReset:
		return svc.Reset(c, sessionID)
	}

	return nil, core.NewUserError("Unknown calculator control.")
}
