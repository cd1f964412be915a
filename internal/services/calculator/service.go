package calculator

//go:generate mockgen -destination=mock/mock_service.go -package=mockcalculator -source=service.go

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook/calculators"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
	"github.com/KirkDiggler/enhancement-calculator/internal/logging"
	"github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections"
	"github.com/KirkDiggler/enhancement-calculator/internal/uuid"
)

// Repository is an alias for the selection session repository interface
type Repository = selections.Repository

// Service holds per-user calculator sessions. Every update stores the new
// selection and returns a freshly computed quote.
type Service interface {
	// StartSession creates a session with the default selection
	StartSession(ctx context.Context, input *StartSessionInput) (*Result, error)

	// GetQuote prices the stored selection of a session
	GetQuote(ctx context.Context, sessionID string) (*Result, error)

	// ListSessions lists the live sessions of an owner
	ListSessions(ctx context.Context, ownerID string) ([]*enhancement.Session, error)

	// SelectCategory sets the category, or clears it when it is already selected
	SelectCategory(ctx context.Context, sessionID string, category enhancement.Category) (*Result, error)

	// SelectPlayerPlusOneEffect sets the player +1 effect, or clears it when it is already selected
	SelectPlayerPlusOneEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error)

	// SelectSummonPlusOneEffect sets the summon +1 effect, or clears it when it is already selected
	SelectSummonPlusOneEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error)

	// SelectOtherEffect sets the other effect, or clears it when it is already selected
	SelectOtherEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error)

	SetTargetedHexCount(ctx context.Context, sessionID string, count int) (*Result, error)
	SetCardLevel(ctx context.Context, sessionID string, level int) (*Result, error)
	SetPriorEnhancements(ctx context.Context, sessionID string, count int) (*Result, error)
	SetEnhancerLevel(ctx context.Context, sessionID string, level int) (*Result, error)

	// SetVariant switches the pricing variant of a session
	SetVariant(ctx context.Context, sessionID string, variant rulebook.Variant) (*Result, error)

	ToggleMultipleTargets(ctx context.Context, sessionID string) (*Result, error)
	ToggleLostCard(ctx context.Context, sessionID string) (*Result, error)
	TogglePersistentBonus(ctx context.Context, sessionID string) (*Result, error)

	// Reset clears every choice except the enhancer level
	Reset(ctx context.Context, sessionID string) (*Result, error)

	// EndSession deletes a session
	EndSession(ctx context.Context, sessionID string) error

	// Price quotes a selection without a session
	Price(ctx context.Context, input *PriceInput) (*Result, error)

	// ListRuleTables returns every known variant in catalog order
	ListRuleTables(ctx context.Context) []*rulebook.RuleTable

	// GetRuleTable returns one variant
	GetRuleTable(ctx context.Context, variant rulebook.Variant) (*rulebook.RuleTable, error)
}

// StartSessionInput contains data for starting a session
type StartSessionInput struct {
	OwnerID       string
	Variant       rulebook.Variant // Optional, the default variant when empty
	EnhancerLevel int              // Optional, 1 when zero
}

// PriceInput contains a selection to price
type PriceInput struct {
	Variant   rulebook.Variant // Optional, the default variant when empty
	Selection enhancement.Selection
}

// Result is the state returned after every call
type Result struct {
	Session *enhancement.Session   `json:"session,omitempty"`
	Quote   *enhancement.Quote     `json:"quote"`
	Options *calculators.OptionSet `json:"options"`
}

type service struct {
	repository     Repository
	rules          *rulebook.Registry
	calculator     *calculators.CostCalculator
	uuidGenerator  uuid.Generator
	defaultVariant rulebook.Variant
	logger         *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository     Repository         // Required
	Rules          *rulebook.Registry // Required
	UUIDGenerator  uuid.Generator     // Optional, will use default if nil
	DefaultVariant rulebook.Variant   // Optional, frosthaven when empty
	Logger         *zap.Logger        // Optional
}

// NewService creates a new calculator service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Rules == nil {
		panic("rules registry is required")
	}

	svc := &service{
		repository:     cfg.Repository,
		rules:          cfg.Rules,
		calculator:     calculators.NewCostCalculator(),
		uuidGenerator:  cfg.UUIDGenerator,
		defaultVariant: cfg.DefaultVariant,
		logger:         logging.OrNop(cfg.Logger).Named("calculator"),
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.defaultVariant == "" {
		svc.defaultVariant = rulebook.VariantFrosthaven
	}
	if !cfg.Rules.Has(svc.defaultVariant) {
		panic("default variant " + string(svc.defaultVariant) + " is not in the rules registry")
	}

	return svc
}

// StartSession creates a session with the default selection
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*Result, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	variant := input.Variant
	if variant == "" {
		variant = s.defaultVariant
	}
	table, err := s.rules.Get(variant)
	if err != nil {
		return nil, err
	}

	sel := enhancement.NewSelection()
	if input.EnhancerLevel != 0 {
		if err := checkRange("enhancer_level", input.EnhancerLevel, enhancement.MinEnhancerLevel, enhancement.MaxEnhancerLevel); err != nil {
			return nil, err
		}
		sel.EnhancerLevel = input.EnhancerLevel
	}

	session := &enhancement.Session{
		ID:        s.uuidGenerator.New(),
		OwnerID:   input.OwnerID,
		Variant:   string(variant),
		Selection: sel,
	}
	if err := s.repository.Create(ctx, session); err != nil {
		return nil, apperr.Wrap(err, "failed to create session")
	}

	s.logger.Debug("session started",
		zap.String("session_id", session.ID),
		zap.String("owner_id", session.OwnerID),
		zap.String("variant", session.Variant))

	return s.result(session, table)
}

// GetQuote prices the stored selection of a session
func (s *service) GetQuote(ctx context.Context, sessionID string) (*Result, error) {
	session, table, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.result(session, table)
}

// ListSessions lists the live sessions of an owner
func (s *service) ListSessions(ctx context.Context, ownerID string) ([]*enhancement.Session, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}
	return s.repository.ListByOwner(ctx, ownerID)
}

func (s *service) SelectCategory(ctx context.Context, sessionID string, category enhancement.Category) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		if !category.IsValid() {
			return apperr.InvalidSelectionf("unknown category %q", category).WithMeta("field", "category")
		}
		if sel.Category == category {
			sel.Category = enhancement.CategoryNone
			return nil
		}
		sel.Category = category
		return nil
	})
}

func (s *service) SelectPlayerPlusOneEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error) {
	return s.selectEffect(ctx, sessionID, enhancement.CategoryPlayerPlusOne, effect, func(sel *enhancement.Selection) *enhancement.EffectID {
		return &sel.PlayerPlusOneEffect
	})
}

func (s *service) SelectSummonPlusOneEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error) {
	return s.selectEffect(ctx, sessionID, enhancement.CategorySummonPlusOne, effect, func(sel *enhancement.Selection) *enhancement.EffectID {
		return &sel.SummonPlusOneEffect
	})
}

func (s *service) SelectOtherEffect(ctx context.Context, sessionID string, effect enhancement.EffectID) (*Result, error) {
	return s.selectEffect(ctx, sessionID, enhancement.CategoryOtherEffect, effect, func(sel *enhancement.Selection) *enhancement.EffectID {
		return &sel.OtherEffect
	})
}

func (s *service) selectEffect(ctx context.Context, sessionID string, category enhancement.Category, effect enhancement.EffectID, field func(*enhancement.Selection) *enhancement.EffectID) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, table *rulebook.RuleTable) error {
		effects, _ := table.EffectsFor(category)
		if !effects.Has(effect) {
			return apperr.InvalidSelectionf("effect %q is not available for %s in %s", effect, category, table.Variant).
				WithMeta("field", "effect")
		}

		current := field(sel)
		if *current == effect {
			*current = enhancement.EffectNone
			return nil
		}
		*current = effect
		return nil
	})
}

func (s *service) SetTargetedHexCount(ctx context.Context, sessionID string, count int) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		if err := checkRange("targeted_hex_count", count, enhancement.MinTargetedHexCount, enhancement.MaxTargetedHexCount); err != nil {
			return err
		}
		sel.TargetedHexCount = count
		return nil
	})
}

func (s *service) SetCardLevel(ctx context.Context, sessionID string, level int) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		if err := checkRange("card_level", level, enhancement.MinCardLevel, enhancement.MaxCardLevel); err != nil {
			return err
		}
		sel.CardLevel = level
		return nil
	})
}

func (s *service) SetPriorEnhancements(ctx context.Context, sessionID string, count int) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, table *rulebook.RuleTable) error {
		if err := checkRange("prior_enhancements", count, 0, table.Strategy.MaxPriorEnhancements()); err != nil {
			return err
		}
		sel.PriorEnhancements = count
		return nil
	})
}

func (s *service) SetEnhancerLevel(ctx context.Context, sessionID string, level int) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		if err := checkRange("enhancer_level", level, enhancement.MinEnhancerLevel, enhancement.MaxEnhancerLevel); err != nil {
			return err
		}
		sel.EnhancerLevel = level
		return nil
	})
}

// SetVariant switches the pricing variant. Choices the new variant cannot
// price are dropped: effects missing from its tables are cleared and the
// prior enhancement count is capped at its maximum.
func (s *service) SetVariant(ctx context.Context, sessionID string, variant rulebook.Variant) (*Result, error) {
	session, _, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	table, err := s.rules.Get(variant)
	if err != nil {
		return nil, err
	}

	sel := session.Selection
	if !table.PlayerPlusOne.Has(sel.PlayerPlusOneEffect) {
		sel.PlayerPlusOneEffect = enhancement.EffectNone
	}
	if !table.SummonPlusOne.Has(sel.SummonPlusOneEffect) {
		sel.SummonPlusOneEffect = enhancement.EffectNone
	}
	if !table.OtherEffects.Has(sel.OtherEffect) {
		sel.OtherEffect = enhancement.EffectNone
	}
	if maxPrior := table.Strategy.MaxPriorEnhancements(); sel.PriorEnhancements > maxPrior {
		sel.PriorEnhancements = maxPrior
	}

	session.Variant = string(variant)
	session.Selection = sel
	return s.save(ctx, session, table)
}

func (s *service) ToggleMultipleTargets(ctx context.Context, sessionID string) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		sel.HasMultipleTargets = !sel.HasMultipleTargets
		return nil
	})
}

func (s *service) ToggleLostCard(ctx context.Context, sessionID string) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		sel.IsLostCard = !sel.IsLostCard
		return nil
	})
}

func (s *service) TogglePersistentBonus(ctx context.Context, sessionID string) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		sel.HasPersistentBonus = !sel.HasPersistentBonus
		return nil
	})
}

// Reset clears every choice except the enhancer level
func (s *service) Reset(ctx context.Context, sessionID string) (*Result, error) {
	return s.update(ctx, sessionID, func(sel *enhancement.Selection, _ *rulebook.RuleTable) error {
		enhancerLevel := sel.EnhancerLevel
		*sel = enhancement.NewSelection()
		sel.EnhancerLevel = enhancerLevel
		return nil
	})
}

// EndSession deletes a session
func (s *service) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}
	if err := s.repository.Delete(ctx, sessionID); err != nil {
		return apperr.Wrap(err, "failed to end session")
	}

	s.logger.Debug("session ended", zap.String("session_id", sessionID))
	return nil
}

// Price quotes a selection without a session
func (s *service) Price(ctx context.Context, input *PriceInput) (*Result, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input cannot be nil")
	}

	variant := input.Variant
	if variant == "" {
		variant = s.defaultVariant
	}
	table, err := s.rules.Get(variant)
	if err != nil {
		return nil, err
	}

	quote, err := s.calculator.Quote(input.Selection, table)
	if err != nil {
		return nil, err
	}

	return &Result{
		Quote:   quote,
		Options: calculators.Options(table, input.Selection),
	}, nil
}

func (s *service) ListRuleTables(_ context.Context) []*rulebook.RuleTable {
	return s.rules.Tables()
}

func (s *service) GetRuleTable(_ context.Context, variant rulebook.Variant) (*rulebook.RuleTable, error) {
	return s.rules.Get(variant)
}

// update loads a session, applies fn to a copy of its selection and stores
// the result when the new selection can be priced
func (s *service) update(ctx context.Context, sessionID string, fn func(*enhancement.Selection, *rulebook.RuleTable) error) (*Result, error) {
	session, table, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := session.Selection
	if err := fn(&sel, table); err != nil {
		return nil, err
	}
	session.Selection = sel

	return s.save(ctx, session, table)
}

func (s *service) save(ctx context.Context, session *enhancement.Session, table *rulebook.RuleTable) (*Result, error) {
	result, err := s.result(session, table)
	if err != nil {
		return nil, err
	}

	if err := s.repository.Update(ctx, session); err != nil {
		return nil, apperr.Wrap(err, "failed to save session")
	}

	s.logger.Debug("selection updated",
		zap.String("session_id", session.ID),
		zap.String("variant", session.Variant),
		zap.Int("price", result.Quote.Price))

	return result, nil
}

func (s *service) load(ctx context.Context, sessionID string) (*enhancement.Session, *rulebook.RuleTable, error) {
	if sessionID == "" {
		return nil, nil, apperr.InvalidArgument("session ID is required")
	}

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, apperr.Wrap(err, "failed to get session")
	}

	table, err := s.rules.Get(rulebook.Variant(session.Variant))
	if err != nil {
		return nil, nil, apperr.Wrapf(err, "session %s uses an unknown variant", sessionID)
	}

	return session, table, nil
}

func (s *service) result(session *enhancement.Session, table *rulebook.RuleTable) (*Result, error) {
	quote, err := s.calculator.Quote(session.Selection, table)
	if err != nil {
		return nil, err
	}

	return &Result{
		Session: session,
		Quote:   quote,
		Options: calculators.Options(table, session.Selection),
	}, nil
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return apperr.InvalidSelectionf("%s must be between %d and %d, got %d", field, lo, hi, value).
			WithMeta("field", field)
	}
	return nil
}
