package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections"
	calculatorService "github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
	"github.com/KirkDiggler/enhancement-calculator/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CalculatorService calculatorService.Service
	Rules             *rulebook.Registry
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SelectionRepository selections.Repository
	Rules               *rulebook.Registry
	DefaultVariant      rulebook.Variant
	UUIDGenerator       uuid.Generator
	Logger              *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	// Use in-memory repository if none provided
	repo := cfg.SelectionRepository
	if repo == nil {
		repo = selections.NewInMemoryRepository(&selections.InMemoryConfig{
			TTL: selections.DefaultTTL,
		})
	}

	rules := cfg.Rules
	if rules == nil {
		rules = rulebook.MustDefault()
	}

	calcService := calculatorService.NewService(&calculatorService.ServiceConfig{
		Repository:     repo,
		Rules:          rules,
		UUIDGenerator:  cfg.UUIDGenerator,
		DefaultVariant: cfg.DefaultVariant,
		Logger:         cfg.Logger,
	})

	return &Provider{
		CalculatorService: calcService,
		Rules:             rules,
	}
}
