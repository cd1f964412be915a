package routers

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/handlers"
	"github.com/KirkDiggler/enhancement-calculator/internal/services"
)

// CommandName is the slash command and custom ID domain of the calculator
const CommandName = "enhance"

// EnhanceRouter handles /enhance and the calculator controls
type EnhanceRouter struct {
	router  *core.Router
	handler *handlers.EnhancementHandler
}

type EnhanceRouterConfig struct {
	Pipeline *core.Pipeline
	Provider *services.Provider
}

func (cfg *EnhanceRouterConfig) Validate() error {
	if cfg == nil {
		return errors.New("config is required")
	}
	if cfg.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if cfg.Provider == nil {
		return errors.New("provider is required")
	}
	if cfg.Provider.CalculatorService == nil {
		return errors.New("provider.CalculatorService is required")
	}
	return nil
}

// NewEnhanceRouter creates the router and registers it with the pipeline
func NewEnhanceRouter(cfg *EnhanceRouterConfig) (*EnhanceRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := core.NewRouter(CommandName)

	handler, err := handlers.NewEnhancementHandler(&handlers.EnhancementHandlerConfig{
		Service:         cfg.Provider.CalculatorService,
		CustomIDBuilder: router.CustomIDs(),
	})
	if err != nil {
		return nil, err
	}

	r := &EnhanceRouter{
		router:  router,
		handler: handler,
	}

	router.CommandFunc("", handler.StartCalculator)
	router.ComponentFunc("*", handler.HandleComponent)

	cfg.Pipeline.Register(router.Build())

	return r, nil
}

// EnhanceCommand is the /enhance definition registered with Discord. Variant
// choices come from the loaded rules.
func EnhanceCommand(provider *services.Provider) *discordgo.ApplicationCommand {
	minLevel := 1.0

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, table := range provider.Rules.Tables() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  table.Title,
			Value: string(table.Variant),
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Work out the gold cost of a card enhancement",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "variant",
				Description: "Which rules to price with",
				Choices:     choices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "enhancer_level",
				Description: "Level of the Enhancer building (Frosthaven)",
				MinValue:    &minLevel,
				MaxValue:    4,
			},
		},
	}
}
