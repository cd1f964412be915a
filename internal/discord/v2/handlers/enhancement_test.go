package handlers_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/core"
	"github.com/KirkDiggler/enhancement-calculator/internal/discord/v2/handlers"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook/calculators"
	apperr "github.com/KirkDiggler/enhancement-calculator/internal/errors"
	"github.com/KirkDiggler/enhancement-calculator/internal/services/calculator"
	mockcalculator "github.com/KirkDiggler/enhancement-calculator/internal/services/calculator/mock"
)

// quoteFor prices sel with the embedded rules so rendered results are realistic
func quoteFor(t *testing.T, sel enhancement.Selection) *calculator.Result {
	t.Helper()
	table, err := rulebook.MustDefault().Get(rulebook.VariantFrosthaven)
	require.NoError(t, err)

	quote, err := calculators.NewCostCalculator().Quote(sel, table)
	require.NoError(t, err)

	return &calculator.Result{
		Session: &enhancement.Session{ID: "sess-1", OwnerID: "test-user-123", Variant: "frosthaven", Selection: sel},
		Quote:   quote,
		Options: calculators.Options(table, sel),
	}
}

func newHandler(t *testing.T) (*handlers.EnhancementHandler, *mockcalculator.MockService) {
	ctrl := gomock.NewController(t)
	svc := mockcalculator.NewMockService(ctrl)
	h, err := handlers.NewEnhancementHandler(&handlers.EnhancementHandlerConfig{Service: svc})
	require.NoError(t, err)
	return h, svc
}

func customIDs(rows []discordgo.MessageComponent) []string {
	var ids []string
	for _, row := range rows {
		for _, c := range row.(discordgo.ActionsRow).Components {
			switch v := c.(type) {
			case discordgo.Button:
				ids = append(ids, v.CustomID)
			case discordgo.SelectMenu:
				ids = append(ids, v.CustomID)
			}
		}
	}
	return ids
}

func TestEnhancementHandler_StartCalculator(t *testing.T) {
	h, svc := newHandler(t)

	ctx := core.NewTestInteractionContext().
		AsCommand("enhance").
		WithParam("variant", "frosthaven").
		WithParam("enhancer_level", float64(2))

	svc.EXPECT().StartSession(gomock.Any(), &calculator.StartSessionInput{
		OwnerID:       "test-user-123",
		Variant:       rulebook.VariantFrosthaven,
		EnhancerLevel: 2,
	}).Return(quoteFor(t, enhancement.NewSelection()), nil)

	result, err := h.StartCalculator(ctx.InteractionContext)
	require.NoError(t, err)

	resp := result.Response
	assert.True(t, resp.Ephemeral)
	require.Len(t, resp.Embeds, 1)
	assert.Equal(t, "-", resp.Embeds[0].Description)
	assert.Equal(t, []string{
		"enhance:category:sess-1",
		"enhance:enhancer:sess-1:2",
		"enhance:reset:sess-1",
	}, customIDs(resp.Components))
}

func TestEnhancementHandler_StartCalculator_Error(t *testing.T) {
	h, svc := newHandler(t)

	svc.EXPECT().StartSession(gomock.Any(), gomock.Any()).Return(nil, apperr.NotFound("unknown variant"))

	_, err := h.StartCalculator(core.NewTestInteractionContext().AsCommand("enhance").InteractionContext)
	assert.True(t, apperr.IsNotFound(err))
}

func TestEnhancementHandler_HandleComponent(t *testing.T) {
	complete := enhancement.NewSelection()
	complete.Category = enhancement.CategoryPlayerPlusOne
	complete.PlayerPlusOneEffect = enhancement.EffectAttack
	complete.CardLevel = 3

	tests := []struct {
		name     string
		customID string
		values   []string
		expect   func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result)
	}{
		{
			name:     "category select",
			customID: "enhance:category:sess-1",
			values:   []string{"player_plus_one"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SelectCategory(gomock.Any(), "sess-1", enhancement.CategoryPlayerPlusOne).Return(result, nil)
			},
		},
		{
			name:     "player effect select",
			customID: "enhance:player:sess-1",
			values:   []string{"attack"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SelectPlayerPlusOneEffect(gomock.Any(), "sess-1", enhancement.EffectAttack).Return(result, nil)
			},
		},
		{
			name:     "other effect select",
			customID: "enhance:other:sess-1",
			values:   []string{"wound"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SelectOtherEffect(gomock.Any(), "sess-1", enhancement.EffectWound).Return(result, nil)
			},
		},
		{
			name:     "summon effect select",
			customID: "enhance:summon:sess-1",
			values:   []string{"hp"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SelectSummonPlusOneEffect(gomock.Any(), "sess-1", enhancement.EffectHP).Return(result, nil)
			},
		},
		{
			name:     "hex count",
			customID: "enhance:hexes:sess-1",
			values:   []string{"4"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SetTargetedHexCount(gomock.Any(), "sess-1", 4).Return(result, nil)
			},
		},
		{
			name:     "card level",
			customID: "enhance:level:sess-1",
			values:   []string{"3"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SetCardLevel(gomock.Any(), "sess-1", 3).Return(result, nil)
			},
		},
		{
			name:     "prior enhancements",
			customID: "enhance:prior:sess-1",
			values:   []string{"2"},
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SetPriorEnhancements(gomock.Any(), "sess-1", 2).Return(result, nil)
			},
		},
		{
			name:     "enhancer level button",
			customID: "enhance:enhancer:sess-1:3",
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.SetEnhancerLevel(gomock.Any(), "sess-1", 3).Return(result, nil)
			},
		},
		{
			name:     "multiple targets",
			customID: "enhance:multi:sess-1",
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.ToggleMultipleTargets(gomock.Any(), "sess-1").Return(result, nil)
			},
		},
		{
			name:     "lost card",
			customID: "enhance:lost:sess-1",
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.ToggleLostCard(gomock.Any(), "sess-1").Return(result, nil)
			},
		},
		{
			name:     "persistent",
			customID: "enhance:persistent:sess-1",
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.TogglePersistentBonus(gomock.Any(), "sess-1").Return(result, nil)
			},
		},
		{
			name:     "reset",
			customID: "enhance:reset:sess-1",
			expect: func(svc *mockcalculator.MockServiceMockRecorder, result *calculator.Result) {
				svc.Reset(gomock.Any(), "sess-1").Return(result, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newHandler(t)
			tt.expect(svc.EXPECT(), quoteFor(t, complete))

			ctx := core.NewTestInteractionContext().AsComponent(tt.customID, tt.values...)
			result, err := h.HandleComponent(ctx.InteractionContext)
			require.NoError(t, err)

			resp := result.Response
			assert.True(t, resp.Update)
			assert.Equal(t, "**100g**", resp.Embeds[0].Description)
		})
	}
}

func TestEnhancementHandler_HandleComponent_BadInput(t *testing.T) {
	h, _ := newHandler(t)

	tests := []struct {
		name     string
		customID string
		values   []string
	}{
		{name: "missing session", customID: "enhance:lost"},
		{name: "unknown action", customID: "enhance:explode:sess-1"},
		{name: "non numeric level", customID: "enhance:level:sess-1", values: []string{"ten"}},
		{name: "enhancer without level", customID: "enhance:enhancer:sess-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := core.NewTestInteractionContext().AsComponent(tt.customID, tt.values...)
			_, err := h.HandleComponent(ctx.InteractionContext)

			var handlerErr *core.HandlerError
			assert.ErrorAs(t, err, &handlerErr)
		})
	}
}

func TestRenderCalculator(t *testing.T) {
	ids := core.NewCustomIDBuilder("enhance")

	t.Run("attack hex shows hex counts and no multiple targets", func(t *testing.T) {
		sel := enhancement.NewSelection()
		sel.Category = enhancement.CategoryAttackHex
		sel.TargetedHexCount = 4

		resp := handlers.RenderCalculator(ids, quoteFor(t, sel))

		require.LessOrEqual(t, len(resp.Components), 5)
		assert.Equal(t, []string{
			"enhance:category:sess-1",
			"enhance:hexes:sess-1",
			"enhance:level:sess-1",
			"enhance:prior:sess-1",
			"enhance:lost:sess-1",
			"enhance:persistent:sess-1",
			"enhance:enhancer:sess-1:2",
			"enhance:reset:sess-1",
		}, customIDs(resp.Components))
		assert.Equal(t, "**50g**", resp.Embeds[0].Description)
	})

	t.Run("summon hides persistent", func(t *testing.T) {
		sel := enhancement.NewSelection()
		sel.Category = enhancement.CategorySummonPlusOne
		sel.SummonPlusOneEffect = enhancement.EffectHP

		got := customIDs(handlers.RenderCalculator(ids, quoteFor(t, sel)).Components)
		assert.Contains(t, got, "enhance:multi:sess-1")
		assert.NotContains(t, got, "enhance:persistent:sess-1")
	})

	t.Run("modifiers are listed", func(t *testing.T) {
		sel := enhancement.NewSelection()
		sel.Category = enhancement.CategoryOtherEffect
		sel.OtherEffect = enhancement.EffectWound
		sel.IsLostCard = true

		embed := handlers.RenderCalculator(ids, quoteFor(t, sel)).Embeds[0]
		var modifiers string
		for _, f := range embed.Fields {
			if f.Name == "Modifiers" {
				modifiers = f.Value
			}
		}
		assert.Equal(t, "Lost card /2", modifiers)
		assert.Equal(t, "**38g**", embed.Description)
		for _, f := range embed.Fields {
			assert.NotEqual(t, "Dots", f.Name)
		}
	})

	t.Run("fresh calculator explains dots and stand-ins", func(t *testing.T) {
		embed := handlers.RenderCalculator(ids, quoteFor(t, enhancement.NewSelection())).Embeds[0]

		fields := make(map[string]string)
		for _, f := range embed.Fields {
			fields[f.Name] = f.Value
		}
		assert.Contains(t, fields["Dots"], "**Square**: Only a +1 sticker")
		assert.Contains(t, fields["Dots"], "**Diamond+**: As Circle, plus any positive condition sticker")
		assert.Equal(t, "Damage trap: as Attack +1 (50g)\n"+
			"Healing trap: as Heal +1 (30g)\n"+
			"Moving tokens or tiles: as Move +1 (30g)", fields["Not on the chart"])
	})
}
