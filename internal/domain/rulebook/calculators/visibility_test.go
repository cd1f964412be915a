package calculators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook/calculators"
)

func TestVisibility(t *testing.T) {
	tests := []struct {
		name string
		sel  enhancement.Selection
		want enhancement.Visibility
	}{
		{
			name: "nothing selected",
			sel:  selection(),
			want: enhancement.Visibility{},
		},
		{
			name: "player category without effect",
			sel:  selection(player("")),
			want: enhancement.Visibility{ShowPlayerPlusOneEffects: true},
		},
		{
			name: "player attack",
			sel:  selection(player("attack")),
			want: enhancement.Visibility{
				ShowPlayerPlusOneEffects: true,
				ShowDownstream:           true,
				ShowMultipleTargets:      true,
				ShowLostCard:             true,
				ShowPersistentBonus:      true,
			},
		},
		{
			name: "player target hides multiple targets",
			sel:  selection(player("target")),
			want: enhancement.Visibility{
				ShowPlayerPlusOneEffects: true,
				ShowDownstream:           true,
				ShowLostCard:             true,
				ShowPersistentBonus:      true,
			},
		},
		{
			name: "summon hides persistent bonus",
			sel:  selection(summon("hp")),
			want: enhancement.Visibility{
				ShowSummonPlusOneEffects: true,
				ShowDownstream:           true,
				ShowMultipleTargets:      true,
				ShowLostCard:             true,
			},
		},
		{
			name: "attack hex shows downstream immediately",
			sel:  selection(hexes(2)),
			want: enhancement.Visibility{
				ShowHexCount:        true,
				ShowDownstream:      true,
				ShowLostCard:        true,
				ShowPersistentBonus: true,
			},
		},
		{
			name: "other effect without effect",
			sel:  selection(other("")),
			want: enhancement.Visibility{ShowOtherEffects: true},
		},
		{
			name: "wild element",
			sel:  selection(other("wildElement")),
			want: enhancement.Visibility{
				ShowOtherEffects:    true,
				ShowDownstream:      true,
				ShowLostCard:        true,
				ShowPersistentBonus: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculators.Visibility(tt.sel))
		})
	}
}

func TestCostCalculator_Quote(t *testing.T) {
	calc := calculators.NewCostCalculator()

	t.Run("complete selection", func(t *testing.T) {
		sel := selection(player("attack"), level(5))
		quote, err := calc.Quote(sel, ruleTable(t, rulebook.VariantFrosthaven))
		require.NoError(t, err)

		assert.Equal(t, "frosthaven", quote.Variant)
		assert.Equal(t, 150, quote.Price)
		assert.True(t, quote.Complete)
		assert.True(t, quote.Visibility.ShowDownstream)
		assert.Equal(t, sel, quote.Selection)
	})

	t.Run("incomplete selection", func(t *testing.T) {
		quote, err := calc.Quote(selection(other("")), ruleTable(t, rulebook.VariantFrosthaven))
		require.NoError(t, err)
		assert.Equal(t, 0, quote.Price)
		assert.False(t, quote.Complete)
		assert.True(t, quote.Visibility.ShowOtherEffects)
	})

	t.Run("invalid selection", func(t *testing.T) {
		quote, err := calc.Quote(selection(player("attack"), level(12)), ruleTable(t, rulebook.VariantFrosthaven))
		require.Error(t, err)
		assert.Nil(t, quote)
	})
}

func TestOptions(t *testing.T) {
	t.Run("nothing selected lists categories only", func(t *testing.T) {
		opts := calculators.Options(ruleTable(t, rulebook.VariantFrosthaven), selection())

		require.Len(t, opts.Categories, 4)
		assert.Equal(t, enhancement.CategoryPlayerPlusOne, opts.Categories[0].Category)
		assert.Equal(t, "Player", opts.Categories[0].Title)
		assert.False(t, opts.Categories[0].Selected)
		assert.Empty(t, opts.Effects)
		assert.Empty(t, opts.HexCounts)
		assert.Empty(t, opts.CardLevels)
		assert.Empty(t, opts.PriorEnhancements)
		assert.Len(t, opts.EnhancerLevels, 4)
		require.Len(t, opts.Substitutions, 3)
		assert.Equal(t, "Healing trap", opts.Substitutions[1].Subject)
		assert.Equal(t, 30, opts.Substitutions[1].Cost)
	})

	t.Run("player effects keep catalog order", func(t *testing.T) {
		opts := calculators.Options(ruleTable(t, rulebook.VariantFrosthaven), selection(player("attack"), enhancer(3)))

		require.Len(t, opts.Effects, 11)
		assert.Equal(t, calculators.EffectOption{
			ID: "attack", Title: "Attack", Icon: "generalAttack", Cost: 50, Selected: true,
		}, opts.Effects[1])
		assert.False(t, opts.Effects[0].Selected)

		require.Len(t, opts.CardLevels, 9)
		assert.Equal(t, calculators.NumberOption{Value: 9, Cost: 120}, opts.CardLevels[8])
		assert.True(t, opts.CardLevels[0].Selected)

		require.Len(t, opts.PriorEnhancements, 4)
		assert.Equal(t, 225, opts.PriorEnhancements[3].Cost)
		assert.Empty(t, opts.Substitutions)
	})

	t.Run("attack hex lists per hex costs", func(t *testing.T) {
		opts := calculators.Options(ruleTable(t, rulebook.VariantFrosthaven), selection(hexes(3)))

		require.Len(t, opts.HexCounts, 12)
		assert.Equal(t, calculators.NumberOption{Value: 2, Cost: 100}, opts.HexCounts[0])
		assert.Equal(t, calculators.NumberOption{Value: 3, Cost: 67, Selected: true}, opts.HexCounts[1])
		assert.Equal(t, calculators.NumberOption{Value: 13, Cost: 16}, opts.HexCounts[11])
		assert.Empty(t, opts.Effects)
	})

	t.Run("digital has five prior counts and no enhancer levels", func(t *testing.T) {
		opts := calculators.Options(ruleTable(t, rulebook.VariantGloomhavenDigital), selection(summon("hp")))

		require.Len(t, opts.Effects, 4)
		assert.Equal(t, "HP", opts.Effects[0].Title)
		require.Len(t, opts.PriorEnhancements, 5)
		assert.Equal(t, 80, opts.PriorEnhancements[4].Cost)
		assert.Empty(t, opts.EnhancerLevels)
	})
}
