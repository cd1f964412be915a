package enhancement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
)

func TestEffectTable(t *testing.T) {
	table := enhancement.NewEffectTable(
		[]enhancement.EffectID{enhancement.EffectMove, enhancement.EffectAttack, enhancement.EffectMove},
		[]enhancement.Effect{
			{Cost: 30, Title: "Move", Icon: "generalMove"},
			{Cost: 50, Title: "Attack", Icon: "generalAttack"},
			{Cost: 35, Title: "Move", Icon: "generalMove"},
		},
	)

	t.Run("keeps first position for duplicates", func(t *testing.T) {
		assert.Equal(t, []enhancement.EffectID{enhancement.EffectMove, enhancement.EffectAttack}, table.IDs())
		assert.Equal(t, 2, table.Len())

		move, ok := table.Get(enhancement.EffectMove)
		assert.True(t, ok)
		assert.Equal(t, 35, move.Cost)
	})

	t.Run("IDs returns a copy", func(t *testing.T) {
		ids := table.IDs()
		ids[0] = enhancement.EffectJump
		assert.Equal(t, enhancement.EffectMove, table.IDs()[0])
	})

	t.Run("Each stops early", func(t *testing.T) {
		var seen []enhancement.EffectID
		table.Each(func(id enhancement.EffectID, _ enhancement.Effect) bool {
			seen = append(seen, id)
			return false
		})
		assert.Equal(t, []enhancement.EffectID{enhancement.EffectMove}, seen)
	})

	t.Run("clone is equal and independent", func(t *testing.T) {
		clone := table.Clone()
		assert.True(t, table.Equal(clone))
		assert.False(t, clone.Has(enhancement.EffectJump))
	})

	t.Run("zero value is empty", func(t *testing.T) {
		var empty enhancement.EffectTable
		assert.Equal(t, 0, empty.Len())
		assert.Empty(t, empty.IDs())
		_, ok := empty.Get(enhancement.EffectMove)
		assert.False(t, ok)
		assert.False(t, empty.Equal(table))
	})
}

func TestSelection_ActiveEffect(t *testing.T) {
	sel := enhancement.NewSelection()
	sel.PlayerPlusOneEffect = enhancement.EffectAttack
	sel.SummonPlusOneEffect = enhancement.EffectHP
	sel.OtherEffect = enhancement.EffectWound

	assert.Equal(t, enhancement.EffectNone, sel.ActiveEffect())

	sel.Category = enhancement.CategoryPlayerPlusOne
	assert.Equal(t, enhancement.EffectAttack, sel.ActiveEffect())

	sel.Category = enhancement.CategorySummonPlusOne
	assert.Equal(t, enhancement.EffectHP, sel.ActiveEffect())

	sel.Category = enhancement.CategoryOtherEffect
	assert.Equal(t, enhancement.EffectWound, sel.ActiveEffect())

	sel.Category = enhancement.CategoryAttackHex
	assert.Equal(t, enhancement.EffectNone, sel.ActiveEffect())
}

func TestNewSelection_Defaults(t *testing.T) {
	sel := enhancement.NewSelection()
	assert.Equal(t, enhancement.CategoryNone, sel.Category)
	assert.Equal(t, 2, sel.TargetedHexCount)
	assert.Equal(t, 1, sel.CardLevel)
	assert.Equal(t, 0, sel.PriorEnhancements)
	assert.Equal(t, 1, sel.EnhancerLevel)
}

func TestCategory(t *testing.T) {
	for _, c := range enhancement.Categories() {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.Title())
	}
	assert.False(t, enhancement.CategoryNone.IsValid())
	assert.False(t, enhancement.Category("sticker").IsValid())
}
