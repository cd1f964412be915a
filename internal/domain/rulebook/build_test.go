package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
	"github.com/KirkDiggler/enhancement-calculator/internal/domain/rulebook"
)

func TestBuildEffectTable(t *testing.T) {
	raw := []rulebook.RawEffect{
		{ID: "wound", Cost: 75},
		{ID: "specificElement", Cost: 100},
		{ID: "teleport", Cost: 30},
		{ID: "hp", Cost: 40},
		{ID: "attack", Cost: 50, Title: "Strike", Icon: "customSword"},
	}

	table := rulebook.BuildEffectTable(raw)

	expected := map[enhancement.EffectID]enhancement.Effect{
		"wound":           {Cost: 75, Title: "Wound", Icon: "statusEffectWound"},
		"specificElement": {Cost: 100, Title: "Specific Element", Icon: "elementFire"},
		"teleport":        {Cost: 30, Title: "Teleport", Icon: "generalTeleport"},
		"hp":              {Cost: 40, Title: "HP", Icon: "generalHeal"},
		"attack":          {Cost: 50, Title: "Strike", Icon: "customSword"},
	}
	for id, want := range expected {
		got, ok := table.Get(id)
		assert.True(t, ok, id)
		assert.Equal(t, want, got, id)
	}
	assert.Equal(t, []enhancement.EffectID{"wound", "specificElement", "teleport", "hp", "attack"}, table.IDs())
}

func TestBuildEffectTable_Empty(t *testing.T) {
	assert.Equal(t, 0, rulebook.BuildEffectTable(nil).Len())
	assert.Equal(t, 0, rulebook.BuildEffectTable([]rulebook.RawEffect{}).Len())
}

func TestBuildEffectTable_Idempotent(t *testing.T) {
	raw := []rulebook.RawEffect{
		{ID: "move", Cost: 30},
		{ID: "wildElement", Cost: 150},
	}

	first := rulebook.BuildEffectTable(raw)
	second := rulebook.BuildEffectTable(raw)

	assert.True(t, first.Equal(second))
}

func TestDefaultTitleAndIcon(t *testing.T) {
	tests := []struct {
		id        enhancement.EffectID
		wantTitle string
		wantIcon  string
	}{
		{"move", "Move", "generalMove"},
		{"wildElement", "Wild Element", "elementAll"},
		{"anyElement", "Any Element", "elementAll"},
		{"jump", "Jump", "generalJump"},
		{"extra_target", "Extra Target", "generalExtraTarget"},
		{"hp", "HP", "generalHeal"},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, rulebook.DefaultTitle(tt.id))
			assert.Equal(t, tt.wantIcon, rulebook.DefaultIcon(tt.id))
		})
	}
}
