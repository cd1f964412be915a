package testutils

import (
	"time"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
)

// CreateTestSelection returns a complete player +1 selection
func CreateTestSelection(effect enhancement.EffectID, cardLevel int) enhancement.Selection {
	sel := enhancement.NewSelection()
	sel.Category = enhancement.CategoryPlayerPlusOne
	sel.PlayerPlusOneEffect = effect
	sel.CardLevel = cardLevel
	return sel
}

// CreateTestSession creates a test session with default selection state
func CreateTestSession(id, ownerID, variant string) *enhancement.Session {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &enhancement.Session{
		ID:        id,
		OwnerID:   ownerID,
		Variant:   variant,
		Selection: enhancement.NewSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
