package selections

import (
	"context"

	"github.com/KirkDiggler/enhancement-calculator/internal/domain/enhancement"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/KirkDiggler/enhancement-calculator/internal/repositories/selections Repository

// Repository stores calculator sessions. Sessions expire after the configured TTL
// of inactivity.
type Repository interface {
	Create(ctx context.Context, session *enhancement.Session) error
	Get(ctx context.Context, id string) (*enhancement.Session, error)
	Update(ctx context.Context, session *enhancement.Session) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*enhancement.Session, error)
}
