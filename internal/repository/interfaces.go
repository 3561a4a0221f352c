package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timereview/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// DecisionRepo persists the local journal of review decisions.
type DecisionRepo interface {
	Create(ctx context.Context, d *domain.ReviewDecision) error
	GetByID(ctx context.Context, id string) (*domain.ReviewDecision, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.ReviewDecision, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ReviewDecision, error)
}
