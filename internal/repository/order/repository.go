package order

import (
	"context"
	"time"

	"quickbite/internal/domain"
)

type Repository interface {
	// Create persists a new order. A duplicate order token returns
	// domain.ErrAlreadyExists without touching the existing order.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByUser returns the user's orders newest-first.
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) (*domain.Order, error)
}
