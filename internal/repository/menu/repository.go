package menu

import (
	"context"

	"quickbite/internal/domain"
)

// Filter narrows menu listings. Zero-valued fields do not filter.
type Filter struct {
	Cafeteria string
	Category  string
	Veg       *bool
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}
