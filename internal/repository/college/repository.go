package college

import (
	"context"

	"quickbite/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.College, error)
	GetByID(ctx context.Context, id string) (*domain.College, error)
	Create(ctx context.Context, c domain.College) (*domain.College, error)
	Update(ctx context.Context, c domain.College) (*domain.College, error)
}
