package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// TagService defines use-case operations for tag management.
type TagService interface {
	Create(ctx context.Context, name string) (*domain.Tag, error)
	GetAll(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	Update(ctx context.Context, id int64, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id int64) error
}
