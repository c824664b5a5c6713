package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	// ExistsByName reports whether a tag other than excludeID uses name.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) error
}
