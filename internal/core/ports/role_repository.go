package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// RoleRepository defines persistence operations for roles.
type RoleRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	// ExistsByName reports whether a role other than excludeID uses name.
	// Pass excludeID 0 to check against all rows.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
}
