package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// RoleService defines use-case operations for role management.
type RoleService interface {
	Create(ctx context.Context, name string) (*domain.Role, error)
	GetAll(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Update(ctx context.Context, id int64, name string) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
