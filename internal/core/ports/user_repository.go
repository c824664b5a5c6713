package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Lookups return
// domain.ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns one page of users ordered by display name. page is 1-based.
	List(ctx context.Context, page, size int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, userID, roleID int64) error
	Delete(ctx context.Context, id int64) error
}
