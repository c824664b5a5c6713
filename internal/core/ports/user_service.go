package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// RegisterUserInput carries all data needed to create an account.
// RoleID 0 means "assign the standard user role".
type RegisterUserInput struct {
	Username string
	Name     string
	Email    string
	Password string
	RoleID   int64
}

// UpdateUserInput carries a full replacement of a user's mutable fields.
// Password is optional; when non-empty it is re-hashed before persisting.
type UpdateUserInput struct {
	ID       int64
	Username string
	Name     string
	Email    string
	Password string
	RoleID   int64
}

// UserService defines use-case operations for accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	// Login verifies credentials. A missing user and a wrong password are
	// indistinguishable to the caller: both return ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	List(ctx context.Context, page, size int) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	ChangeRole(ctx context.Context, userID, roleID int64) error
	Delete(ctx context.Context, id int64) error
}
