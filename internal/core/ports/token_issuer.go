package ports

import "github.com/eventhive/booking-api/internal/core/domain"

// TokenIssuer mints signed API tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
