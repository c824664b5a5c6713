package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// BookingService defines use-case operations for bookings.
type BookingService interface {
	// Create books eventID for userID. The event must exist and be active;
	// a second booking for the same pair is rejected as a conflict.
	Create(ctx context.Context, userID, eventID int64) (*domain.Booking, error)
	List(ctx context.Context, page, size int) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}
