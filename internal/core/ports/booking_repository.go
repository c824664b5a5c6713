package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (int64, error)
	List(ctx context.Context, page, size int) ([]domain.Booking, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error)
	// Exists reports whether the (userID, eventID) pair is already booked.
	Exists(ctx context.Context, userID, eventID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}
