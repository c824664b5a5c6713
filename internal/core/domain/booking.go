package domain

import (
	"fmt"
	"time"
)

var (
	ErrBookingNotFound = fmt.Errorf("booking %w", ErrNotFound)
	// ErrBookingExists enforces the one-booking-per-user-per-event rule.
	ErrBookingExists = fmt.Errorf("%w: user already booked this event", ErrConflict)
)

// Booking reserves a slot on an event for a user. BookedAt is assigned by
// the server at creation time and never updated.
type Booking struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	EventID  int64     `json:"event_id" db:"event_id"`
	BookedAt time.Time `json:"booked_at" db:"booked_at"`
}
