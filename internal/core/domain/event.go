package domain

import (
	"fmt"
	"time"
)

const MaxEventNameLen = 100

var (
	ErrEventNotFound = fmt.Errorf("event %w", ErrNotFound)
	// ErrEventInactive rejects bookings against an event whose is_active flag
	// is off. Distinct from ErrEventNotFound: the event exists but is closed.
	ErrEventInactive = fmt.Errorf("%w: event is not active", ErrConflict)
)

// Event is a bookable happening created by a user.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category,omitempty" db:"category"`
	Venue       string    `json:"venue,omitempty" db:"venue"`
	Date        time.Time `json:"date" db:"date"`
	Price       float64   `json:"price" db:"price"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedBy   int64     `json:"created_by" db:"created_by"`
}
