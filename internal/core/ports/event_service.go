package ports

import (
	"context"
	"time"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// EventService defines use-case operations for events.
type EventService interface {
	Create(ctx context.Context, event domain.Event) (*domain.Event, error)
	List(ctx context.Context, page, size int) ([]domain.Event, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	ListByActive(ctx context.Context, active bool) ([]domain.Event, error)
	ListByCreator(ctx context.Context, userID int64) ([]domain.Event, error)
	SearchByName(ctx context.Context, name string) ([]domain.Event, error)
	SearchByDescription(ctx context.Context, description string) ([]domain.Event, error)
	SearchByCategory(ctx context.Context, category string) ([]domain.Event, error)
	SearchByVenue(ctx context.Context, venue string) ([]domain.Event, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Event, error)
	ListByPrice(ctx context.Context, price float64) ([]domain.Event, error)
	// Update replaces all mutable fields. Past dates are allowed here so an
	// event that already happened can still be edited.
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id int64) error
}
