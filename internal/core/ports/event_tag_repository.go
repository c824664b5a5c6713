package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// EventTagRepository defines persistence operations for the event/tag join
// relation.
type EventTagRepository interface {
	Create(ctx context.Context, eventID, tagID int64) error
	GetAll(ctx context.Context) ([]domain.EventTag, error)
	ListByEventID(ctx context.Context, eventID int64) ([]domain.EventTag, error)
	ListByTagID(ctx context.Context, tagID int64) ([]domain.EventTag, error)
	Exists(ctx context.Context, eventID, tagID int64) (bool, error)
	Delete(ctx context.Context, eventID, tagID int64) error
}
