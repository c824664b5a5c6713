package ports

import (
	"context"

	"github.com/eventhive/booking-api/internal/core/domain"
)

// EventTagService defines use-case operations for attaching tags to events.
type EventTagService interface {
	Create(ctx context.Context, eventID, tagID int64) error
	GetAll(ctx context.Context) ([]domain.EventTag, error)
	ListByEventID(ctx context.Context, eventID int64) ([]domain.EventTag, error)
	ListByTagID(ctx context.Context, tagID int64) ([]domain.EventTag, error)
	Delete(ctx context.Context, eventID, tagID int64) error
}
