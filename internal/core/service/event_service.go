package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// EventService implements event management. The creator reference is
// confirmed through the shared existence checker before any write.
type EventService struct {
	repo   ports.EventRepository
	exists Existence
	log    zerolog.Logger
}

func NewEventService(repo ports.EventRepository, exists Existence, log zerolog.Logger) *EventService {
	return &EventService{repo: repo, exists: exists, log: log}
}

// validateEvent checks shape. allowPastDate is set on the update path so an
// event that already happened can still be edited.
func validateEvent(event *domain.Event, allowPastDate bool) error {
	if event.Name == "" {
		return domain.Invalid("event name cannot be empty")
	}
	if len(event.Name) > domain.MaxEventNameLen {
		return domain.Invalidf("event name cannot exceed %d characters", domain.MaxEventNameLen)
	}
	if !allowPastDate && event.Date.Before(time.Now().UTC()) {
		return domain.Invalid("event date cannot be in the past")
	}
	if event.Price <= 0 {
		return domain.Invalid("event price must be greater than 0")
	}
	if event.CreatedBy <= 0 {
		return domain.Invalid("event creator id must be positive")
	}
	return nil
}

func (s *EventService) Create(ctx context.Context, event domain.Event) (*domain.Event, error) {
	if err := validateEvent(&event, false); err != nil {
		return nil, err
	}

	ok, err := s.exists.UserExists(ctx, event.CreatedBy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	id, err := s.repo.Create(ctx, &event)
	if err != nil {
		s.log.Error().Err(err).Str("name", event.Name).Msg("failed to create event")
		return nil, err
	}
	event.ID = id

	s.log.Info().Int64("event_id", id).Str("name", event.Name).Int64("created_by", event.CreatedBy).Msg("event created")
	return &event, nil
}

func (s *EventService) List(ctx context.Context, page, size int) ([]domain.Event, error) {
	if page < 1 || size < 1 {
		return nil, domain.Invalid("page number and page size must be at least 1")
	}
	return s.repo.List(ctx, page, size)
}

func (s *EventService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	if id <= 0 {
		return nil, domain.Invalid("event id must be positive")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) ListByActive(ctx context.Context, active bool) ([]domain.Event, error) {
	return s.repo.ListByActive(ctx, active)
}

func (s *EventService) ListByCreator(ctx context.Context, userID int64) ([]domain.Event, error) {
	if userID <= 0 {
		return nil, domain.Invalid("user id must be positive")
	}
	ok, err := s.exists.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.ListByCreator(ctx, userID)
}

func (s *EventService) SearchByName(ctx context.Context, name string) ([]domain.Event, error) {
	if name == "" {
		return nil, domain.Invalid("name cannot be empty")
	}
	return s.repo.SearchByName(ctx, name)
}

func (s *EventService) SearchByDescription(ctx context.Context, description string) ([]domain.Event, error) {
	if description == "" {
		return nil, domain.Invalid("description cannot be empty")
	}
	return s.repo.SearchByDescription(ctx, description)
}

func (s *EventService) SearchByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	if category == "" {
		return nil, domain.Invalid("category cannot be empty")
	}
	return s.repo.SearchByCategory(ctx, category)
}

func (s *EventService) SearchByVenue(ctx context.Context, venue string) ([]domain.Event, error) {
	if venue == "" {
		return nil, domain.Invalid("venue cannot be empty")
	}
	return s.repo.SearchByVenue(ctx, venue)
}

func (s *EventService) ListByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	return s.repo.ListByDate(ctx, date)
}

func (s *EventService) ListByPrice(ctx context.Context, price float64) ([]domain.Event, error) {
	if price <= 0 {
		return nil, domain.Invalid("price must be greater than 0")
	}
	return s.repo.ListByPrice(ctx, price)
}

func (s *EventService) Update(ctx context.Context, event domain.Event) error {
	if event.ID <= 0 {
		return domain.Invalid("event id must be positive")
	}
	if err := validateEvent(&event, true); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, event.ID); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &event); err != nil {
		return err
	}

	s.log.Info().Int64("event_id", event.ID).Msg("event updated")
	return nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("event id must be positive")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}
