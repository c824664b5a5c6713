package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// EventTagService manages the event/tag join relation. Create is the one
// spot with a composite-uniqueness check: both sides must exist and the
// pair must not already be attached.
type EventTagService struct {
	repo   ports.EventTagRepository
	exists Existence
	log    zerolog.Logger
}

func NewEventTagService(repo ports.EventTagRepository, exists Existence, log zerolog.Logger) *EventTagService {
	return &EventTagService{repo: repo, exists: exists, log: log}
}

func validateEventTagIDs(eventID, tagID int64) error {
	if eventID <= 0 {
		return domain.Invalid("event id must be positive")
	}
	if tagID <= 0 {
		return domain.Invalid("tag id must be positive")
	}
	return nil
}

func (s *EventTagService) Create(ctx context.Context, eventID, tagID int64) error {
	if err := validateEventTagIDs(eventID, tagID); err != nil {
		return err
	}

	ok, err := s.exists.EventExists(ctx, eventID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrEventNotFound
	}

	ok, err = s.exists.TagExists(ctx, tagID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTagNotFound
	}

	attached, err := s.repo.Exists(ctx, eventID, tagID)
	if err != nil {
		return err
	}
	if attached {
		s.log.Warn().Int64("event_id", eventID).Int64("tag_id", tagID).Msg("tag already attached to event")
		return domain.ErrEventTagExists
	}

	if err := s.repo.Create(ctx, eventID, tagID); err != nil {
		s.log.Error().Err(err).Int64("event_id", eventID).Int64("tag_id", tagID).Msg("failed to attach tag")
		return err
	}

	s.log.Info().Int64("event_id", eventID).Int64("tag_id", tagID).Msg("tag attached to event")
	return nil
}

func (s *EventTagService) GetAll(ctx context.Context) ([]domain.EventTag, error) {
	return s.repo.GetAll(ctx)
}

func (s *EventTagService) ListByEventID(ctx context.Context, eventID int64) ([]domain.EventTag, error) {
	if eventID <= 0 {
		return nil, domain.Invalid("event id must be positive")
	}
	ok, err := s.exists.EventExists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return s.repo.ListByEventID(ctx, eventID)
}

func (s *EventTagService) ListByTagID(ctx context.Context, tagID int64) ([]domain.EventTag, error) {
	if tagID <= 0 {
		return nil, domain.Invalid("tag id must be positive")
	}
	ok, err := s.exists.TagExists(ctx, tagID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	return s.repo.ListByTagID(ctx, tagID)
}

func (s *EventTagService) Delete(ctx context.Context, eventID, tagID int64) error {
	if err := validateEventTagIDs(eventID, tagID); err != nil {
		return err
	}

	attached, err := s.repo.Exists(ctx, eventID, tagID)
	if err != nil {
		return err
	}
	if !attached {
		return domain.ErrEventTagNotFound
	}

	if err := s.repo.Delete(ctx, eventID, tagID); err != nil {
		return err
	}

	s.log.Info().Int64("event_id", eventID).Int64("tag_id", tagID).Msg("tag detached from event")
	return nil
}
