package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// BookingService enforces the anti-duplicate invariant of the system: a
// user may book a given event at most once, and only while the event is
// active. The bookings(user_id, event_id) UNIQUE constraint backs the
// pre-check under concurrent creates.
type BookingService struct {
	bookings ports.BookingRepository
	events   ports.EventRepository
	exists   Existence
	log      zerolog.Logger

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func NewBookingService(bookings ports.BookingRepository, events ports.EventRepository, exists Existence, log zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		events:   events,
		exists:   exists,
		log:      log,
		now:      time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, userID, eventID int64) (*domain.Booking, error) {
	if userID <= 0 {
		return nil, domain.Invalid("user id must be positive")
	}
	if eventID <= 0 {
		return nil, domain.Invalid("event id must be positive")
	}

	ok, err := s.exists.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	// The event must exist and be open for booking. An inactive event is a
	// business-rule rejection, not a not-found.
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		s.log.Warn().Int64("event_id", eventID).Msg("booking attempt on inactive event")
		return nil, domain.ErrEventInactive
	}

	booked, err := s.bookings.Exists(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if booked {
		s.log.Warn().Int64("user_id", userID).Int64("event_id", eventID).Msg("duplicate booking rejected")
		return nil, domain.ErrBookingExists
	}

	booking := &domain.Booking{
		UserID:   userID,
		EventID:  eventID,
		BookedAt: s.now().UTC(),
	}

	id, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Int64("event_id", eventID).Msg("failed to create booking")
		return nil, err
	}
	booking.ID = id

	s.log.Info().Int64("booking_id", id).Int64("user_id", userID).Int64("event_id", eventID).Msg("booking created")
	return booking, nil
}

func (s *BookingService) List(ctx context.Context, page, size int) ([]domain.Booking, error) {
	if page < 1 || size < 1 {
		return nil, domain.Invalid("page number and page size must be at least 1")
	}
	return s.bookings.List(ctx, page, size)
}

func (s *BookingService) Count(ctx context.Context) (int64, error) {
	return s.bookings.Count(ctx)
}

func (s *BookingService) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, domain.Invalid("booking id must be positive")
	}
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
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
	return s.bookings.ListByUserID(ctx, userID)
}

func (s *BookingService) ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error) {
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
	return s.bookings.ListByEventID(ctx, eventID)
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.Invalid("booking id must be positive")
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("booking_id", id).Msg("booking deleted")
	return nil
}
