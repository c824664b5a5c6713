package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

const bookingColumns = `id, user_id, event_id, booked_at`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO bookings (user_id, event_id, booked_at) VALUES ($1, $2, $3) RETURNING id`,
		booking.UserID, booking.EventID, booking.BookedAt,
	).Scan(&id)
	if err != nil {
		// The UNIQUE (user_id, event_id) constraint closes the check-then-act
		// window: a concurrent duplicate still lands here as a conflict.
		if isUniqueViolation(err) {
			return 0, domain.ErrBookingExists
		}
		switch c := fkConstraint(err); {
		case c == "bookings_user_id_fkey":
			return 0, domain.ErrUserNotFound
		case c != "":
			return 0, domain.ErrEventNotFound
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return id, nil
}

func (r *BookingRepository) List(ctx context.Context, page, size int) ([]domain.Booking, error) {
	var bookings []domain.Booking
	offset := (page - 1) * size
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings ORDER BY booked_at LIMIT $1 OFFSET $2`, size, offset)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM bookings`); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("select booking by id: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY booked_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("select bookings by user: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) ListByEventID(ctx context.Context, eventID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.SelectContext(ctx, &bookings,
		`SELECT `+bookingColumns+` FROM bookings WHERE event_id = $1 ORDER BY booked_at`, eventID)
	if err != nil {
		return nil, fmt.Errorf("select bookings by event: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Exists(ctx context.Context, userID, eventID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE user_id = $1 AND event_id = $2)`, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("booking exists: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	return affectOne(res, domain.ErrBookingNotFound, "delete booking")
}
