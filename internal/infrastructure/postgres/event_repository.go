package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

const eventColumns = `id, name, description, category, venue, date, price, image_url, is_active, created_by`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO events (name, description, category, venue, date, price, image_url, is_active, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		event.Name, event.Description, event.Category, event.Venue,
		event.Date, event.Price, event.ImageURL, event.IsActive, event.CreatedBy,
	).Scan(&id)
	if err != nil {
		if fkConstraint(err) != "" {
			return 0, domain.ErrUserNotFound
		}
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) List(ctx context.Context, page, size int) ([]domain.Event, error) {
	var events []domain.Event
	offset := (page - 1) * size
	err := r.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM events ORDER BY date LIMIT $1 OFFSET $2`, size, offset)
	if err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM events`); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	err := r.db.GetContext(ctx, &event, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("select event by id: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) ListByActive(ctx context.Context, active bool) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM events WHERE is_active = $1 ORDER BY date`, active)
	if err != nil {
		return nil, fmt.Errorf("select events by active: %w", err)
	}
	return events, nil
}

func (r *EventRepository) ListByCreator(ctx context.Context, userID int64) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM events WHERE created_by = $1 ORDER BY date`, userID)
	if err != nil {
		return nil, fmt.Errorf("select events by creator: %w", err)
	}
	return events, nil
}

// searchColumn runs a case-insensitive substring match on a single column.
// column is always one of the fixed identifiers below, never caller input.
func (r *EventRepository) searchColumn(ctx context.Context, column, term string) ([]domain.Event, error) {
	var events []domain.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + column + ` ILIKE '%' || $1 || '%' ORDER BY date`
	if err := r.db.SelectContext(ctx, &events, query, term); err != nil {
		return nil, fmt.Errorf("search events by %s: %w", column, err)
	}
	return events, nil
}

func (r *EventRepository) SearchByName(ctx context.Context, name string) ([]domain.Event, error) {
	return r.searchColumn(ctx, "name", name)
}

func (r *EventRepository) SearchByDescription(ctx context.Context, description string) ([]domain.Event, error) {
	return r.searchColumn(ctx, "description", description)
}

func (r *EventRepository) SearchByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	return r.searchColumn(ctx, "category", category)
}

func (r *EventRepository) SearchByVenue(ctx context.Context, venue string) ([]domain.Event, error) {
	return r.searchColumn(ctx, "venue", venue)
}

func (r *EventRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM events WHERE date::date = $1::date ORDER BY date`, date)
	if err != nil {
		return nil, fmt.Errorf("select events by date: %w", err)
	}
	return events, nil
}

func (r *EventRepository) ListByPrice(ctx context.Context, price float64) ([]domain.Event, error) {
	var events []domain.Event
	err := r.db.SelectContext(ctx, &events,
		`SELECT `+eventColumns+` FROM events WHERE price = $1 ORDER BY date`, price)
	if err != nil {
		return nil, fmt.Errorf("select events by price: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events
		 SET name = $2, description = $3, category = $4, venue = $5, date = $6,
		     price = $7, image_url = $8, is_active = $9, created_by = $10
		 WHERE id = $1`,
		event.ID, event.Name, event.Description, event.Category, event.Venue,
		event.Date, event.Price, event.ImageURL, event.IsActive, event.CreatedBy)
	if err != nil {
		if fkConstraint(err) != "" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return affectOne(res, domain.ErrEventNotFound, "update event")
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if fkConstraint(err) != "" {
			return fmt.Errorf("%w: event still has bookings or tags", domain.ErrConflict)
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return affectOne(res, domain.ErrEventNotFound, "delete event")
}
