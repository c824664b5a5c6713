package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

type EventTagRepository struct {
	db *sqlx.DB
}

func NewEventTagRepository(db *sqlx.DB) *EventTagRepository {
	return &EventTagRepository{db: db}
}

func (r *EventTagRepository) Create(ctx context.Context, eventID, tagID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_tags (event_id, tag_id) VALUES ($1, $2)`, eventID, tagID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEventTagExists
		}
		switch c := fkConstraint(err); {
		case c == "event_tags_event_id_fkey":
			return domain.ErrEventNotFound
		case c != "":
			return domain.ErrTagNotFound
		}
		return fmt.Errorf("insert event tag: %w", err)
	}
	return nil
}

func (r *EventTagRepository) GetAll(ctx context.Context) ([]domain.EventTag, error) {
	var pairs []domain.EventTag
	err := r.db.SelectContext(ctx, &pairs,
		`SELECT event_id, tag_id FROM event_tags ORDER BY event_id, tag_id`)
	if err != nil {
		return nil, fmt.Errorf("select event tags: %w", err)
	}
	return pairs, nil
}

func (r *EventTagRepository) ListByEventID(ctx context.Context, eventID int64) ([]domain.EventTag, error) {
	var pairs []domain.EventTag
	err := r.db.SelectContext(ctx, &pairs,
		`SELECT event_id, tag_id FROM event_tags WHERE event_id = $1 ORDER BY tag_id`, eventID)
	if err != nil {
		return nil, fmt.Errorf("select event tags by event: %w", err)
	}
	return pairs, nil
}

func (r *EventTagRepository) ListByTagID(ctx context.Context, tagID int64) ([]domain.EventTag, error) {
	var pairs []domain.EventTag
	err := r.db.SelectContext(ctx, &pairs,
		`SELECT event_id, tag_id FROM event_tags WHERE tag_id = $1 ORDER BY event_id`, tagID)
	if err != nil {
		return nil, fmt.Errorf("select event tags by tag: %w", err)
	}
	return pairs, nil
}

func (r *EventTagRepository) Exists(ctx context.Context, eventID, tagID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM event_tags WHERE event_id = $1 AND tag_id = $2)`, eventID, tagID)
	if err != nil {
		return false, fmt.Errorf("event tag exists: %w", err)
	}
	return exists, nil
}

func (r *EventTagRepository) Delete(ctx context.Context, eventID, tagID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM event_tags WHERE event_id = $1 AND tag_id = $2`, eventID, tagID)
	if err != nil {
		return fmt.Errorf("delete event tag: %w", err)
	}
	return affectOne(res, domain.ErrEventTagNotFound, "delete event tag")
}
