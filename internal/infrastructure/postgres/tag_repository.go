package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO tags (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrTagNameTaken
		}
		return 0, fmt.Errorf("insert tag: %w", err)
	}
	return id, nil
}

func (r *TagRepository) GetAll(ctx context.Context) ([]domain.Tag, error) {
	var tags []domain.Tag
	if err := r.db.SelectContext(ctx, &tags, `SELECT id, name FROM tags ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag, `SELECT id, name FROM tags WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("select tag by id: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := r.db.GetContext(ctx, &tag, `SELECT id, name FROM tags WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("select tag by name: %w", err)
	}
	return &tag, nil
}

func (r *TagRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM tags WHERE name = $1 AND id <> $2)`, name, excludeID)
	if err != nil {
		return false, fmt.Errorf("tag name exists: %w", err)
	}
	return exists, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tags SET name = $2 WHERE id = $1`, tag.ID, tag.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTagNameTaken
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return affectOne(res, domain.ErrTagNotFound, "update tag")
}

func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		if fkConstraint(err) != "" {
			return fmt.Errorf("%w: tag is still attached to events", domain.ErrConflict)
		}
		return fmt.Errorf("delete tag: %w", err)
	}
	return affectOne(res, domain.ErrTagNotFound, "delete tag")
}
