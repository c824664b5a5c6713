package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventhive/booking-api/internal/core/domain"
)

type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO roles (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrRoleNameTaken
		}
		return 0, fmt.Errorf("insert role: %w", err)
	}
	return id, nil
}

func (r *RoleRepository) GetAll(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if err := r.db.SelectContext(ctx, &roles, `SELECT id, name FROM roles ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	err := r.db.GetContext(ctx, &role, `SELECT id, name FROM roles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("select role by id: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role
	err := r.db.GetContext(ctx, &role, `SELECT id, name FROM roles WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("select role by name: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1 AND id <> $2)`, name, excludeID)
	if err != nil {
		return false, fmt.Errorf("role name exists: %w", err)
	}
	return exists, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *domain.Role) error {
	res, err := r.db.ExecContext(ctx, `UPDATE roles SET name = $2 WHERE id = $1`, role.ID, role.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleNameTaken
		}
		return fmt.Errorf("update role: %w", err)
	}
	return affectOne(res, domain.ErrRoleNotFound, "update role")
}

func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		// Users still reference the role; surface as a conflict, not a fault.
		if fkConstraint(err) != "" {
			return domain.ErrRoleInUse
		}
		return fmt.Errorf("delete role: %w", err)
	}
	return affectOne(res, domain.ErrRoleNotFound, "delete role")
}
