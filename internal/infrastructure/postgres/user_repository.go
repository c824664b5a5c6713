package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/eventhive/booking-api/internal/core/domain"
)

const userColumns = `id, username, name, email, password_hash, role_id, created_at`

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// uniqueUserError maps a unique violation to the column that caused it.
func uniqueUserError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && strings.Contains(pqErr.Constraint, "email") {
		return domain.ErrEmailTaken
	}
	return domain.ErrUsernameTaken
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, name, email, password_hash, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		user.Username, user.Name, user.Email, user.PasswordHash, user.RoleID, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, uniqueUserError(err)
		}
		if fkConstraint(err) != "" {
			return 0, domain.ErrRoleNotFound
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by id: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by username: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, page, size int) ([]domain.User, error) {
	var users []domain.User
	offset := (page - 1) * size
	err := r.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users ORDER BY name LIMIT $1 OFFSET $2`, size, offset)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = $2, name = $3, email = $4, password_hash = $5, role_id = $6 WHERE id = $1`,
		user.ID, user.Username, user.Name, user.Email, user.PasswordHash, user.RoleID)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueUserError(err)
		}
		if fkConstraint(err) != "" {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return affectOne(res, domain.ErrUserNotFound, "update user")
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID, roleID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET role_id = $2 WHERE id = $1`, userID, roleID)
	if err != nil {
		if fkConstraint(err) != "" {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("update user role: %w", err)
	}
	return affectOne(res, domain.ErrUserNotFound, "update user role")
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if fkConstraint(err) != "" {
			return fmt.Errorf("%w: user still has events or bookings", domain.ErrConflict)
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return affectOne(res, domain.ErrUserNotFound, "delete user")
}
