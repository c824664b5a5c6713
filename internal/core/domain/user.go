package domain

import (
	"fmt"
	"time"
)

const (
	MaxUsernameLen = 50
	MaxUserNameLen = 100
)

var (
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrUsernameTaken = fmt.Errorf("%w: username already in use", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already in use", ErrConflict)
)

// User models a registered account. PasswordHash holds the bcrypt hash and
// is never serialized.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RoleID       int64     `json:"role_id" db:"role_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
