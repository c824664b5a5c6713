package domain

import "fmt"

const MaxTagNameLen = 30

var (
	ErrTagNotFound  = fmt.Errorf("tag %w", ErrNotFound)
	ErrTagNameTaken = fmt.Errorf("%w: tag name already in use", ErrConflict)
)

// Tag is a free-form label attachable to events.
type Tag struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
