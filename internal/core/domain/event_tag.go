package domain

import "fmt"

var (
	ErrEventTagNotFound = fmt.Errorf("event tag %w", ErrNotFound)
	ErrEventTagExists   = fmt.Errorf("%w: tag already attached to event", ErrConflict)
)

// EventTag links a tag to an event. The (EventID, TagID) pair is the
// identity; there is no surrogate id.
type EventTag struct {
	EventID int64 `json:"event_id" db:"event_id"`
	TagID   int64 `json:"tag_id" db:"tag_id"`
}
