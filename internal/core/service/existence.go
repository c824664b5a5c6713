package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// Existence answers "does the referenced entity exist" before a dependent
// write. Implementations never cache: every call re-queries storage so a
// concurrently deleted row is seen immediately.
type Existence interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
	EventExists(ctx context.Context, eventID int64) (bool, error)
	TagExists(ctx context.Context, tagID int64) (bool, error)
	RoleExists(ctx context.Context, roleID int64) (bool, error)
}

type existenceChecker struct {
	users  ports.UserRepository
	events ports.EventRepository
	tags   ports.TagRepository
	roles  ports.RoleRepository
	log    zerolog.Logger
}

// NewExistenceChecker returns the shared foreign-key checker used by the
// services that write rows referencing other entities.
func NewExistenceChecker(
	users ports.UserRepository,
	events ports.EventRepository,
	tags ports.TagRepository,
	roles ports.RoleRepository,
	log zerolog.Logger,
) Existence {
	return &existenceChecker{users: users, events: events, tags: tags, roles: roles, log: log}
}

// lookupExists collapses a by-id lookup into a boolean. Not-found is a
// clean false; storage faults propagate untouched.
func (c *existenceChecker) lookupExists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (c *existenceChecker) UserExists(ctx context.Context, userID int64) (bool, error) {
	_, err := c.users.GetByID(ctx, userID)
	ok, err := c.lookupExists(err)
	if err == nil && !ok {
		c.log.Debug().Int64("user_id", userID).Msg("referenced user does not exist")
	}
	return ok, err
}

func (c *existenceChecker) EventExists(ctx context.Context, eventID int64) (bool, error) {
	_, err := c.events.GetByID(ctx, eventID)
	ok, err := c.lookupExists(err)
	if err == nil && !ok {
		c.log.Debug().Int64("event_id", eventID).Msg("referenced event does not exist")
	}
	return ok, err
}

func (c *existenceChecker) TagExists(ctx context.Context, tagID int64) (bool, error) {
	_, err := c.tags.GetByID(ctx, tagID)
	ok, err := c.lookupExists(err)
	if err == nil && !ok {
		c.log.Debug().Int64("tag_id", tagID).Msg("referenced tag does not exist")
	}
	return ok, err
}

func (c *existenceChecker) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	_, err := c.roles.GetByID(ctx, roleID)
	ok, err := c.lookupExists(err)
	if err == nil && !ok {
		c.log.Debug().Int64("role_id", roleID).Msg("referenced role does not exist")
	}
	return ok, err
}
