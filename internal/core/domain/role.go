package domain

import "fmt"

// Well-known role ids seeded at schema bootstrap. Kept as named constants
// so authorization checks never repeat bare numeric literals.
const (
	RoleAdmin        int64 = 1
	RoleStandardUser int64 = 2
)

const MaxRoleNameLen = 20

var (
	ErrRoleNotFound  = fmt.Errorf("role %w", ErrNotFound)
	ErrRoleNameTaken = fmt.Errorf("%w: role name already in use", ErrConflict)
	// ErrRoleInUse is returned when deleting a role that users still reference.
	ErrRoleInUse = fmt.Errorf("%w: role is still assigned to users", ErrConflict)
)

// Role is an authorization group users belong to.
type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
