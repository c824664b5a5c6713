package domain

import (
	"errors"
	"fmt"
)

// Base error kinds. Every service error wraps exactly one of these so the
// API layer can classify any failure with errors.Is and map it to a
// deterministic HTTP status. Anything that wraps none of them is treated
// as a storage fault (500).
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrIntegrity signals that the store returned an impossible shape, e.g.
// a single-id update touching more than one row. Never shown to clients.
var ErrIntegrity = errors.New("storage integrity violation")

// Invalid builds a caller-fixable validation error with a field-level message.
func Invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Invalidf is Invalid with formatting.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
