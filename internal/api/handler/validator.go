package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts go-playground/validator to the echo.Validator interface.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		msgs[i] = describe(fe)
	}
	return errors.New(strings.Join(msgs, ", "))
}

// describe renders one field failure as a client-facing message. Only the
// tags used by the request structs get a dedicated message.
func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "missing " + field
	case "email":
		return field + " is not a valid email address"
	case "gt":
		return field + " must be greater than " + fe.Param()
	case "min":
		return field + " must have at least " + fe.Param() + " characters"
	case "max":
		return field + " cannot exceed " + fe.Param() + " characters"
	}
	return field + " is invalid"
}
