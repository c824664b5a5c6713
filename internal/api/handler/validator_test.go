package handler

import (
	"strings"
	"testing"
)

func TestValidator_FieldMessages(t *testing.T) {
	type payload struct {
		Name  string  `validate:"required,max=5"`
		Email string  `validate:"omitempty,email"`
		Price float64 `validate:"omitempty,gt=0"`
	}

	v := NewValidator()

	cases := []struct {
		name string
		in   payload
		want string
	}{
		{"missing required", payload{}, "missing name"},
		{"too long", payload{Name: "toolongname"}, "name cannot exceed 5 characters"},
		{"bad email", payload{Name: "ok", Email: "not-an-email"}, "email is not a valid email address"},
		{"non-positive", payload{Name: "ok", Price: -1}, "price must be greater than 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.in)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestValidator_ValidPayloadPasses(t *testing.T) {
	type payload struct {
		Name string `validate:"required,max=5"`
	}
	if err := NewValidator().Validate(&payload{Name: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
