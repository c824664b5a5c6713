package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/roles/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(err, c)
	return rec
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", domain.Invalid("role name cannot be empty"), http.StatusBadRequest},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", domain.ErrRoleNotFound, http.StatusNotFound},
		{"conflict", domain.ErrRoleNameTaken, http.StatusConflict},
		{"wrapped not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"inactive event conflict", domain.ErrEventInactive, http.StatusConflict},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d (body %s)", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestErrorHandler_InternalDetailNeverLeaks(t *testing.T) {
	rec := runErrorHandler(t, errors.New("pq: connection refused on 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatalf("internal detail leaked to client: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("expected generic message, got %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoErrorsKeepTheirCode(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestEntityFromPath(t *testing.T) {
	cases := map[string]string{
		"/api/roles/:id":               "roles",
		"/api/bookings":                "bookings",
		"/api/event-tags/:eventId/:tagId": "event-tags",
		"/health":                      "health",
	}
	for path, want := range cases {
		if got := entityFromPath(path); got != want {
			t.Errorf("%s: expected %q, got %q", path, want, got)
		}
	}
}
