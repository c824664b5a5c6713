package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// stubUserService lets each test pin the behavior of the one or two
// methods a handler touches; the rest are never called.
type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (*domain.User, error)
	updateFn   func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubUserService) List(context.Context, int, int) ([]domain.User, error) { return nil, nil }
func (s *stubUserService) Count(context.Context) (int64, error)                  { return 0, nil }
func (s *stubUserService) GetByID(context.Context, int64) (*domain.User, error)  { return nil, nil }
func (s *stubUserService) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (s *stubUserService) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, nil
}
func (s *stubUserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, input)
	}
	return nil, nil
}
func (s *stubUserService) ChangeRole(context.Context, int64, int64) error { return nil }
func (s *stubUserService) Delete(context.Context, int64) error            { return nil }

type stubTokenIssuer struct {
	token string
	err   error
}

func (s *stubTokenIssuer) Issue(*domain.User) (string, error) {
	return s.token, s.err
}

// stubThrottle records calls; allow controls the verdict.
type stubThrottle struct {
	allow    bool
	allowErr error
	resets   int
}

func (s *stubThrottle) Allow(context.Context, string) (bool, error) {
	return s.allow, s.allowErr
}

func (s *stubThrottle) Reset(context.Context, string) error {
	s.resets++
	return nil
}

func newAuthContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			return &domain.User{ID: 1, Username: input.Username, Email: input.Email, RoleID: domain.RoleStandardUser}, nil
		},
	}
	h := NewAuthHandler(users, &stubTokenIssuer{}, nil, zerolog.Nop())

	c, rec := newAuthContext(t, `{"username":"alice","name":"Alice","email":"alice@example.com","password":"secret123"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected username alice, got %q", user.Username)
	}
	if strings.Contains(rec.Body.String(), "secret123") {
		t.Error("response must not contain the password")
	}
}

func TestAuthHandler_Register_ShortPasswordRejectedBeforeService(t *testing.T) {
	users := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatal("service must not be called for an invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(users, &stubTokenIssuer{}, nil, zerolog.Nop())

	c, _ := newAuthContext(t, `{"username":"alice","name":"Alice","email":"alice@example.com","password":"short"}`)
	err := h.Register(c)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users := &stubUserService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "alice"}, nil
		},
	}
	throttle := &stubThrottle{allow: true}
	h := NewAuthHandler(users, &stubTokenIssuer{token: "signed.jwt"}, throttle, zerolog.Nop())

	c, rec := newAuthContext(t, `{"username":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "signed.jwt" {
		t.Errorf("expected issued token, got %q", resp.Token)
	}
	if throttle.resets != 1 {
		t.Errorf("throttle must be reset after success, resets=%d", throttle.resets)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	users := &stubUserService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			t.Fatal("login must not run when throttled")
			return nil, nil
		},
	}
	h := NewAuthHandler(users, &stubTokenIssuer{}, &stubThrottle{allow: false}, zerolog.Nop())

	c, _ := newAuthContext(t, `{"username":"alice","password":"secret123"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestAuthHandler_Login_ThrottleFaultFailsOpen(t *testing.T) {
	users := &stubUserService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: "alice"}, nil
		},
	}
	throttle := &stubThrottle{allowErr: errors.New("redis: connection refused")}
	h := NewAuthHandler(users, &stubTokenIssuer{token: "signed.jwt"}, throttle, zerolog.Nop())

	c, rec := newAuthContext(t, `{"username":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("throttle outage must not block logins: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentialsPropagate(t *testing.T) {
	users := &stubUserService{
		loginFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(users, &stubTokenIssuer{}, nil, zerolog.Nop())

	c, _ := newAuthContext(t, `{"username":"alice","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
