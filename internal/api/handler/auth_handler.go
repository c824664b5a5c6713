package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventhive/booking-api/internal/api/metrics"
	"github.com/eventhive/booking-api/internal/core/domain"
	"github.com/eventhive/booking-api/internal/core/ports"
)

// LoginThrottle limits login attempts per username. The auth handler
// fails open when the throttle itself errors so a Redis outage cannot
// lock everyone out.
type LoginThrottle interface {
	Allow(ctx context.Context, username string) (bool, error)
	Reset(ctx context.Context, username string) error
}

type AuthHandler struct {
	users    ports.UserService
	tokens   ports.TokenIssuer
	throttle LoginThrottle
	log      zerolog.Logger
}

// NewAuthHandler builds the auth handler. throttle may be nil when Redis
// is not configured; throttling is then skipped.
func NewAuthHandler(users ports.UserService, tokens ports.TokenIssuer, throttle LoginThrottle, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, throttle: throttle, log: log}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   int64  `json:"role_id"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		ok, err := h.throttle.Allow(ctx, req.Username)
		if err != nil {
			h.log.Warn().Err(err).Msg("login throttle unavailable, continuing")
		} else if !ok {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts, try again later")
		}
	}

	user, err := h.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}

	if h.throttle != nil {
		if err := h.throttle.Reset(ctx, req.Username); err != nil {
			h.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}
