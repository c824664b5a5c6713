package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventhive/booking-api/internal/core/domain"
)

const defaultTokenExpiry = 60 // minutes

// JWTConfig carries the caller-configured token settings.
type JWTConfig struct {
	Secret         string
	Issuer         string
	Audience       string
	ExpiresMinutes int
}

// TokenService mints HS256-signed JWTs carrying the user's identity and
// role id.
type TokenService struct {
	cfg JWTConfig
}

func NewTokenService(cfg JWTConfig) *TokenService {
	if cfg.ExpiresMinutes <= 0 {
		cfg.ExpiresMinutes = defaultTokenExpiry
	}
	return &TokenService{cfg: cfg}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	if user == nil {
		return "", errors.New("token: user is nil")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
		"role_id":  user.RoleID,
		"iss":      s.cfg.Issuer,
		"aud":      s.cfg.Audience,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(time.Duration(s.cfg.ExpiresMinutes) * time.Minute).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.Secret))
}
