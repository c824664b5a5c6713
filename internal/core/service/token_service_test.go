package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventhive/booking-api/internal/core/domain"
)

func testTokenConfig() JWTConfig {
	return JWTConfig{
		Secret:         "test-secret",
		Issuer:         "booking-api",
		Audience:       "booking-api-clients",
		ExpiresMinutes: 15,
	}
}

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if !tkn.Valid {
		t.Fatal("token is not valid")
	}
	return claims
}

func TestTokenService_Issue_Claims(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	user := &domain.User{
		ID:       7,
		Username: "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		RoleID:   domain.RoleAdmin,
	}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, token, "test-secret")
	if claims["sub"] != "7" {
		t.Errorf("expected sub %q, got %v", "7", claims["sub"])
	}
	if claims["username"] != "alice" {
		t.Errorf("expected username alice, got %v", claims["username"])
	}
	if claims["iss"] != "booking-api" {
		t.Errorf("expected issuer booking-api, got %v", claims["iss"])
	}
	// Numeric claims round-trip as float64.
	if roleID, _ := claims["role_id"].(float64); int64(roleID) != domain.RoleAdmin {
		t.Errorf("expected role_id %d, got %v", domain.RoleAdmin, claims["role_id"])
	}
}

func TestTokenService_Issue_Expiry(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	token, err := svc.Issue(&domain.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := parseClaims(t, token, "test-secret")
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 15*time.Minute {
		t.Errorf("expected 15m lifetime, got %v", got)
	}
}

func TestTokenService_Issue_WrongSecretFailsVerification(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	token, err := svc.Issue(&domain.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil && tkn.Valid {
		t.Fatal("token must not verify under a different secret")
	}
}

func TestTokenService_Issue_NilUser(t *testing.T) {
	svc := NewTokenService(testTokenConfig())
	if _, err := svc.Issue(nil); err == nil {
		t.Fatal("expected error for nil user")
	}
}

func TestTokenService_DefaultExpiry(t *testing.T) {
	cfg := testTokenConfig()
	cfg.ExpiresMinutes = 0
	svc := NewTokenService(cfg)

	token, err := svc.Issue(&domain.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims := parseClaims(t, token, "test-secret")
	exp, _ := claims["exp"].(float64)
	iat, _ := claims["iat"].(float64)
	if got := time.Duration(exp-iat) * time.Second; got != 60*time.Minute {
		t.Errorf("expected default 60m lifetime, got %v", got)
	}
}
