package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

func newTestJWTService(accessTTL, refreshTTL time.Duration) domain.TokenService {
	return NewJWTService("access-secret", "refresh-secret", "steptracker-test", accessTTL, refreshTTL)
}

func TestJWTServiceImpl_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	userID, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestJWTServiceImpl_TokensAreUniquePerIssuance(t *testing.T) {
	svc := newTestJWTService(time.Hour, 7*24*time.Hour)

	first, err := svc.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected distinct tokens for the same user")
	}
}

func TestJWTServiceImpl_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.ValidateAccessToken(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_MalformedToken(t *testing.T) {
	svc := newTestJWTService(time.Hour, 7*24*time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateAccessToken(tt.token); !errors.Is(err, domain.ErrTokenMalformed) {
				t.Errorf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

// A refresh token must never validate as an access token, and vice
// versa: the two kinds are signed with distinct secrets.
func TestJWTServiceImpl_KindsAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService(time.Hour, 7*24*time.Hour)

	refreshToken, err := svc.GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ValidateAccessToken(refreshToken); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Errorf("expected refresh token to be rejected as access token, got %v", err)
	}

	accessToken, err := svc.GenerateAccessToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(accessToken); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Errorf("expected access token to be rejected as refresh token, got %v", err)
	}
}
