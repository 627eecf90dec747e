package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

const testSecret = "test-secret"

func newTestAuthService() *AuthService {
	policy := domain.NewAccessPolicy(
		[]string{"student@hostel.edu", "warden@hostel.edu"},
		[]string{"warden@hostel.edu"},
	)
	return NewAuthService(policy, testSecret, 0, zerolog.Nop())
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("parse token: %v", err)
	}
	return claims
}

func TestSignIn_DeniedWhenNotOnAllowList(t *testing.T) {
	s := newTestAuthService()

	token, user, err := s.SignIn(context.Background(), ports.AssertionInput{
		Email: "intruder@elsewhere.com",
		Name:  "Intruder",
	})
	if !errors.Is(err, domain.ErrSignInNotAllowed) {
		t.Fatalf("expected ErrSignInNotAllowed, got %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("denied sign-in must not produce a session artifact")
	}
}

func TestSignIn_DeniedWhenEmailEmpty(t *testing.T) {
	s := newTestAuthService()

	_, _, err := s.SignIn(context.Background(), ports.AssertionInput{Name: "Nobody"})
	if !errors.Is(err, domain.ErrSignInNotAllowed) {
		t.Fatalf("expected ErrSignInNotAllowed for empty email, got %v", err)
	}
}

func TestSignIn_AdminGetsRoleClaim(t *testing.T) {
	s := newTestAuthService()

	token, user, err := s.SignIn(context.Background(), ports.AssertionInput{
		Email: "warden@hostel.edu",
		Name:  "Warden",
	})
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	claims := parseClaims(t, token)
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role claim %q, got %v", domain.RoleAdmin, claims["role"])
	}
}

func TestSignIn_StudentGetsNoRoleClaim(t *testing.T) {
	s := newTestAuthService()

	token, user, err := s.SignIn(context.Background(), ports.AssertionInput{
		Email: "student@hostel.edu",
		Name:  "Student",
	})
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if user.Role != "" {
		t.Fatalf("expected no role, got %q", user.Role)
	}

	// The claim must be absent entirely, not empty.
	claims := parseClaims(t, token)
	if _, ok := claims["role"]; ok {
		t.Fatalf("role claim should be absent for non-admins, got %v", claims["role"])
	}
	if claims["email"] != "student@hostel.edu" {
		t.Fatalf("email claim missing, got %v", claims["email"])
	}
}
