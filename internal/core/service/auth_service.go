package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/hosteldesk/hostel-portal/internal/api/metrics"
	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// AuthService implements the credential gate and role resolver.
type AuthService struct {
	policy    domain.AccessPolicy
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(policy domain.AccessPolicy, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{policy: policy, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// SignIn gates the asserted identity against the allow-list, resolves the
// role, and issues the session token. The gate runs before any token is
// built, so a denied identity never obtains a session artifact.
func (s *AuthService) SignIn(_ context.Context, in ports.AssertionInput) (string, *domain.Identity, error) {
	if !s.policy.Allowed(in.Email) {
		metrics.SignInsTotal.WithLabelValues("denied").Inc()
		s.log.Warn().Str("email", in.Email).Msg("sign-in denied: not on allowed list")
		return "", nil, domain.ErrSignInNotAllowed
	}

	user := &domain.Identity{
		Email: in.Email,
		Name:  in.Name,
		Image: in.Image,
	}
	// Role resolution happens exactly once, here. The result rides in the
	// token unchanged for its whole lifetime.
	if s.policy.IsAdmin(in.Email) {
		user.Role = domain.RoleAdmin
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.SignInsTotal.WithLabelValues("admitted").Inc()
	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("sign-in admitted")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	// The role claim is omitted entirely for non-admins; downstream checks
	// treat a missing claim and a non-admin role identically.
	if user.Role != "" {
		claims["role"] = user.Role
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
