package ports

import (
	"context"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// AssertionInput carries the identity assertion received from the external
// provider's callback. Authenticity of the assertion is the provider's
// concern; this system only applies local policy to it.
type AssertionInput struct {
	Email string
	Name  string
	Image string
}

// AuthService admits or denies a provider-asserted identity and mints the
// session token for admitted ones.
type AuthService interface {
	// SignIn runs the credential gate and role resolution. On admission it
	// returns a signed session token and the resolved identity; on denial it
	// returns domain.ErrSignInNotAllowed and no token is ever issued.
	SignIn(ctx context.Context, in AssertionInput) (string, *domain.Identity, error)
}
