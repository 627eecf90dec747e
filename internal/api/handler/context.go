package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
)

// ctxIdentity extracts the session identity injected by the Auth middleware.
// A non-empty email proves the middleware ran; without it the request never
// had a valid session and is rejected with 401. Role may legitimately be
// empty — absence of the claim and a non-admin caller look the same here.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	role, _ := c.Get("role").(string)

	return domain.Identity{Email: email, Name: name, Role: role}, nil
}
