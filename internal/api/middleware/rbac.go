package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole is the reusable authorization guard for privileged routes.
// It admits the request iff the Auth middleware injected a role matching one
// of allowedRoles; a missing role claim and an insufficient one are rejected
// identically with 403. The decision is made fresh on every request from the
// token's own role claim.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			return next(c)
		}
	}
}
