package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// AuthHandler consumes the identity assertion produced by the external
// provider's callback and turns it into a session token.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signInResponse struct {
	Token string           `json:"token"`
	User  *domain.Identity `json:"user"`
}

// SignIn handles POST /auth/signin.
//
// @Summary      Exchange a provider identity assertion for a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Identity assertion from the provider callback"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.SignIn(c.Request().Context(), ports.AssertionInput{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Data:    signInResponse{Token: token, User: user},
	})
}
