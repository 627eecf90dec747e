package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for complaint operations.
type ComplaintHandler struct {
	service ports.ComplaintService
}

func NewComplaintHandler(service ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{service: service}
}

// Submit handles POST /complaints.
//
// @Summary      File a new complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitComplaintRequest  true  "Complaint details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /complaints [post]
func (h *ComplaintHandler) Submit(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req submitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.service.Submit(c.Request().Context(), caller, ports.SubmitComplaintInput{
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, successResponse{Success: true, Data: complaint})
}

// ListMine handles GET /complaints/me — the caller's own complaints, newest first.
//
// @Summary      List the caller's complaints
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /complaints/me [get]
func (h *ComplaintHandler) ListMine(c echo.Context) error {
	caller, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	complaints, err := h.service.ListMine(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: complaints})
}

// ListAll handles GET /admin/complaints — every complaint, newest first.
//
// @Summary      List all complaints (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/complaints [get]
func (h *ComplaintHandler) ListAll(c echo.Context) error {
	complaints, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: complaints})
}

// UpdateStatus handles PATCH /admin/complaints/:id.
//
// @Summary      Update a complaint's triage status (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Complaint id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/complaints/{id} [patch]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	complaint, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: complaint})
}

// Delete handles DELETE /admin/complaints/:id.
//
// @Summary      Delete a complaint (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Complaint id"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/complaints/{id} [delete]
func (h *ComplaintHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
