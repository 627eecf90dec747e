package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hosteldesk/hostel-portal/internal/core/ports"
)

// WaterCoolerHandler handles HTTP requests for cooler readings.
type WaterCoolerHandler struct {
	service ports.WaterCoolerService
}

func NewWaterCoolerHandler(service ports.WaterCoolerService) *WaterCoolerHandler {
	return &WaterCoolerHandler{service: service}
}

// List handles GET /watercoolers — public, sorted by name. Coolers that have
// never been written simply do not appear; the client renders those as "data
// not available".
//
// @Summary      List water cooler readings
// @Tags         watercoolers
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /watercoolers [get]
func (h *WaterCoolerHandler) List(c echo.Context) error {
	coolers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: coolers})
}

// Upsert handles POST /admin/watercoolers — record a reading, creating the
// cooler record on first write.
//
// @Summary      Record a water cooler reading (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertCoolerRequest  true  "Cooler name and TDS reading"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/watercoolers [post]
func (h *WaterCoolerHandler) Upsert(c echo.Context) error {
	var req upsertCoolerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cooler, err := h.service.Upsert(c.Request().Context(), ports.UpsertCoolerInput{
		Name: req.Name,
		TDS:  req.TDS,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true, Data: cooler})
}
