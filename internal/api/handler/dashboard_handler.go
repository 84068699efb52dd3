package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/admin-console/internal/core/service"
)

// DashboardHandler serves the landing-screen aggregates.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary renders the headline counts and revenue aggregates.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.DashboardSummary
// @Failure      502  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	token, err := sessionToken(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboard.Summary(c.Request().Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
