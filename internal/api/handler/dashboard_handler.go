package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/api/metrics"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// DashboardHandler serves the role-scoped dashboard aggregate.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get handles GET /v1/dashboard. The resolved identity selects the view:
// administrators get every project, clients get their own project with its
// stages and payments, or an explicit empty view.
//
// @Summary      Load the role-scoped dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	view, err := h.service.Load(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	metrics.DashboardLoadDuration.Observe(time.Since(start).Seconds())
	metrics.DashboardLoadsTotal.WithLabelValues(string(view.State)).Inc()

	return c.JSON(http.StatusOK, toDashboardResponse(view))
}
