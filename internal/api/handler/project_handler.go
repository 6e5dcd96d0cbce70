package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/api/metrics"
	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// ProjectHandler owns the administrator project endpoints.
type ProjectHandler struct {
	service ports.DashboardService
}

func NewProjectHandler(service ports.DashboardService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /v1/projects. Validation failures never reach the
// store; storage errors are surfaced verbatim so the form can retry.
//
// @Summary      Create a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Name:      req.Name,
		Location:  req.Location,
		ClientID:  req.ClientID,
		Status:    domain.ProjectStatus(req.Status),
		StartDate: req.StartDate,
	})
	if err != nil {
		return err
	}

	metrics.ProjectsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// ListClients handles GET /v1/clients, feeding the create-project form.
//
// @Summary      List all client profiles
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClientsResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ProjectHandler) ListClients(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]identityResponse, 0, len(clients))
	for i := range clients {
		data = append(data, toIdentityResponse(domain.IdentityOf(&clients[i])))
	}
	return c.JSON(http.StatusOK, listClientsResponse{Data: data})
}
