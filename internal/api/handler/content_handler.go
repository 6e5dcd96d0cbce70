package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/content"
)

// ContentHandler serves the fixed marketing content.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type contentResponse struct {
	Company  content.CompanyInfo `json:"company"`
	Services []content.Service   `json:"services"`
}

// Get handles GET /v1/content.
//
// @Summary      Get company info and service catalogue
// @Tags         marketing
// @Produce      json
// @Success      200  {object}  contentResponse
// @Router       /v1/content [get]
func (h *ContentHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, contentResponse{
		Company:  content.Company,
		Services: content.Services,
	})
}
