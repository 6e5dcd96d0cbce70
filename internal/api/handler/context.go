package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware and
// fast-fails before any service call when it is absent (presence proves both
// Auth and Session ran).
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get("identity").(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
