package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/api/metrics"
	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for sign-in, sign-out, and registration.
type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionService
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login authenticates a user by email and password and returns a session token.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, identity, err := h.authService.SignInWithPassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		// An unknown email reads the same as a wrong password.
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC(),
		User:      toIdentityResponse(identity),
	})
}

// Logout invalidates the caller's session and removes the cached identity.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session invalidated"
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.sessions.SignOut(c.Request().Context(), identity.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register creates a new portal account. Administrator capability.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		User: toIdentityResponse(domain.IdentityOf(profile)),
	})
}
