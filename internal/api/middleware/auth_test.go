package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, "u1", domain.RoleAdmin, time.Hour)
	c, _ := newAuthContext("Bearer " + token)

	called := false
	err := Auth(testSecret)(func(c echo.Context) error {
		called = true
		return okHandler(c)
	})(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not invoked")
	}
	if got := c.Get("user_id"); got != "u1" {
		t.Fatalf("user_id not set, got %v", got)
	}
	if got := c.Get("role"); got != domain.RoleAdmin {
		t.Fatalf("role not set, got %v", got)
	}
}

func TestAuth_Rejections(t *testing.T) {
	expired := signToken(t, testSecret, "u1", domain.RoleClient, -time.Hour)
	foreign := signToken(t, "other-secret", "u1", domain.RoleClient, time.Hour)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + foreign},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(tc.header)
			err := Auth(testSecret)(okHandler)(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

type stubResolver struct {
	identity *domain.Identity
	err      error
}

func (r *stubResolver) Resolve(context.Context, string) (*domain.Identity, error) {
	return r.identity, r.err
}

func (r *stubResolver) Current(string) *domain.Identity { return r.identity }

func (r *stubResolver) SignOut(context.Context, string) error { return nil }

func TestSession_ResolvedIdentitySet(t *testing.T) {
	resolver := &stubResolver{identity: &domain.Identity{ID: "u1", Role: domain.RoleClient}}
	c, _ := newAuthContext("")
	c.Set("user_id", "u1")

	err := Session(resolver)(okHandler)(c)
	if err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	identity, ok := c.Get("identity").(*domain.Identity)
	if !ok || identity.ID != "u1" {
		t.Fatalf("identity not injected, got %v", c.Get("identity"))
	}
}

func TestSession_AnonymousRejected(t *testing.T) {
	resolver := &stubResolver{identity: nil}
	c, _ := newAuthContext("")
	c.Set("user_id", "u1")

	err := Session(resolver)(okHandler)(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous session, got %v", err)
	}
}

func TestSession_MissingClaimsRejected(t *testing.T) {
	c, _ := newAuthContext("")

	err := Session(&stubResolver{})(okHandler)(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestSession_ResolverErrorPropagates(t *testing.T) {
	resolver := &stubResolver{err: errors.New("store down")}
	c, _ := newAuthContext("")
	c.Set("user_id", "u1")

	if err := Session(resolver)(okHandler)(c); err == nil {
		t.Fatalf("expected resolver error to propagate")
	}
}
