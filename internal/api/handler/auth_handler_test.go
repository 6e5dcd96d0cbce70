package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// newJSONContext builds an echo context the way the router does, with the
// request validator installed.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	signInFn   func(ctx context.Context, email, password string) (*ports.Session, *domain.Identity, error)
	signOutFn  func(ctx context.Context, userID string) error
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.Profile, error)
}

func (s *stubAuthService) SignInWithPassword(ctx context.Context, email, password string) (*ports.Session, *domain.Identity, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) SignOut(ctx context.Context, userID string) error {
	return s.signOutFn(ctx, userID)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Profile, error) {
	return s.registerFn(ctx, in)
}

type stubSessionService struct {
	signOutFn func(ctx context.Context, userID string) error
}

func (s *stubSessionService) Resolve(context.Context, string) (*domain.Identity, error) {
	return nil, nil
}

func (s *stubSessionService) Current(string) *domain.Identity { return nil }

func (s *stubSessionService) SignOut(ctx context.Context, userID string) error {
	return s.signOutFn(ctx, userID)
}

func TestLogin_Success(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC()
	auth := &stubAuthService{
		signInFn: func(_ context.Context, email, password string) (*ports.Session, *domain.Identity, error) {
			if email != "client@example.com" || password != "s3cretpass" {
				t.Fatalf("credentials not forwarded: %s / %s", email, password)
			}
			return &ports.Session{UserID: "u1", Token: "token123", ExpiresAt: expires},
				&domain.Identity{ID: "u1", Name: "Jane", Email: email, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"client@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	user, _ := resp["user"].(map[string]any)
	if user["id"] != "u1" || user["role"] != domain.RoleClient {
		t.Fatalf("unexpected user payload: %v", resp["user"])
	}
}

func TestLogin_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessionService{})

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"email":`},
		{"missing password", `{"email":"a@b.com"}`},
		{"bad email", `{"email":"not-an-email","password":"s3cretpass"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/auth/login", tc.body)
			err := h.Login(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestLogin_UnknownEmailReadsAsInvalidCredentials(t *testing.T) {
	auth := &stubAuthService{
		signInFn: func(context.Context, string, string) (*ports.Session, *domain.Identity, error) {
			return nil, nil, domain.ErrProfileNotFound
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"s3cretpass"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must read as invalid credentials, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	var signedOut string
	sessions := &stubSessionService{
		signOutFn: func(_ context.Context, userID string) error {
			signedOut = userID
			return nil
		},
	}
	h := NewAuthHandler(&stubAuthService{}, sessions)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")
	c.Set("identity", &domain.Identity{ID: "u1", Role: domain.RoleClient})

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if signedOut != "u1" {
		t.Fatalf("expected sign-out for u1, got %q", signedOut)
	}
}

func TestLogout_WithoutIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessionService{})

	c, _ := newJSONContext(http.MethodPost, "/auth/logout", "")
	err := h.Logout(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	auth := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.Profile, error) {
			return &domain.Profile{ID: "new-id", Name: in.Name, Email: in.Email, Role: in.Role}, nil
		},
	}
	h := NewAuthHandler(auth, &stubSessionService{})

	body := `{"name":"Jane Mbua","email":"jane@example.com","password":"s3cretpass","role":"CLIENT"}`
	c, rec := newJSONContext(http.MethodPost, "/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	user, _ := resp["user"].(map[string]any)
	if user["id"] != "new-id" || user["role"] != domain.RoleClient {
		t.Fatalf("unexpected user payload: %v", resp["user"])
	}
}

func TestRegister_ValidationRejections(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubSessionService{})

	cases := []struct {
		name string
		body string
	}{
		{"short password", `{"name":"A","email":"a@b.com","password":"short","role":"CLIENT"}`},
		{"unknown role", `{"name":"A","email":"a@b.com","password":"s3cretpass","role":"OWNER"}`},
		{"missing name", `{"email":"a@b.com","password":"s3cretpass","role":"CLIENT"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/auth/register", tc.body)
			err := h.Register(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}
