package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

func TestProjectCreate(t *testing.T) {
	var got ports.CreateProjectInput
	svc := &stubDashboardService{
		createProjectFn: func(_ context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
			got = in
			return &domain.Project{
				ID:        "p1",
				ClientID:  in.ClientID,
				Name:      in.Name,
				Location:  in.Location,
				Status:    in.Status,
				StartDate: in.StartDate,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewProjectHandler(svc)

	body := `{"name":"Duplex","location":"Limbe","client_id":"c1","status":"PENDING","start_date":"2024-06-01"}`
	c, rec := newJSONContext(http.MethodPost, "/v1/projects", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.ClientID != "c1" || got.Status != domain.StatusPending {
		t.Fatalf("input not forwarded: %+v", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["id"] != "p1" || resp["progress"] != float64(0) {
		t.Fatalf("unexpected project payload: %v", resp)
	}
}

func TestProjectCreate_ValidationRejections(t *testing.T) {
	created := false
	svc := &stubDashboardService{
		createProjectFn: func(context.Context, ports.CreateProjectInput) (*domain.Project, error) {
			created = true
			return nil, nil
		},
	}
	h := NewProjectHandler(svc)

	cases := []struct {
		name string
		body string
	}{
		{"missing client id", `{"name":"Duplex","location":"Limbe","status":"PENDING","start_date":"2024-06-01"}`},
		{"unknown status", `{"name":"Duplex","location":"Limbe","client_id":"c1","status":"DONE","start_date":"2024-06-01"}`},
		{"bad start date", `{"name":"Duplex","location":"Limbe","client_id":"c1","status":"PENDING","start_date":"June 1st"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/v1/projects", tc.body)
			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
	if created {
		t.Fatalf("service must not be called for rejected input")
	}
}

func TestProjectCreate_ServiceErrorPropagates(t *testing.T) {
	svc := &stubDashboardService{
		createProjectFn: func(context.Context, ports.CreateProjectInput) (*domain.Project, error) {
			return nil, domain.ErrProfileNotFound
		},
	}
	h := NewProjectHandler(svc)

	body := `{"name":"Duplex","location":"Limbe","client_id":"ghost","status":"PENDING","start_date":"2024-06-01"}`
	c, _ := newJSONContext(http.MethodPost, "/v1/projects", body)
	if err := h.Create(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected service error to propagate, got %v", err)
	}
}

func TestListClients(t *testing.T) {
	svc := &stubDashboardService{
		listClientsFn: func(context.Context) ([]domain.Profile, error) {
			return []domain.Profile{
				{ID: "c1", Name: "Jane", Email: "jane@example.com", Role: domain.RoleClient},
				{ID: "c2", Name: "John", Email: "john@example.com", Role: domain.RoleClient},
			}, nil
		},
	}
	h := NewProjectHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/v1/clients", "")
	if err := h.ListClients(c); err != nil {
		t.Fatalf("ListClients returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	data, _ := resp["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(data))
	}
	first, _ := data[0].(map[string]any)
	if first["id"] != "c1" || first["role"] != domain.RoleClient {
		t.Fatalf("unexpected client payload: %v", first)
	}
}
