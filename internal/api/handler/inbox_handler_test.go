package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/service"
)

type recordingInboxRepo struct {
	bookings []domain.Booking
	messages []domain.ContactMessage
}

func (r *recordingInboxRepo) InsertBooking(_ context.Context, b *domain.Booking) error {
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *recordingInboxRepo) InsertContactMessage(_ context.Context, m *domain.ContactMessage) error {
	r.messages = append(r.messages, *m)
	return nil
}

func newInboxHandler() (*InboxHandler, *recordingInboxRepo) {
	repo := &recordingInboxRepo{}
	return NewInboxHandler(service.NewInboxService(repo, zerolog.Nop())), repo
}

func TestCreateBooking(t *testing.T) {
	h, repo := newInboxHandler()

	body := `{"client_name":"Jane Mbua","phone":"+237670000000","email":"jane@example.com",` +
		`"service_type":"Building Construction","date":"2024-07-01","time":"10:00","message":"Site at Mile 17"}`
	c, rec := newJSONContext(http.MethodPost, "/v1/bookings", body)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected one stored booking, got %d", len(repo.bookings))
	}

	stored := repo.bookings[0]
	if stored.ClientName != "Jane Mbua" || stored.ServiceType != "Building Construction" {
		t.Fatalf("unexpected stored booking: %+v", stored)
	}
	// Date, time, and message fold into the description field.
	for _, want := range []string{"2024-07-01", "10:00", "Site at Mile 17"} {
		if !strings.Contains(stored.Description, want) {
			t.Fatalf("description missing %q: %q", want, stored.Description)
		}
	}
}

func TestCreateBooking_ValidationRejections(t *testing.T) {
	h, repo := newInboxHandler()

	cases := []struct {
		name string
		body string
	}{
		{"missing phone", `{"client_name":"Jane","service_type":"Surveying"}`},
		{"missing service type", `{"client_name":"Jane","phone":"+237670000000"}`},
		{"bad optional email", `{"client_name":"Jane","phone":"+237670000000","service_type":"Surveying","email":"nope"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newJSONContext(http.MethodPost, "/v1/bookings", tc.body)
			err := h.CreateBooking(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("rejected booking must not be stored")
	}
}

func TestCreateContactMessage(t *testing.T) {
	h, repo := newInboxHandler()

	body := `{"name":"John Epie","email":"john@example.com","subject":"Quotation","message":"Need an estimate."}`
	c, rec := newJSONContext(http.MethodPost, "/v1/contact", body)
	if err := h.CreateContactMessage(c); err != nil {
		t.Fatalf("CreateContactMessage returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("expected one stored message, got %d", len(repo.messages))
	}
	if repo.messages[0].Subject != "Quotation" {
		t.Fatalf("unexpected stored message: %+v", repo.messages[0])
	}
}

func TestCreateContactMessage_ValidationRejections(t *testing.T) {
	h, repo := newInboxHandler()

	c, _ := newJSONContext(http.MethodPost, "/v1/contact", `{"name":"John","email":"john@example.com"}`)
	err := h.CreateContactMessage(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if len(repo.messages) != 0 {
		t.Fatalf("rejected message must not be stored")
	}
}
