package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
	"github.com/fotabongroyal/portal-api/internal/core/ports"
)

// InboxService persists the one-shot marketing submissions (bookings and
// contact messages). No read-back, no state machine.
type InboxService struct {
	repo ports.InboxRepository
	log  zerolog.Logger
}

func NewInboxService(repo ports.InboxRepository, log zerolog.Logger) *InboxService {
	return &InboxService{repo: repo, log: log}
}

func (s *InboxService) SubmitBooking(ctx context.Context, b domain.Booking) error {
	if b.ClientName == "" || b.Phone == "" || b.ServiceType == "" {
		return domain.ErrInvalidInput
	}

	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UTC()

	if err := s.repo.InsertBooking(ctx, &b); err != nil {
		s.log.Error().Err(err).Msg("failed to insert booking")
		return err
	}

	s.log.Info().Str("booking_id", b.ID).Str("service_type", b.ServiceType).Msg("booking received")
	return nil
}

func (s *InboxService) SubmitContactMessage(ctx context.Context, m domain.ContactMessage) error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return domain.ErrInvalidInput
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now().UTC()

	if err := s.repo.InsertContactMessage(ctx, &m); err != nil {
		s.log.Error().Err(err).Msg("failed to insert contact message")
		return err
	}

	s.log.Info().Str("message_id", m.ID).Msg("contact message received")
	return nil
}
