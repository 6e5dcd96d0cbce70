package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

const (
	collectionBookings        = "bookings"
	collectionContactMessages = "contact_messages"
)

// InboxRepository persists the one-shot marketing submissions.
type InboxRepository struct {
	bookings *mongo.Collection
	messages *mongo.Collection
}

func NewInboxRepository(db *mongo.Database) *InboxRepository {
	return &InboxRepository{
		bookings: db.Collection(collectionBookings),
		messages: db.Collection(collectionContactMessages),
	}
}

func (r *InboxRepository) InsertBooking(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.bookings.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *InboxRepository) InsertContactMessage(ctx context.Context, m *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
