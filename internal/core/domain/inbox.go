package domain

import "time"

// Booking is a one-shot site-visit request submitted from the marketing
// pages. Write-only from the portal's point of view.
type Booking struct {
	ID          string    `json:"id" bson:"_id"`
	ClientName  string    `json:"client_name" bson:"client_name"`
	Phone       string    `json:"phone" bson:"phone"`
	Email       string    `json:"email" bson:"email"`
	ServiceType string    `json:"service_type" bson:"service_type"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ContactMessage is a one-shot contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
