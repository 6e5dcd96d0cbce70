package domain

import "time"

// ProjectStatus represents the lifecycle state of a construction project.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "PENDING"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusCompleted  ProjectStatus = "COMPLETED"
)

// ValidProjectStatus reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// PaymentStatus represents the settlement state of a milestone payment.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
)

// Project is the core aggregate root. Each project has exactly one owning
// client; an admin sees many projects, a client sees at most its own.
type Project struct {
	ID        string        `json:"id" bson:"_id"`
	ClientID  string        `json:"client_id" bson:"client_id"`
	Name      string        `json:"name" bson:"name"`
	Location  string        `json:"location" bson:"location"`
	Status    ProjectStatus `json:"status" bson:"status"`
	StartDate string        `json:"start_date" bson:"start_date"`
	Progress  int           `json:"progress" bson:"progress"` // 0..100
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// ConstructionStage is a named phase of a project. Percentage is the
// author-entered weight of the phase; stage weights across a project are
// informational and are not required to sum to 100.
type ConstructionStage struct {
	ID         string `json:"id" bson:"_id"`
	ProjectID  string `json:"project_id" bson:"project_id"`
	Name       string `json:"name" bson:"name"`
	Percentage int    `json:"percentage" bson:"percentage"`
	Completed  bool   `json:"completed" bson:"completed"`
}

// Payment is a milestone payment tied to a project phase.
type Payment struct {
	ID        string        `json:"id" bson:"_id"`
	ProjectID string        `json:"project_id" bson:"project_id"`
	Amount    float64       `json:"amount" bson:"amount"`
	Status    PaymentStatus `json:"status" bson:"status"`
	Date      string        `json:"date" bson:"date"`
	Milestone string        `json:"milestone" bson:"milestone"`
}

// StageWeightTotal sums the author-entered stage weights of a project.
func StageWeightTotal(stages []ConstructionStage) int {
	total := 0
	for _, st := range stages {
		total += st.Percentage
	}
	return total
}
