package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fotabongroyal/portal-api/internal/core/domain"
)

const (
	collectionProjects = "projects"
	collectionStages   = "project_stages"
	collectionPayments = "payments"
)

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

// Create inserts a new project document.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListAll returns every project ordered by creation time descending.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []domain.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// FindByClientID retrieves the project owned by clientID. When the client
// owns several (a data-integrity condition), the newest one wins.
func (r *ProjectRepository) FindByClientID(ctx context.Context, clientID string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var p domain.Project
	err := r.col.FindOne(ctx, bson.M{"client_id": clientID}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

// CountByClientID reports how many projects a client owns.
func (r *ProjectRepository) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates necessary indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// StageRepository reads construction stages for a project.
type StageRepository struct {
	col *mongo.Collection
}

func NewStageRepository(db *mongo.Database) *StageRepository {
	return &StageRepository{col: db.Collection(collectionStages)}
}

func (r *StageRepository) ListByProject(ctx context.Context, projectID string) ([]domain.ConstructionStage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer cur.Close(ctx)

	var stages []domain.ConstructionStage
	if err := cur.All(ctx, &stages); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// PaymentRepository reads milestone payments for a project.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

func (r *PaymentRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	var payments []domain.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
