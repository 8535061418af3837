package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/staffline/workforce/platform/go/persistence"
)

// Repository defines the persistence operations required by the workers service.
type Repository interface {
	Create(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error)
	List(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error)
	Get(ctx context.Context, id uuid.UUID) (persistence.Worker, error)
	Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	store *persistence.WorkerStore
}

// NewPostgresRepository constructs a repository backed by the shared persistence layer.
func NewPostgresRepository(store *persistence.WorkerStore) Repository {
	if store == nil {
		panic("worker store is required")
	}
	return &postgresRepository{store: store}
}

func (r *postgresRepository) Create(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error) {
	return r.store.CreateWorker(ctx, params)
}

func (r *postgresRepository) List(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
	return r.store.ListWorkers(ctx, params)
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (persistence.Worker, error) {
	return r.store.GetWorker(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error) {
	return r.store.UpdateWorker(ctx, id, params)
}

func (r *postgresRepository) Remove(ctx context.Context, id uuid.UUID) error {
	return r.store.RemoveWorker(ctx, id)
}
