package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/staffline/workforce/platform/go/persistence"
)

// Repository defines the persistence operations required by the workplaces service.
type Repository interface {
	Create(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error)
	List(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error)
	Get(ctx context.Context, id uuid.UUID) (persistence.Workplace, error)
	Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	store *persistence.WorkplaceStore
}

// NewPostgresRepository constructs a repository backed by the shared persistence layer.
func NewPostgresRepository(store *persistence.WorkplaceStore) Repository {
	if store == nil {
		panic("workplace store is required")
	}
	return &postgresRepository{store: store}
}

func (r *postgresRepository) Create(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error) {
	return r.store.CreateWorkplace(ctx, params)
}

func (r *postgresRepository) List(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error) {
	return r.store.ListWorkplaces(ctx, params)
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (persistence.Workplace, error) {
	return r.store.GetWorkplace(ctx, id)
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
	return r.store.UpdateWorkplace(ctx, id, params)
}

func (r *postgresRepository) Remove(ctx context.Context, id uuid.UUID) error {
	return r.store.RemoveWorkplace(ctx, id)
}
