package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/staffline/workforce/platform/go/persistence"
	"github.com/staffline/workforce/platform/go/query"
	"github.com/staffline/workforce/platform/go/validation"
)

type mockRepository struct {
	createFn func(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error)
	listFn   func(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error)
	getFn    func(ctx context.Context, id uuid.UUID) (persistence.Worker, error)
	updateFn func(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error)
	removeFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) Create(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, params)
}

func (m *mockRepository) List(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
	if m.listFn == nil {
		panic("listFn not configured")
	}
	return m.listFn(ctx, params)
}

func (m *mockRepository) Get(ctx context.Context, id uuid.UUID) (persistence.Worker, error) {
	if m.getFn == nil {
		panic("getFn not configured")
	}
	return m.getFn(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error) {
	if m.updateFn == nil {
		panic("updateFn not configured")
	}
	return m.updateFn(ctx, id, params)
}

func (m *mockRepository) Remove(ctx context.Context, id uuid.UUID) error {
	if m.removeFn == nil {
		panic("removeFn not configured")
	}
	return m.removeFn(ctx, id)
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()

	svc := New(&mockRepository{})

	_, err := svc.Create(context.Background(), CreateInput{FirstName: "  ", Email: "not-an-email"})
	require.Error(t, err)

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "firstName")
	require.Contains(t, validationErr.Fields, "email")
}

func TestServiceCreateSuccess(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repository := &mockRepository{}

	repository.createFn = func(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error) {
		require.Equal(t, "John", params.FirstName)
		require.Equal(t, "Doe", params.LastName)
		require.Equal(t, "j@x.com", params.Email)

		return persistence.Worker{
			ID:        uuid.New(),
			FirstName: params.FirstName,
			LastName:  params.LastName,
			Email:     params.Email,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	}

	svc := New(repository)

	worker, err := svc.Create(context.Background(), CreateInput{FirstName: " John ", LastName: "Doe", Email: " J@X.com "})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, worker.ID)
	require.True(t, worker.IsActive)
	require.Equal(t, "j@x.com", worker.Email)
}

func TestServiceCreateConflict(t *testing.T) {
	t.Parallel()

	repository := &mockRepository{
		createFn: func(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error) {
			return persistence.Worker{}, persistence.ErrConflict
		},
	}

	_, err := New(repository).Create(context.Background(), CreateInput{FirstName: "a", LastName: "b", Email: "a@b.co"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestServiceListBuildsCriteria(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	id := uuid.New()
	first := "john"
	active := false

	repository := &mockRepository{}
	repository.listFn = func(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
		require.Equal(t, query.Page{Page: 2, Take: 5}, params.Page)
		require.Equal(t, []string{"email"}, params.Sort.Keys)
		require.Equal(t, query.Desc, params.Sort.Direction)

		pred := persistence.WorkerFilters.Build(params.Criteria)
		require.Equal(t, "first_name ILIKE $1 AND is_active = $2", pred.SQL())
		require.Equal(t, []any{"%john%", false}, pred.Args())

		return persistence.ListWorkersResult{
			Workers:    []persistence.Worker{{ID: id, FirstName: "John", CreatedAt: now, UpdatedAt: now}},
			TotalItems: 7,
		}, nil
	}

	result, err := New(repository).List(context.Background(), ListOptions{
		Page:   query.Page{Page: 2, Take: 5},
		Filter: Filter{FirstName: &first, IsActive: &active},
		Sort:   query.Sort{Keys: []string{"email"}, Direction: query.Desc},
	})
	require.NoError(t, err)
	require.Equal(t, 7, result.Total)
	require.Len(t, result.Workers, 1)
	require.Equal(t, id, result.Workers[0].ID)
}

func TestServiceListEmpty(t *testing.T) {
	t.Parallel()

	repository := &mockRepository{
		listFn: func(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
			require.True(t, persistence.WorkerFilters.Build(params.Criteria).Empty())
			return persistence.ListWorkersResult{Workers: []persistence.Worker{}}, nil
		},
	}

	result, err := New(repository).List(context.Background(), ListOptions{Page: query.ParsePage("", "")})
	require.NoError(t, err)
	require.Equal(t, 0, result.Total)
	require.NotNil(t, result.Workers)
	require.Empty(t, result.Workers)
}

func TestServiceGetNotFound(t *testing.T) {
	t.Parallel()

	repository := &mockRepository{
		getFn: func(ctx context.Context, id uuid.UUID) (persistence.Worker, error) {
			return persistence.Worker{}, persistence.ErrNotFound
		},
	}

	svc := New(repository)

	_, err := svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)

	// the nil identifier never reaches the repository
	_, err = New(&mockRepository{}).Get(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceUpdateRequiresAField(t *testing.T) {
	t.Parallel()

	_, err := New(&mockRepository{}).Update(context.Background(), uuid.New(), UpdateInput{})

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, validation.PayloadField)
}

func TestServiceUpdateSuccess(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	email := " New@Example.com"

	repository := &mockRepository{}
	repository.updateFn = func(ctx context.Context, got uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error) {
		require.Equal(t, id, got)
		require.Nil(t, params.FirstName)
		require.NotNil(t, params.Email)
		require.Equal(t, "new@example.com", *params.Email)
		return persistence.Worker{ID: id, Email: *params.Email, IsActive: true}, nil
	}

	worker, err := New(repository).Update(context.Background(), id, UpdateInput{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", worker.Email)
}

func TestServiceUpdateRejectsBlankName(t *testing.T) {
	t.Parallel()

	blank := "   "
	_, err := New(&mockRepository{}).Update(context.Background(), uuid.New(), UpdateInput{LastName: &blank})

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "lastName")
}

func TestServiceRemove(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	calls := 0

	repository := &mockRepository{
		removeFn: func(ctx context.Context, got uuid.UUID) error {
			calls++
			if got != id {
				return persistence.ErrNotFound
			}
			return nil
		},
	}

	svc := New(repository)

	require.NoError(t, svc.Remove(context.Background(), id))
	require.NoError(t, svc.Remove(context.Background(), id))
	require.ErrorIs(t, svc.Remove(context.Background(), uuid.New()), ErrNotFound)
	require.ErrorIs(t, svc.Remove(context.Background(), uuid.Nil), ErrNotFound)
	require.Equal(t, 3, calls)
}

func TestServicePropagatesStoreFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	repository := &mockRepository{
		listFn: func(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
			return persistence.ListWorkersResult{}, boom
		},
	}

	_, err := New(repository).List(context.Background(), ListOptions{})
	require.ErrorIs(t, err, boom)
}

func TestNewPanicsWithoutRepository(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { New(nil) })
}
