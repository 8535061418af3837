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
	createFn func(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error)
	listFn   func(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error)
	getFn    func(ctx context.Context, id uuid.UUID) (persistence.Workplace, error)
	updateFn func(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error)
	removeFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockRepository) Create(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error) {
	if m.createFn == nil {
		panic("createFn not configured")
	}
	return m.createFn(ctx, params)
}

func (m *mockRepository) List(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error) {
	if m.listFn == nil {
		panic("listFn not configured")
	}
	return m.listFn(ctx, params)
}

func (m *mockRepository) Get(ctx context.Context, id uuid.UUID) (persistence.Workplace, error) {
	if m.getFn == nil {
		panic("getFn not configured")
	}
	return m.getFn(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
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

func validCreateInput() CreateInput {
	return CreateInput{
		Name:     " Acme Plant ",
		Address1: "1 Main St",
		City:     "Springfield",
		State:    "IL",
		Zip:      "62701",
	}
}

func TestServiceCreateDefaultsToActive(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repository := &mockRepository{}
	repository.createFn = func(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error) {
		require.Equal(t, "Acme Plant", params.Name)
		require.Nil(t, params.Address2)
		require.True(t, params.IsActive)
		return persistence.Workplace{ID: uuid.New(), Name: params.Name, IsActive: params.IsActive, CreatedAt: now, UpdatedAt: now}, nil
	}

	input := validCreateInput()
	blank := "  "
	input.Address2 = &blank

	workplace, err := New(repository).Create(context.Background(), input)
	require.NoError(t, err)
	require.True(t, workplace.IsActive)
}

func TestServiceCreateHonoursInactiveFlag(t *testing.T) {
	t.Parallel()

	repository := &mockRepository{}
	repository.createFn = func(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error) {
		require.False(t, params.IsActive)
		return persistence.Workplace{ID: uuid.New(), IsActive: params.IsActive}, nil
	}

	input := validCreateInput()
	inactive := false
	input.IsActive = &inactive

	workplace, err := New(repository).Create(context.Background(), input)
	require.NoError(t, err)
	require.False(t, workplace.IsActive)
}

func TestServiceCreateValidation(t *testing.T) {
	t.Parallel()

	input := validCreateInput()
	input.Zip = "ABCDE"
	input.State = "A state name that is far too long"
	input.City = ""

	_, err := New(&mockRepository{}).Create(context.Background(), input)

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, "zip")
	require.Contains(t, validationErr.Fields, "state")
	require.Contains(t, validationErr.Fields, "city")
}

func TestServiceListBuildsCriteria(t *testing.T) {
	t.Parallel()

	city := "spring"
	active := true

	repository := &mockRepository{}
	repository.listFn = func(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error) {
		pred := persistence.WorkplaceFilters.Build(params.Criteria)
		require.Equal(t, "city ILIKE $1 AND is_active = $2", pred.SQL())
		require.Equal(t, []any{"%spring%", true}, pred.Args())

		return persistence.ListWorkplacesResult{
			Workplaces: []persistence.Workplace{{ID: uuid.New(), City: "Springfield"}},
			TotalItems: 1,
		}, nil
	}

	result, err := New(repository).List(context.Background(), ListOptions{
		Page:   query.ParsePage("", ""),
		Filter: Filter{City: &city, IsActive: &active},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Len(t, result.Workplaces, 1)
}

func TestServiceUpdateRequiresAField(t *testing.T) {
	t.Parallel()

	_, err := New(&mockRepository{}).Update(context.Background(), uuid.New(), UpdateInput{})

	var validationErr *validation.Error
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, validationErr.Fields, validation.PayloadField)
}

func TestServiceUpdateClearsBlankAddress2(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	blank := " "

	repository := &mockRepository{}
	repository.updateFn = func(ctx context.Context, got uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
		require.Equal(t, id, got)
		require.True(t, params.ClearAddress2)
		require.Nil(t, params.Address2)
		return persistence.Workplace{ID: id, IsActive: true}, nil
	}

	_, err := New(repository).Update(context.Background(), id, UpdateInput{Address2: &blank})
	require.NoError(t, err)
}

func TestServiceUpdateCanReactivate(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	active := true

	repository := &mockRepository{}
	repository.updateFn = func(ctx context.Context, got uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
		require.NotNil(t, params.IsActive)
		require.True(t, *params.IsActive)
		return persistence.Workplace{ID: id, IsActive: true}, nil
	}

	workplace, err := New(repository).Update(context.Background(), id, UpdateInput{IsActive: &active})
	require.NoError(t, err)
	require.True(t, workplace.IsActive)
}

func TestServiceUpdateNotFound(t *testing.T) {
	t.Parallel()

	name := "Renamed"
	repository := &mockRepository{
		updateFn: func(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
			return persistence.Workplace{}, persistence.ErrNotFound
		},
	}

	_, err := New(repository).Update(context.Background(), uuid.New(), UpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = New(repository).Update(context.Background(), uuid.Nil, UpdateInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceGetAndRemove(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repository := &mockRepository{
		getFn: func(ctx context.Context, got uuid.UUID) (persistence.Workplace, error) {
			return persistence.Workplace{ID: got, IsActive: false}, nil
		},
		removeFn: func(ctx context.Context, got uuid.UUID) error {
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

	workplace, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.False(t, workplace.IsActive)
}
