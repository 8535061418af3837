package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	workersservice "github.com/staffline/workforce/domains/workers/be/service"
	workplacesservice "github.com/staffline/workforce/domains/workplaces/be/service"
	"github.com/staffline/workforce/platform/go/persistence"
)

// workerRepo records creates; the other methods are never reached by the seeder.
type workerRepo struct {
	created []persistence.CreateWorkerParams
	failOn  int
}

func (r *workerRepo) Create(ctx context.Context, params persistence.CreateWorkerParams) (persistence.Worker, error) {
	r.created = append(r.created, params)
	if r.failOn > 0 && len(r.created) == r.failOn {
		return persistence.Worker{}, persistence.ErrConflict
	}
	return persistence.Worker{ID: uuid.New(), FirstName: params.FirstName, LastName: params.LastName, Email: params.Email, IsActive: true}, nil
}

func (r *workerRepo) List(ctx context.Context, params persistence.ListWorkersParams) (persistence.ListWorkersResult, error) {
	panic("not used")
}

func (r *workerRepo) Get(ctx context.Context, id uuid.UUID) (persistence.Worker, error) {
	panic("not used")
}

func (r *workerRepo) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkerParams) (persistence.Worker, error) {
	panic("not used")
}

func (r *workerRepo) Remove(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}

type workplaceRepo struct {
	created []persistence.CreateWorkplaceParams
}

func (r *workplaceRepo) Create(ctx context.Context, params persistence.CreateWorkplaceParams) (persistence.Workplace, error) {
	r.created = append(r.created, params)
	return persistence.Workplace{ID: uuid.New(), Name: params.Name, IsActive: params.IsActive}, nil
}

func (r *workplaceRepo) List(ctx context.Context, params persistence.ListWorkplacesParams) (persistence.ListWorkplacesResult, error) {
	panic("not used")
}

func (r *workplaceRepo) Get(ctx context.Context, id uuid.UUID) (persistence.Workplace, error) {
	panic("not used")
}

func (r *workplaceRepo) Update(ctx context.Context, id uuid.UUID, params persistence.UpdateWorkplaceParams) (persistence.Workplace, error) {
	panic("not used")
}

func (r *workplaceRepo) Remove(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}

func TestSeederCreatesValidRecords(t *testing.T) {
	t.Parallel()

	workers := &workerRepo{}
	workplaces := &workplaceRepo{}

	s := newSeeder(gofakeit.New(7), workersservice.New(workers), workplacesservice.New(workplaces))

	result, err := s.run(context.Background(), 40, 15)
	require.NoError(t, err)
	require.Equal(t, seedResult{workers: 40, workplaces: 15}, result)
	require.Len(t, workers.created, 40)
	require.Len(t, workplaces.created, 15)

	emails := make(map[string]struct{}, len(workers.created))
	for _, w := range workers.created {
		require.Equal(t, strings.ToLower(w.Email), w.Email)
		emails[w.Email] = struct{}{}
	}
	require.Len(t, emails, 40)

	for _, wp := range workplaces.created {
		require.Len(t, wp.Zip, 5)
		require.LessOrEqual(t, len(wp.State), 13)
		require.True(t, wp.IsActive)
	}
}

func TestSeederIsReproducibleForAFixedSeed(t *testing.T) {
	t.Parallel()

	first := newSeeder(gofakeit.New(42), nil, nil)
	second := newSeeder(gofakeit.New(42), nil, nil)

	for i := 0; i < 5; i++ {
		require.Equal(t, first.workerInput(i), second.workerInput(i))
		require.Equal(t, first.workplaceInput(), second.workplaceInput())
	}
}

func TestSeederSkipsDuplicateEmails(t *testing.T) {
	t.Parallel()

	workers := &workerRepo{failOn: 2}
	s := newSeeder(gofakeit.New(1), workersservice.New(workers), workplacesservice.New(&workplaceRepo{}))

	result, err := s.run(context.Background(), 3, 0)
	require.NoError(t, err)
	require.Equal(t, 2, result.workers)
	require.Equal(t, 1, result.skippedWorkers)
}

func TestEmailPart(t *testing.T) {
	t.Parallel()

	require.Equal(t, "oconnor", emailPart("O'Connor"))
	require.Equal(t, "annmarie", emailPart("Ann Marie"))
	require.Equal(t, "user", emailPart("’"))
}

type fakePurger struct {
	workers    int64
	workplaces int64
	err        error
}

func (f fakePurger) PurgeWorkers(ctx context.Context) (int64, error) {
	return f.workers, f.err
}

func (f fakePurger) PurgeWorkplaces(ctx context.Context) (int64, error) {
	return f.workplaces, nil
}

func TestPurge(t *testing.T) {
	t.Parallel()

	workers, workplaces, err := purge(context.Background(), fakePurger{workers: 3}, fakePurger{workplaces: 2})
	require.NoError(t, err)
	require.Equal(t, int64(3), workers)
	require.Equal(t, int64(2), workplaces)

	_, _, err = purge(context.Background(), fakePurger{err: errors.New("boom")}, fakePurger{})
	require.ErrorContains(t, err, "purge workers")
}
