package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffline/workforce/platform/go/query"
)

const WorkersTable = "workers"

// Worker represents a row in the workers table.
type Worker struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"firstName"`
	LastName  string    `db:"last_name" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// WorkerFilters is the filter allow-list of the workers collection.
var WorkerFilters = query.FilterSet{
	{Key: "firstName", Column: "first_name", Match: query.MatchContains},
	{Key: "lastName", Column: "last_name", Match: query.MatchContains},
	{Key: "email", Column: "email", Match: query.MatchContains},
	{Key: "isActive", Column: "is_active", Match: query.MatchEquals},
}

// WorkerSorts is the sort allow-list of the workers collection. Without a
// usable sort key workers are ordered by first name, then last name.
var WorkerSorts = query.SortSet{
	Fields: []query.SortField{
		{Key: "first", Column: "first_name"},
		{Key: "last", Column: "last_name"},
		{Key: "email", Column: "email"},
	},
	Default:  []string{"first_name", "last_name"},
	TieBreak: "id",
}

var workerColumns = []string{"id", "first_name", "last_name", "email", "is_active", "created_at", "updated_at"}

// WorkerStore exposes persistence helpers for the workers table.
type WorkerStore struct {
	db     DBTX
	engine *Engine[Worker]
}

// NewWorkerStore returns a store bound to db.
func NewWorkerStore(db DBTX) (*WorkerStore, error) {
	if db == nil {
		return nil, errors.New("pool is required")
	}

	engine, err := NewEngine(db, Resource[Worker]{
		Table:        WorkersTable,
		Columns:      workerColumns,
		KeyColumn:    "id",
		ActiveColumn: "is_active",
		Filters:      WorkerFilters,
		Sorts:        WorkerSorts,
		Scan:         scanWorker,
	})
	if err != nil {
		return nil, fmt.Errorf("init worker engine: %w", err)
	}

	return &WorkerStore{db: db, engine: engine}, nil
}

// CreateWorkerParams captures the fields required to insert a worker.
type CreateWorkerParams struct {
	FirstName string
	LastName  string
	Email     string
}

// CreateWorker inserts a worker; the identifier and timestamps come from the database.
func (s *WorkerStore) CreateWorker(ctx context.Context, params CreateWorkerParams) (Worker, error) {
	row := s.db.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s (first_name, last_name, email)
        VALUES ($1, $2, $3)
        %s
    `, s.engine.Table(), s.engine.Returning()),
		strings.TrimSpace(params.FirstName),
		strings.TrimSpace(params.LastName),
		strings.TrimSpace(params.Email),
	)

	worker, err := s.engine.ScanOne(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Worker{}, ErrConflict
		}
		return Worker{}, fmt.Errorf("insert worker: %w", err)
	}

	return worker, nil
}

// ListWorkersParams captures filters, sorting and pagination for ListWorkers.
type ListWorkersParams struct {
	Page     query.Page
	Criteria query.Criteria
	Sort     query.Sort
}

// ListWorkersResult includes the rows and the total count for pagination metadata.
type ListWorkersResult struct {
	Workers    []Worker
	TotalItems int
}

// ListWorkers returns a page of workers matching the criteria.
func (s *WorkerStore) ListWorkers(ctx context.Context, params ListWorkersParams) (ListWorkersResult, error) {
	result, err := s.engine.List(ctx, params.Page, params.Criteria, params.Sort)
	if err != nil {
		return ListWorkersResult{}, err
	}
	return ListWorkersResult{Workers: result.Rows, TotalItems: result.Total}, nil
}

// GetWorker returns a single worker by identifier, active or not.
func (s *WorkerStore) GetWorker(ctx context.Context, id uuid.UUID) (Worker, error) {
	return s.engine.Get(ctx, id)
}

// UpdateWorkerParams lists the mutable worker fields; nil leaves a field untouched.
type UpdateWorkerParams struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UpdateWorker applies the provided fields and returns the updated record.
func (s *WorkerStore) UpdateWorker(ctx context.Context, id uuid.UUID, params UpdateWorkerParams) (Worker, error) {
	var assignments []Assignment

	if params.FirstName != nil {
		assignments = append(assignments, Assignment{Column: "first_name", Value: strings.TrimSpace(*params.FirstName)})
	}
	if params.LastName != nil {
		assignments = append(assignments, Assignment{Column: "last_name", Value: strings.TrimSpace(*params.LastName)})
	}
	if params.Email != nil {
		assignments = append(assignments, Assignment{Column: "email", Value: strings.TrimSpace(*params.Email)})
	}

	return s.engine.Update(ctx, id, assignments)
}

// RemoveWorker soft-deletes a worker by clearing is_active.
func (s *WorkerStore) RemoveWorker(ctx context.Context, id uuid.UUID) error {
	return s.engine.SoftRemove(ctx, id)
}

// PurgeWorkers physically deletes every worker row. Only the seed tooling uses it.
func (s *WorkerStore) PurgeWorkers(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, s.engine.Table()))
	if err != nil {
		return 0, fmt.Errorf("purge workers: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanWorker(row RowScanner) (Worker, error) {
	var worker Worker

	if err := row.Scan(
		&worker.ID,
		&worker.FirstName,
		&worker.LastName,
		&worker.Email,
		&worker.IsActive,
		&worker.CreatedAt,
		&worker.UpdatedAt,
	); err != nil {
		return Worker{}, err
	}

	return worker, nil
}
