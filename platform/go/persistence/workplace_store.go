package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/staffline/workforce/platform/go/query"
)

// WorkplacesTable is the name of the workplaces table.
const WorkplacesTable = "workplaces"

// Workplace represents a row in the workplaces table.
type Workplace struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address1  string    `db:"address1" json:"address1"`
	Address2  *string   `db:"address2" json:"address2,omitempty"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Zip       string    `db:"zip" json:"zip"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// WorkplaceFilters is the filter allow-list of the workplaces collection.
var WorkplaceFilters = query.FilterSet{
	{Key: "name", Column: "name", Match: query.MatchContains},
	{Key: "city", Column: "city", Match: query.MatchContains},
	{Key: "state", Column: "state", Match: query.MatchContains},
	{Key: "isActive", Column: "is_active", Match: query.MatchEquals},
}

// WorkplaceSorts is the sort allow-list of the workplaces collection; the default order is by name.
var WorkplaceSorts = query.SortSet{
	Fields: []query.SortField{
		{Key: "name", Column: "name"},
		{Key: "city", Column: "city"},
		{Key: "state", Column: "state"},
	},
	Default:  []string{"name"},
	TieBreak: "id",
}

var workplaceColumns = []string{"id", "name", "address1", "address2", "city", "state", "zip", "is_active", "created_at", "updated_at"}

// WorkplaceStore exposes persistence helpers for the workplaces table.
type WorkplaceStore struct {
	db     DBTX
	engine *Engine[Workplace]
}

// NewWorkplaceStore returns a store bound to db.
func NewWorkplaceStore(db DBTX) (*WorkplaceStore, error) {
	if db == nil {
		return nil, errors.New("pool is required")
	}

	engine, err := NewEngine(db, Resource[Workplace]{
		Table:        WorkplacesTable,
		Columns:      workplaceColumns,
		KeyColumn:    "id",
		ActiveColumn: "is_active",
		Filters:      WorkplaceFilters,
		Sorts:        WorkplaceSorts,
		Scan:         scanWorkplace,
	})
	if err != nil {
		return nil, fmt.Errorf("init workplace engine: %w", err)
	}

	return &WorkplaceStore{db: db, engine: engine}, nil
}

// CreateWorkplaceParams captures the fields required to insert a workplace.
type CreateWorkplaceParams struct {
	Name     string
	Address1 string
	Address2 *string
	City     string
	State    string
	Zip      string
	IsActive bool
}

// CreateWorkplace inserts a workplace; the identifier and timestamps come from the database.
func (s *WorkplaceStore) CreateWorkplace(ctx context.Context, params CreateWorkplaceParams) (Workplace, error) {
	row := s.db.QueryRow(ctx, fmt.Sprintf(`
        INSERT INTO %s (name, address1, address2, city, state, zip, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        %s
    `, s.engine.Table(), s.engine.Returning()),
		strings.TrimSpace(params.Name),
		strings.TrimSpace(params.Address1),
		trimOptional(params.Address2),
		strings.TrimSpace(params.City),
		strings.TrimSpace(params.State),
		strings.TrimSpace(params.Zip),
		params.IsActive,
	)

	workplace, err := s.engine.ScanOne(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Workplace{}, ErrConflict
		}
		return Workplace{}, fmt.Errorf("insert workplace: %w", err)
	}

	return workplace, nil
}

// ListWorkplacesParams captures filters, sorting and pagination for ListWorkplaces.
type ListWorkplacesParams struct {
	Page     query.Page
	Criteria query.Criteria
	Sort     query.Sort
}

// ListWorkplacesResult includes the rows and the total count for pagination metadata.
type ListWorkplacesResult struct {
	Workplaces []Workplace
	TotalItems int
}

// ListWorkplaces returns a page of workplaces matching the criteria.
func (s *WorkplaceStore) ListWorkplaces(ctx context.Context, params ListWorkplacesParams) (ListWorkplacesResult, error) {
	result, err := s.engine.List(ctx, params.Page, params.Criteria, params.Sort)
	if err != nil {
		return ListWorkplacesResult{}, err
	}
	return ListWorkplacesResult{Workplaces: result.Rows, TotalItems: result.Total}, nil
}

// GetWorkplace returns a single workplace by identifier, active or not.
func (s *WorkplaceStore) GetWorkplace(ctx context.Context, id uuid.UUID) (Workplace, error) {
	return s.engine.Get(ctx, id)
}

// UpdateWorkplaceParams lists the mutable workplace fields; nil leaves a field
// untouched. ClearAddress2 sets address2 to NULL and wins over Address2.
type UpdateWorkplaceParams struct {
	Name          *string
	Address1      *string
	Address2      *string
	ClearAddress2 bool
	City          *string
	State         *string
	Zip           *string
	IsActive      *bool
}

// UpdateWorkplace applies the provided fields and returns the updated record.
func (s *WorkplaceStore) UpdateWorkplace(ctx context.Context, id uuid.UUID, params UpdateWorkplaceParams) (Workplace, error) {
	var assignments []Assignment

	text := func(column string, value *string) {
		if value != nil {
			assignments = append(assignments, Assignment{Column: column, Value: strings.TrimSpace(*value)})
		}
	}

	text("name", params.Name)
	text("address1", params.Address1)
	switch {
	case params.ClearAddress2:
		assignments = append(assignments, Assignment{Column: "address2", Value: nil})
	case params.Address2 != nil:
		text("address2", params.Address2)
	}
	text("city", params.City)
	text("state", params.State)
	text("zip", params.Zip)
	if params.IsActive != nil {
		assignments = append(assignments, Assignment{Column: "is_active", Value: *params.IsActive})
	}

	return s.engine.Update(ctx, id, assignments)
}

// RemoveWorkplace soft-deletes a workplace by clearing is_active.
func (s *WorkplaceStore) RemoveWorkplace(ctx context.Context, id uuid.UUID) error {
	return s.engine.SoftRemove(ctx, id)
}

// PurgeWorkplaces physically deletes every workplace row. Only the seed tooling uses it.
func (s *WorkplaceStore) PurgeWorkplaces(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, s.engine.Table()))
	if err != nil {
		return 0, fmt.Errorf("purge workplaces: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanWorkplace(row RowScanner) (Workplace, error) {
	var (
		workplace Workplace
		address2  pgtype.Text
	)

	if err := row.Scan(
		&workplace.ID,
		&workplace.Name,
		&workplace.Address1,
		&address2,
		&workplace.City,
		&workplace.State,
		&workplace.Zip,
		&workplace.IsActive,
		&workplace.CreatedAt,
		&workplace.UpdatedAt,
	); err != nil {
		return Workplace{}, err
	}

	if address2.Valid {
		value := address2.String
		workplace.Address2 = &value
	}

	return workplace, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
