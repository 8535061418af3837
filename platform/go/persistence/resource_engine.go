package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffline/workforce/platform/go/query"
)

// Resource describes a table served by Engine: what to select, how to scan
// it, and which fields callers may filter and sort on.
type Resource[T any] struct {
	Table        string
	Columns      []string
	KeyColumn    string
	ActiveColumn string
	Filters      query.FilterSet
	Sorts        query.SortSet
	Scan         func(RowScanner) (T, error)
}

// ListResult is one page of rows plus the count of all rows matching the filter.
type ListResult[T any] struct {
	Rows  []T
	Total int
}

// Engine implements list/get/soft-remove for a single resource table.
// It holds no state besides its configuration.
type Engine[T any] struct {
	db        DBTX
	res       Resource[T]
	tableSQL  string
	selectSQL string
}

// NewEngine validates the resource description and returns an engine bound to db.
func NewEngine[T any](db DBTX, res Resource[T]) (*Engine[T], error) {
	if db == nil {
		return nil, errors.New("db is required")
	}
	if res.Scan == nil {
		return nil, errors.New("row scanner is required")
	}

	table, err := normalizeIdentifier("table", res.Table)
	if err != nil {
		return nil, err
	}

	columns, err := normalizeIdentifiers("column", res.Columns)
	if err != nil {
		return nil, err
	}

	referenced := []string{res.KeyColumn, res.ActiveColumn}
	for _, f := range res.Filters {
		referenced = append(referenced, f.Column)
	}
	for _, f := range res.Sorts.Fields {
		referenced = append(referenced, f.Column)
	}
	referenced = append(referenced, res.Sorts.Default...)
	if res.Sorts.TieBreak != "" {
		referenced = append(referenced, res.Sorts.TieBreak)
	}
	if _, err := normalizeIdentifiers("column", referenced); err != nil {
		return nil, err
	}

	res.Table = table
	res.Columns = columns

	return &Engine[T]{
		db:        db,
		res:       res,
		tableSQL:  pgx.Identifier{table}.Sanitize(),
		selectSQL: strings.Join(columns, ", "),
	}, nil
}

// Table returns the sanitized table identifier.
func (e *Engine[T]) Table() string {
	return e.tableSQL
}

// Returning renders a RETURNING clause with the resource columns.
func (e *Engine[T]) Returning() string {
	return "RETURNING " + e.selectSQL
}

// ScanOne scans a single row with the resource scanner.
func (e *Engine[T]) ScanOne(row RowScanner) (T, error) {
	return e.res.Scan(row)
}

// List returns the rows of the requested page together with the total number
// of rows matching criteria. Both statements share one predicate.
func (e *Engine[T]) List(ctx context.Context, page query.Page, criteria query.Criteria, sort query.Sort) (ListResult[T], error) {
	pred := e.res.Filters.Build(criteria)
	where := pred.SQL()

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", e.tableSQL, where)

	var total int
	if err := e.db.QueryRow(ctx, countQuery, pred.Args()...).Scan(&total); err != nil {
		return ListResult[T]{}, fmt.Errorf("count %s: %w", e.res.Table, err)
	}

	result := ListResult[T]{Rows: []T{}, Total: total}
	if total == 0 {
		return result, nil
	}

	window := page.Window()
	args := append(pred.Args(), window.Limit, window.Offset)

	listQuery := fmt.Sprintf(`
        SELECT %s
        FROM %s
        WHERE %s
        ORDER BY %s
        LIMIT $%d OFFSET $%d
    `, e.selectSQL, e.tableSQL, where, query.OrderBy(e.res.Sorts.Build(sort)), len(args)-1, len(args))

	rows, err := e.db.Query(ctx, listQuery, args...)
	if err != nil {
		return ListResult[T]{}, fmt.Errorf("list %s: %w", e.res.Table, err)
	}
	defer rows.Close()

	for rows.Next() {
		record, scanErr := e.res.Scan(rows)
		if scanErr != nil {
			return ListResult[T]{}, fmt.Errorf("scan %s: %w", e.res.Table, scanErr)
		}
		result.Rows = append(result.Rows, record)
	}

	if err := rows.Err(); err != nil {
		return ListResult[T]{}, fmt.Errorf("iterate %s: %w", e.res.Table, err)
	}

	return result, nil
}

// Get returns the row with the given identifier or ErrNotFound.
func (e *Engine[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	row := e.db.QueryRow(ctx, fmt.Sprintf(`
        SELECT %s
        FROM %s WHERE %s = $1
    `, e.selectSQL, e.tableSQL, e.res.KeyColumn), id)

	record, err := e.res.Scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return record, nil
}

// SoftRemove marks the row inactive. Postgres reports matched rows as
// affected even when the flag is already false, so repeated calls succeed;
// zero affected rows means the identifier does not exist.
func (e *Engine[T]) SoftRemove(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrNotFound
	}

	tag, err := e.db.Exec(ctx, fmt.Sprintf(`
        UPDATE %s
        SET %s = FALSE, updated_at = NOW()
        WHERE %s = $1
    `, e.tableSQL, e.res.ActiveColumn, e.res.KeyColumn), id)
	if err != nil {
		return fmt.Errorf("soft remove %s: %w", e.res.Table, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Assignment is one column = value pair of a partial update.
type Assignment struct {
	Column string
	Value  any
}

// Update applies the assignments to the identified row, bumps updated_at and
// returns the updated record. Zero assignments is an error.
func (e *Engine[T]) Update(ctx context.Context, id uuid.UUID, assignments []Assignment) (T, error) {
	var zero T

	if len(assignments) == 0 {
		return zero, errors.New("no fields to update")
	}

	setParts := make([]string, 0, len(assignments)+1)
	args := make([]any, 0, len(assignments)+1)
	for _, a := range assignments {
		column, err := normalizeIdentifier("column", a.Column)
		if err != nil {
			return zero, err
		}
		args = append(args, a.Value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	row := e.db.QueryRow(ctx, fmt.Sprintf(`
        UPDATE %s
        SET %s
        WHERE %s = $%d
        %s
    `, e.tableSQL, strings.Join(setParts, ", "), e.res.KeyColumn, len(args), e.Returning()), args...)

	record, err := e.res.Scan(row)
	if err != nil {
		return zero, mapWriteError(err)
	}

	return record, nil
}
