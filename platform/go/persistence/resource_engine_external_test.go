package persistence_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/staffline/workforce/platform/go/persistence"
	"github.com/staffline/workforce/platform/go/query"
)

type badge struct {
	ID    uuid.UUID
	Label string
}

type noopDB struct{}

func (noopDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (noopDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (noopDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type badgeRow struct {
	id    uuid.UUID
	label string
}

func (r badgeRow) Scan(dest ...any) error {
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = r.label
	return nil
}

func scanBadge(row persistence.RowScanner) (badge, error) {
	var b badge
	err := row.Scan(&b.ID, &b.Label)
	return b, err
}

func TestEngineServesResourcesDeclaredOutsideThePackage(t *testing.T) {
	t.Parallel()

	engine, err := persistence.NewEngine(noopDB{}, persistence.Resource[badge]{
		Table:        "badges",
		Columns:      []string{"id", "label"},
		KeyColumn:    "id",
		ActiveColumn: "is_active",
		Filters:      query.FilterSet{{Key: "label", Column: "label", Match: query.MatchContains}},
		Sorts:        query.SortSet{Fields: []query.SortField{{Key: "label", Column: "label"}}, TieBreak: "id"},
		Scan:         scanBadge,
	})
	require.NoError(t, err)
	require.Equal(t, `"badges"`, engine.Table())
	require.Equal(t, "RETURNING id, label", engine.Returning())

	id := uuid.New()
	got, err := engine.ScanOne(badgeRow{id: id, label: "forklift"})
	require.NoError(t, err)
	require.Equal(t, badge{ID: id, Label: "forklift"}, got)
}
