package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	sqlassets "github.com/staffline/workforce/database"
)

// SchemaStatements returns the embedded DDL in application order:
//  1. workers.sql
//  2. workplaces.sql
func SchemaStatements() []string {
	var statements []string
	statements = append(statements, splitStatements(sqlassets.WorkersSQL)...)
	statements = append(statements, splitStatements(sqlassets.WorkplacesSQL)...)
	return statements
}

// BootstrapSchema applies the embedded DDL in a single transaction. Every
// statement is idempotent, so the helper is safe to run on each start-up
// (AUTO_MIGRATE), from the CLI and from tests.
func BootstrapSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return fmt.Errorf("bootstrap schema: pool is required")
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	for _, stmt := range SchemaStatements() {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply ddl: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func splitStatements(script string) []string {
	raw := strings.Split(script, ";")
	statements := make([]string, 0, len(raw))
	for _, part := range raw {
		stmt := strings.TrimSpace(part)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}
