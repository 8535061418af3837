package migrate

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/staffline/workforce/platform/go/persistence"
)

// Command applies the embedded DDL. Every statement is idempotent, so it can be re-run.
func Command() *cobra.Command {
	var (
		databaseURL string
		dryRun      bool
	)

	c := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the workers and workplaces tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				for _, stmt := range persistence.SchemaStatements() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s;\n\n", stmt)
				}
				return nil
			}

			if databaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL is required")
			}

			ctx := context.Background()

			pool, err := persistence.NewPool(ctx, persistence.PoolConfig{ConnString: databaseURL})
			if err != nil {
				return fmt.Errorf("init pool: %w", err)
			}
			defer persistence.ClosePool(pool)

			if err := persistence.BootstrapSchema(ctx, pool); err != nil {
				return fmt.Errorf("apply schema: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema applied (%d statements).\n", len(persistence.SchemaStatements()))
			return nil
		},
	}

	c.Flags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string (defaults to DATABASE_URL)")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the DDL instead of applying it")

	return c
}
