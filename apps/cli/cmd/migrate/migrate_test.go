package migrate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateDryRunPrintsDDL(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := Command()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "workers")
	require.Contains(t, out.String(), "workplaces")
}

func TestMigrateRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cmd := Command()
	cmd.SetArgs([]string{})

	require.ErrorContains(t, cmd.Execute(), "DATABASE_URL is required")
}
