package root

import (
	"github.com/spf13/cobra"
)

// rootCmd is the base command for the workforce admin CLI. Subcommands (migrate, seed) are attached here.
var rootCmd = &cobra.Command{
	Use:           "workforce",
	Short:         "Workforce admin CLI",
	Long:          "Administrative utilities for the workforce API (schema migration, demo data seeding and purging).",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the mutable root command for wiring from subpackages.
func Root() *cobra.Command {
	return rootCmd
}
