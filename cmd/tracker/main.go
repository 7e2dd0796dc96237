package main

import (
	"os"

	"github.com/spf13/cobra"

	"tracker/internal/interfaces/cli/migrate"
	"tracker/internal/interfaces/cli/seed"
	"tracker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Tracker - an issue tracking service",
		Long:  `Tracker is an issue tracking service with optimistic concurrency control, CSV import, and reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
