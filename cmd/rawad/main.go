package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rawad-inc/rawad/internal/interfaces/cli/migrate"
	"github.com/rawad-inc/rawad/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rawad",
		Short: "Rawad - job marketplace and donation platform",
		Long:  `Rawad is the backend for the job marketplace and donation platform, bundling the HTTP server, background jobs and schema migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
