package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quickdesk-io/quickdesk/internal/interfaces/cli/migrate"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/cli/seed"
	"github.com/quickdesk-io/quickdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickdesk",
		Short: "QuickDesk - a lightweight help desk",
		Long:  `QuickDesk is a help desk ticketing service with role-based access, ticket workflows, voting, and notifications.`,
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
