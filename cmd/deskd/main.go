package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskd/internal/interfaces/cli/migrate"
	"deskd/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskd",
		Short: "deskd - a helpdesk ticket tracker",
		Long:  `deskd is a helpdesk ticket tracker with a JSON API and server-rendered pages.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
