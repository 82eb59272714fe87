package main

import (
	"os"

	"github.com/spf13/cobra"

	"replydesk/internal/interfaces/cli/admin"
	"replydesk/internal/interfaces/cli/migrate"
	"replydesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "replydesk",
		Short: "ReplyDesk - auto-responder administration backend",
		Long:  `ReplyDesk is the administration backend for a multi-tenant auto-responder service: admins manage clients, plans and the feature catalog, clients manage their reply rules and feature settings.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
