package main

import (
	"github.com/deppfellow/geology-api/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return database.Migrate(cmd.Context(), &current.log, current.cfg)
	},
}
