package main

import (
	"github.com/sm8ta/webike_theft_registry/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

func init() {
	for _, command := range []struct{ name, short string }{
		{"up", "Apply all pending migrations"},
		{"down", "Roll back the latest migration"},
		{"status", "Print the status of every migration"},
	} {
		migrateCmd.AddCommand(&cobra.Command{
			Use:   command.name,
			Short: command.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := app.OpenDB(cmd.Context(), cfg.DB)
				if err != nil {
					return err
				}
				defer db.Close()
				return app.Migrate(db, cfg.DB.MigrationsDir, command.name)
			},
		})
	}
}
