package main

import (
	"fmt"

	"github.com/sm8ta/webike_theft_registry/internal/adapter/redis"
	"github.com/sm8ta/webike_theft_registry/internal/app"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert reference data",
}

var seedBadgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Insert the default badge catalog into an empty badges table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := app.NewLogger(cfg)
		defer log.Sync()

		db, err := app.OpenDB(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		conn, err := app.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer conn.Close()

		inserted, err := app.NewAchievementService(db, redis.NewRedisAdapter(conn), log, cfg).SeedBadges(ctx)
		if err != nil {
			return fmt.Errorf("seed badges: %w", err)
		}
		fmt.Printf("inserted %d badges\n", inserted)
		return nil
	},
}

func init() {
	seedCmd.AddCommand(seedBadgesCmd)
}
