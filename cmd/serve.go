package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sm8ta/webike_theft_registry/internal/app"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
		defer stop()

		application, err := app.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create app: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- application.Run()
		}()

		// Graceful shutdown
		select {
		case err := <-errCh:
			if err != nil {
				_ = application.Stop(context.Background())
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return application.Stop(shutdownCtx)
	},
}
