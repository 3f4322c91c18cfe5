package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/server"

	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		Long: `Serve the dashboard HTTP API.

The record store is chosen with STORE_DRIVER (memory, sqlite or postgres) and
is seeded from DATASET_PATH, or from the bundled dataset when unset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Server.Port = port
			}
			setupLogger(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := server.NewApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					slog.Error("Failed to close record store", "error", err)
				}
			}()

			if err := app.Run(ctx); err != nil {
				return err
			}
			slog.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides SERVER_PORT)")

	return cmd
}
