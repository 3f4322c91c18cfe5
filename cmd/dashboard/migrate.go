package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewMigrateCmd manages the postgres schema with the SQL files under
// db/migrations. The sqlite and memory stores need no migrations.
func NewMigrateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "migrations directory (default MIGRATIONS_PATH or db/migrations)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, path, func(runner *database.MigrationRunner) error {
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				return printStatus(runner)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("steps must be a positive number, got %q", args[0])
				}
				steps = n
			}
			return withRunner(cmd, path, func(runner *database.MigrationRunner) error {
				if err := runner.Rollback(steps); err != nil {
					return err
				}
				return printStatus(runner)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd, path, printStatus)
		},
	})

	return cmd
}

func withRunner(cmd *cobra.Command, path string, fn func(*database.MigrationRunner) error) error {
	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations apply to the postgres store only, STORE_DRIVER is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, path)
	spinner, _ := pterm.DefaultSpinner.Start("Waiting for database")
	if err := runner.WaitForDatabase(cmd.Context()); err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success("Database reachable")

	return fn(runner)
}

func printStatus(runner *database.MigrationRunner) error {
	version, dirty, err := runner.GetMigrationStatus()
	if errors.Is(err, migrate.ErrNilVersion) {
		pterm.Info.Println("No migrations applied")
		return nil
	}
	if err != nil {
		return err
	}
	if dirty {
		pterm.Warning.Printf("Schema version %d is dirty; fix it before migrating again\n", version)
		return nil
	}
	pterm.Success.Printf("Schema at version %d\n", version)
	return nil
}
