package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vangoframework/wayfarer/internal/database"
	"github.com/vangoframework/wayfarer/internal/store"
)

func newMigrateCommand() *cobra.Command {
	var (
		databaseURL string
		seed        bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		Long:  "Apply the embedded schema migrations. With --seed, also insert the demo traveler and trips.",
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return errors.New("no database: pass --database-url or set DATABASE_URL")
			}
			return runMigrate(cmd.Context(), databaseURL, seed)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection string (defaults to $DATABASE_URL)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Insert the demo traveler and trips")
	return cmd
}

func runMigrate(ctx context.Context, databaseURL string, seed bool) error {
	logger := newLogger()

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := store.Migrate(ctx, db.Pool); err != nil {
		return err
	}
	logger.Info("migrations applied")

	if seed {
		traveler, trips := store.DemoData(time.Now())
		if err := store.Seed(ctx, db.Pool, traveler, trips); err != nil {
			return err
		}
		logger.Info("demo data seeded", "email", traveler.Email, "trips", len(trips))
	}
	return nil
}
