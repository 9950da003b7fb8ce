package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/store"
)

var initCommand = &cobra.Command{
	Use:   "init",
	Short: "Create the database schema",
	Long:  "Creates all tables the tool needs. Safe to run repeatedly; existing tables and data are left untouched.",
	RunE:  runInitCmd,
}

var initDatabaseURL string

func init() {
	initCommand.Flags().StringVar(&initDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(initCommand)
}

func runInitCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := initDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Bootstrap(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Fprintln(os.Stdout, "Database schema is ready.")
	return nil
}
