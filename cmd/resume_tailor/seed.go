package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/store"
	"github.com/gopinath/resume-tailor/internal/types"
)

var seedCommand = &cobra.Command{
	Use:   "seed <profile.json>",
	Short: "Load a candidate profile into the database",
	Long: `Reads a JSON profile file (personal info, work experience with bullets,
projects, skills, education, certifications) and replaces the stored profile
with it. History tables (keyword frequencies, applications, bullet
performance) are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeedCmd,
}

var seedDatabaseURL string

func init() {
	seedCommand.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(seedCommand)
}

func runSeedCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	databaseURL := seedDatabaseURL
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
	if err := db.ReplaceProfile(ctx, &profile); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Profile stored: %d experiences, %d projects, %d skills.\n",
		len(profile.Experience), len(profile.Projects), len(profile.Skills))
	return nil
}
