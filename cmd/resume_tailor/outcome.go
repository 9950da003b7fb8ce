package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/store"
	"github.com/gopinath/resume-tailor/internal/types"
)

var outcomeCommand = &cobra.Command{
	Use:   "outcome <application-id> <outcome>",
	Short: "Record the outcome of a tracked application",
	Long: `Updates a tracked application's outcome and feeds it back into bullet
performance: bullets used in applications that reached Interview or Offer are
boosted in future selections.

Valid outcomes: Generated, Applied, Interview, Offer, Rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runOutcomeCmd,
}

var outcomeDatabaseURL string

func init() {
	outcomeCommand.Flags().StringVar(&outcomeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(outcomeCommand)
}

func runOutcomeCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	appID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid application id %q: %w", args[0], err)
	}
	outcome, err := canonicalOutcome(args[1])
	if err != nil {
		return err
	}

	databaseURL := outcomeDatabaseURL
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

	if err := db.UpdateOutcome(ctx, appID, outcome); err != nil {
		return fmt.Errorf("failed to update outcome: %w", err)
	}
	if err := db.BoostForOutcome(ctx, appID, outcome); err != nil {
		return fmt.Errorf("failed to update bullet performance: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Application %d marked as %s.\n", appID, outcome)
	return nil
}

func canonicalOutcome(raw string) (string, error) {
	valid := []string{
		types.OutcomeGenerated,
		types.OutcomeApplied,
		types.OutcomeInterview,
		types.OutcomeOffer,
		types.OutcomeRejected,
	}
	for _, v := range valid {
		if strings.EqualFold(raw, v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid outcome %q; valid outcomes: %s", raw, strings.Join(valid, ", "))
}
