package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/store"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List tracked job applications",
	RunE:  runListCmd,
}

var (
	listAppliedOnly bool
	listLimit       int
	listDatabaseURL string
)

func init() {
	listCommand.Flags().BoolVar(&listAppliedOnly, "applied", false, "Show only applications you marked as applied")
	listCommand.Flags().IntVar(&listLimit, "limit", 0, "Maximum rows to show (default 50)")
	listCommand.Flags().StringVar(&listDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(listCommand)
}

func runListCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := listDatabaseURL
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

	apps, err := db.ListApplications(ctx, listAppliedOnly, listLimit)
	if err != nil {
		return fmt.Errorf("failed to list applications: %w", err)
	}
	if len(apps) == 0 {
		fmt.Fprintln(os.Stdout, "No applications recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCOMPANY\tTITLE\tATS\tOUTCOME")
	for _, app := range apps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.1f\t%s\n",
			app.ID,
			app.DateApplied.Format("2006-01-02"),
			orDash(app.Company),
			orDash(app.JobTitle),
			app.ATSScore,
			app.Outcome,
		)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
