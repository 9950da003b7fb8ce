package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/store"
)

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Show keyword demand across the job descriptions you have processed",
	Long: `Prints the most frequently seen keywords across all processed job descriptions,
plus keywords that first appeared recently. Useful for spotting skills worth
adding to your profile.`,
	RunE: runStatsCmd,
}

var (
	statsLimit       int
	statsRecentDays  int
	statsDatabaseURL string
)

func init() {
	statsCommand.Flags().IntVar(&statsLimit, "limit", 0, "Number of top keywords to show (default 20)")
	statsCommand.Flags().IntVar(&statsRecentDays, "days", 0, "Window in days for emerging keywords (default 7)")
	statsCommand.Flags().StringVar(&statsDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(statsCommand)
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := statsDatabaseURL
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

	total, err := db.TotalJDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to count job descriptions: %w", err)
	}
	top, err := db.TopKeywords(ctx, statsLimit)
	if err != nil {
		return fmt.Errorf("failed to load top keywords: %w", err)
	}
	emerging, err := db.EmergingKeywords(ctx, statsRecentDays)
	if err != nil {
		return fmt.Errorf("failed to load emerging keywords: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Job descriptions processed: %d\n\n", total)

	if len(top) == 0 {
		fmt.Fprintln(os.Stdout, "No keyword history yet. Run generate against a job description first.")
		return nil
	}

	fmt.Fprintln(os.Stdout, "Top keywords:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEYWORD\tSEEN IN\tLAST SEEN")
	for _, kw := range top {
		fmt.Fprintf(w, "%s\t%d JDs\t%s\n", kw.Keyword, kw.JDCount, kw.LastSeen.Format("2006-01-02"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(emerging) > 0 {
		fmt.Fprintln(os.Stdout, "\nEmerging keywords:")
		for _, kw := range emerging {
			fmt.Fprintf(os.Stdout, "  %s (first seen %s)\n", kw.Keyword, kw.FirstSeen.Format("2006-01-02"))
		}
	}
	return nil
}
