// Package main provides the resume-tailor command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-tailor",
	Short: "Generate tailored resumes, CVs, and cover letters",
	Long:  "resume-tailor reads a job description, scores your experience bank against its keywords, and renders a tailored resume or CV with an ATS match estimate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
