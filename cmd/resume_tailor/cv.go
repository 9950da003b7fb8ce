package main

import (
	"github.com/spf13/cobra"
)

var cvCommand = &cobra.Command{
	Use:   "cv",
	Short: "Generate a comprehensive CV for a job description",
	Long: `Like generate, but renders a comprehensive CV: every work experience bullet and
project is kept, a profile summary paragraph is composed, and the document is
ordered by relevance to the job description rather than trimmed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, cvFlagValues, true, false)
	},
}

var cvFlagValues = &generateFlags{}

func init() {
	addGenerateFlags(cvCommand, cvFlagValues)
	rootCmd.AddCommand(cvCommand)
}
