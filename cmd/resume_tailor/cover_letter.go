package main

import (
	"github.com/spf13/cobra"
)

var coverLetterCommand = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a tailored resume with a matching cover letter",
	Long: `Runs the full generation pipeline and additionally composes a cover letter that
quotes your highest-scoring bullets and names the skills matched against the
job description. Use --hiring-manager to personalize the salutation.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenerate(cmd, coverLetterFlagValues, false, true)
	},
}

var coverLetterFlagValues = &generateFlags{}

func init() {
	addGenerateFlags(coverLetterCommand, coverLetterFlagValues)
	rootCmd.AddCommand(coverLetterCommand)
}
