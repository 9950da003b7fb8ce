package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopinath/resume-tailor/internal/schemas"
)

var schemaCommand = &cobra.Command{
	Use:   "schema",
	Short: "Print the render payload JSON Schema",
	Long: `Prints the JSON Schema the payload file written next to each rendered document
conforms to. Useful when writing an external renderer consumed via
--renderer-cmd.

The external renderer is invoked as:

  <command> --type resume|cover-letter|cv --payload <payload.json> --output <file>

Resume and cv payloads follow this schema; cover-letter payloads carry
personal, date, salutation, and paragraphs fields.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Fprintln(os.Stdout, schemas.RenderPayloadSchema())
	},
}

func init() {
	rootCmd.AddCommand(schemaCommand)
}
