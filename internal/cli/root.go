// Package cli provides the Cobra-based commands for the cluewright tool:
// mechanical validation (validate), the full fairness audit (audit), and
// batch dataset auditing (batch).
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cluewright",
	Short: "cryptic crossword clue validation and auditing",
	Long: `cluewright validates and audits cryptic crossword clues.

The validate command checks the mechanics of a clue (do the letters work?).
The audit command additionally runs the Ximenean fairness battery over the
clue and scores it. The batch command audits a whole CSV or JSON dataset.`,
	Example: `  # Mechanical validation only
  cluewright validate clue.json

  # Full fairness audit
  cluewright audit clue.json

  # Audit without the LLM collaborator
  cluewright audit --no-llm clue.json

  # Audit a dataset
  cluewright batch clues.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", ".cluewright/config.json", "Path to config file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit machine-readable JSON instead of the text report")
}
