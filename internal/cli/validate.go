package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/config"
	"github.com/setterlab/cluewright/internal/lexicon"
	"github.com/setterlab/cluewright/internal/mechanic"
)

var validateCmd = &cobra.Command{
	Use:   "validate <clue-file>",
	Short: "Mechanically validate a clue's wordplay and enumeration",
	Long: `Validate the letter mechanics of a clue record (JSON or YAML): does the
fodder rearrange, hide, concatenate, contain, or reverse into the answer, and
does the answer length match the enumeration.

The enumeration is taken from the --enumeration flag, the record's
enumeration field, or the trailing "(6)" in the clue text, in that order.
Exit code 1 means the clue is mechanically invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringP("enumeration", "e", "", `Expected enumeration, e.g. "6" or "3,4"`)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rec, err := clue.LoadRecord(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	enumeration, _ := cmd.Flags().GetString("enumeration")
	if enumeration == "" {
		enumeration = rec.Enumeration
	}
	if enumeration == "" {
		enumeration = clue.ExtractEnumeration(rec.Clue)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return NewExitError(ExitMissingDependency)
	}
	words := lexicon.Open(cfg.DictPaths...)

	valid, results := mechanic.ValidateClueComplete(rec, enumeration, words)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(map[string]any{
			"valid":   valid,
			"results": results,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printValidationReport(os.Stdout, rec, valid, results)
	}

	if !valid {
		return NewExitError(ExitAuditFailed)
	}
	return nil
}
