package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/setterlab/cluewright/internal/auditor"
	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/config"
	"github.com/setterlab/cluewright/internal/lexicon"
	"github.com/setterlab/cluewright/internal/llm"
)

var auditCmd = &cobra.Command{
	Use:   "audit <clue-file>",
	Short: "Run the full Ximenean fairness audit over one clue",
	Long: `Audit a clue record (JSON or YAML) against the full fairness battery:
direction, double duty, indicator fairness and grammar, identity, fodder
presence, filler economy, narrative integrity, obscurity, and word validity.

The double-duty check is delegated to an LLM collaborator when an API key is
configured; without one the check passes with a warning and the result is
marked degraded. Exit code 1 means the clue failed the audit.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Bool("no-llm", false, "Skip the LLM collaborator (double duty degrades to a warning)")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	rec, err := clue.LoadRecord(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return NewExitError(ExitMissingDependency)
	}

	words := lexicon.Open(cfg.DictPaths...)

	noLLM, _ := cmd.Flags().GetBool("no-llm")
	var collab auditor.Collaborator
	if !noLLM && cfg.APIKey != "" {
		collab = llm.New(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Temperature,
			time.Duration(cfg.LLMTimeout)*time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.LLMTimeout+5)*time.Second)
	defer cancel()

	result := auditor.New(words, collab).AuditClue(ctx, rec)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printAuditReport(os.Stdout, rec, result)
	}

	if !result.Passed {
		return NewExitError(ExitAuditFailed)
	}
	return nil
}
