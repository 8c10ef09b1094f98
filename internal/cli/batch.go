package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/setterlab/cluewright/internal/auditor"
	"github.com/setterlab/cluewright/internal/config"
	"github.com/setterlab/cluewright/internal/lexicon"
	"github.com/setterlab/cluewright/internal/llm"
	"github.com/setterlab/cluewright/internal/wordpool"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dataset>",
	Short: "Audit every clue in a CSV or JSON dataset",
	Long: `Audit all clue records in a dataset file. CSV datasets need a header row
naming at least the answer column; JSON datasets are an array of clue
records. Malformed rows are skipped and reported, not fatal.

Exit code 1 means at least one clue failed its audit.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("no-llm", false, "Skip the LLM collaborator for the whole batch")
	rootCmd.AddCommand(batchCmd)
}

// batchEntry pairs one record with its audit result in the JSON output.
type batchEntry struct {
	Answer string              `json:"answer"`
	Clue   string              `json:"clue"`
	Result auditor.AuditResult `json:"result"`
}

type batchSummary struct {
	Total        int          `json:"total"`
	Passed       int          `json:"passed"`
	Failed       int          `json:"failed"`
	Skipped      int          `json:"skipped_rows"`
	MeanXimenean float64      `json:"mean_ximenean_score"`
	MeanFidelity float64      `json:"mean_narrative_fidelity"`
	Entries      []batchEntry `json:"entries"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	records, skipped, err := wordpool.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}
	for _, rowErr := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipped %v\n", rowErr)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "Error: dataset contains no usable clue records")
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
	aud := auditor.New(words, collab)

	// Spinner only on a real terminal; batch output may be piped.
	var spin *spinner.Spinner
	if cfg.ShowProgress && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Start()
		defer spin.Stop()
	}

	summary := batchSummary{Total: len(records), Skipped: len(skipped)}
	for i, rec := range records {
		if spin != nil {
			spin.Suffix = fmt.Sprintf(" auditing %d/%d: %s", i+1, len(records), rec.Answer)
		}

		ctx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.LLMTimeout+5)*time.Second)
		result := aud.AuditClue(ctx, rec)
		cancel()

		if result.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.Entries = append(summary.Entries, batchEntry{
			Answer: rec.Answer,
			Clue:   rec.Clue,
			Result: result,
		})
	}
	if spin != nil {
		spin.Stop()
		spin = nil
	}

	for _, entry := range summary.Entries {
		summary.MeanXimenean += entry.Result.XimeneanScore
		summary.MeanFidelity += entry.Result.NarrativeFidelity
	}
	summary.MeanXimenean /= float64(len(summary.Entries))
	summary.MeanFidelity /= float64(len(summary.Entries))

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printBatchReport(os.Stdout, summary)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitAuditFailed)
	}
	return nil
}

func printBatchReport(w io.Writer, summary batchSummary) {
	for _, entry := range summary.Entries {
		status := "PASS"
		if !entry.Result.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %-15s ximenean=%.2f difficulty=%d  %s\n",
			status, entry.Answer, entry.Result.XimeneanScore,
			entry.Result.DifficultyLevel, entry.Clue)

		if !entry.Result.Passed {
			for _, check := range entry.Result.Checks() {
				if !check.Passed {
					fmt.Fprintf(w, "       %s: %s\n", check.Name, check.Feedback)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%d audited: %d passed, %d failed",
		summary.Total, summary.Passed, summary.Failed)
	if summary.Skipped > 0 {
		fmt.Fprintf(w, " (%d rows skipped)", summary.Skipped)
	}
	fmt.Fprintf(w, "\nmean ximenean %.2f, mean fidelity %.0f\n",
		summary.MeanXimenean, summary.MeanFidelity)
}
