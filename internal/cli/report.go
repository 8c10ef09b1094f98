package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/setterlab/cluewright/internal/auditor"
	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/mechanic"
)

// printAuditReport renders the human-readable audit report.
func printAuditReport(w io.Writer, rec clue.Record, result auditor.AuditResult) {
	fmt.Fprintf(w, "Clue:   %s\n", rec.Clue)
	fmt.Fprintf(w, "Answer: %s\n\n", rec.Answer)

	for _, check := range result.Checks() {
		fmt.Fprintf(w, "  %-20s %s\n", check.Name, check.Feedback)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Fairness score:     %.1f\n", result.FairnessScore)
	fmt.Fprintf(w, "Ximenean score:     %.2f\n", result.XimeneanScore)
	fmt.Fprintf(w, "Difficulty level:   %d/5\n", result.DifficultyLevel)
	fmt.Fprintf(w, "Narrative fidelity: %.0f/100\n", result.NarrativeFidelity)

	if result.DoubleDutyDegraded {
		fmt.Fprintln(w, "\nNote: double duty was not verified; result is degraded.")
	}
	if result.RefinementSuggestion != "" {
		fmt.Fprintf(w, "\nSuggested refinement:\n  %s\n", result.RefinementSuggestion)
	}

	fmt.Fprintln(w)
	if result.Passed {
		fmt.Fprintln(w, "VERDICT: PASS")
	} else {
		fmt.Fprintln(w, "VERDICT: FAIL")
	}
}

// printValidationReport renders the mechanical validation results.
func printValidationReport(w io.Writer, rec clue.Record, valid bool, results map[string]mechanic.ValidationResult) {
	fmt.Fprintf(w, "Clue:   %s\n", rec.Clue)
	fmt.Fprintf(w, "Answer: %s\n\n", rec.Answer)

	for _, name := range sortedKeys(results) {
		r := results[name]
		status := "OK"
		if !r.IsValid {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-10s [%s] %s\n", name, status, r.Message)
	}

	fmt.Fprintln(w)
	if valid {
		fmt.Fprintln(w, "VERDICT: VALID")
	} else {
		fmt.Fprintln(w, "VERDICT: INVALID")
	}
}

// sortedKeys returns map keys in stable order for deterministic output.
func sortedKeys(m map[string]mechanic.ValidationResult) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
