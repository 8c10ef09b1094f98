// Package auditor implements the rule-based Ximenean fairness checks over a
// clue record: directional blocklist, indicator fairness and grammar, fodder
// presence, filler economy, identity constraint, narrative integrity,
// obscurity tiering, and real-word validation, plus the one check delegated
// to an LLM collaborator (double duty). Check outcomes are values, never
// errors; a failed check is an ordinary result, and a failed collaborator
// degrades to a pass with a warning.
package auditor

import (
	"context"

	"github.com/setterlab/cluewright/internal/clue"
)

// CheckResult is the outcome of one fairness check.
type CheckResult struct {
	Passed   bool   `json:"passed"`
	Feedback string `json:"feedback"`
}

// Verdict is the collaborator's double-duty judgment. Degraded marks a
// verdict that could not actually be obtained (no collaborator configured,
// network failure, malformed response); a degraded verdict always passes so
// the pipeline never blocks on a best-effort dependency.
type Verdict struct {
	Passed   bool
	Detail   string
	Degraded bool
}

// Collaborator is the LLM boundary consumed by the auditor. Implementations
// must return a Verdict for any input; transport failures surface as
// Degraded verdicts, not errors.
type Collaborator interface {
	CheckDoubleDuty(ctx context.Context, rec clue.Record) Verdict
	SuggestRefinement(ctx context.Context, rec clue.Record) (string, error)
}

// AuditResult is the immutable outcome of one audit: the named check flags
// with their feedback, the composite scores, and the overall pass flag
// (logical AND of all checks).
type AuditResult struct {
	Passed bool `json:"passed"`

	Direction          CheckResult `json:"direction"`
	DoubleDuty         CheckResult `json:"double_duty"`
	IndicatorFairness  CheckResult `json:"indicator_fairness"`
	Identity           CheckResult `json:"identity"`
	FodderPresence     CheckResult `json:"fodder_presence"`
	Filler             CheckResult `json:"filler"`
	IndicatorGrammar   CheckResult `json:"indicator_grammar"`
	NarrativeIntegrity CheckResult `json:"narrative_integrity"`
	Obscurity          CheckResult `json:"obscurity"`
	WordValidity       CheckResult `json:"word_validity"`

	DoubleDutyDegraded bool `json:"double_duty_degraded,omitempty"`

	FairnessScore     float64 `json:"fairness_score"`
	XimeneanScore     float64 `json:"ximenean_score"`
	DifficultyLevel   int     `json:"difficulty_level"`
	NarrativeFidelity float64 `json:"narrative_fidelity"`

	RefinementSuggestion string `json:"refinement_suggestion,omitempty"`
}

// NamedCheck pairs a check result with its display name.
type NamedCheck struct {
	Name string
	CheckResult
}

// Checks returns the check results in audit order, for reporting.
func (r AuditResult) Checks() []NamedCheck {
	return []NamedCheck{
		{"direction", r.Direction},
		{"double duty", r.DoubleDuty},
		{"indicator fairness", r.IndicatorFairness},
		{"identity", r.Identity},
		{"fodder presence", r.FodderPresence},
		{"filler economy", r.Filler},
		{"indicator grammar", r.IndicatorGrammar},
		{"narrative integrity", r.NarrativeIntegrity},
		{"obscurity", r.Obscurity},
		{"word validity", r.WordValidity},
	}
}
