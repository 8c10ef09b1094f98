package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/setterlab/cluewright/internal/auditor"
	"github.com/setterlab/cluewright/internal/clue"
)

const auditorSystemPrompt = "You are an expert Ximenean crossword auditor."

// The narrow definition matters: a synonym standing as the definition is
// always fair; true double duty is one word acting as both the mechanical
// indicator and the sole definition.
const doubleDutyPromptFormat = `You are a strict but fair Ximenean auditor. Analyze this cryptic clue for "Double Duty" violations.

CLUE: %q

DEFINITION: %q

WORDPLAY FODDER: %q
INDICATOR: %q
MECHANISM: %q

A 'Double Duty' error is VERY SPECIFIC: it only occurs if a word is being used as a mechanical instruction (indicator) AND is also the only word providing the definition.

CRITICAL: If the definition is a synonym of the answer, that is NOT double duty. Double duty only occurs when a wordplay indicator is also the definition.

Also cross-reference the FODDER field against the CLUE text: if the fodder contains a word that is not present in the clue, or is only a single letter, FAIL the clue.

Examples:
- PASS: "Serenity in pieces (5)" - "serenity" is definition, "in pieces" is indicator (separate words)
- PASS: "Confused enlist soldiers to be quiet (6)" - "Confused" is indicator, "be quiet" is definition
- FAIL: "Shredded lettuce" - "shredded" is BOTH the anagram indicator AND the definition meaning "torn"
- FAIL: "Auditor with listen mixed" (answer AUTHOR) - "listen" is not in the clue, fodder invalid

Answer with ONLY:
PASS: [explanation] if no double duty is detected
FAIL: [explanation] if double duty is detected`

// CheckDoubleDuty asks the collaborator for a PASS/FAIL judgment. Any
// transport or extraction failure yields a degraded (passing) verdict; the
// audit pipeline must never block on LLM unavailability.
func (c *Client) CheckDoubleDuty(ctx context.Context, rec clue.Record) auditor.Verdict {
	prompt := fmt.Sprintf(doubleDutyPromptFormat,
		rec.Clue, rec.Definition,
		rec.Wordplay.Fodder, rec.Wordplay.Indicator, rec.Wordplay.Mechanism)

	text, err := c.Complete(ctx, auditorSystemPrompt, prompt, 200)
	if err != nil {
		return auditor.Verdict{Passed: true, Degraded: true, Detail: err.Error()}
	}

	upper := strings.ToUpper(text)
	firstLine, _, _ := strings.Cut(upper, "\n")
	if strings.Contains(firstLine, "PASS") || strings.Contains(upper, "PASS:") {
		return auditor.Verdict{Passed: true, Detail: text}
	}
	return auditor.Verdict{Passed: false, Detail: text}
}

const refinementPromptFormat = `Suggest a refined surface reading for this clue that:
1. Keeps the exact same wordplay mechanism
2. Improves the definition part
3. Makes it more natural English

CURRENT CLUE: %q

DEFINITION: %q

WORDPLAY: %s

Return only the refined clue, nothing else.`

// SuggestRefinement asks for one improved surface reading with identical
// wordplay. Best effort; callers treat an error as "no suggestion".
func (c *Client) SuggestRefinement(ctx context.Context, rec clue.Record) (string, error) {
	prompt := fmt.Sprintf(refinementPromptFormat, rec.Clue, rec.Definition, rec.Wordplay.Mechanism)
	return c.Complete(ctx, "You are an expert cryptic clue writer.", prompt, 150)
}
