package mechanic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/lexicon"
)

var charadeSeparators = regexp.MustCompile(`[+\s]+`)

// ValidateClue dispatches the record to the validator for its clue type.
// Type matching is lenient (see clue.ParseType); homophone, double
// definition, and &lit mechanisms cannot be checked structurally and return a
// pass flagged requires_llm. Missing required wordplay fields produce a
// failure naming the field.
func ValidateClue(rec clue.Record, words lexicon.WordValidator) ValidationResult {
	if Normalize(rec.Answer) == "" {
		return invalid("no answer provided in clue record", nil)
	}

	t, ok := rec.ParsedType()
	if !ok {
		return invalid(
			fmt.Sprintf("unknown clue type: %q", rec.Type),
			map[string]any{"supported_types": clue.SupportedTypes()},
		)
	}

	wp := rec.Wordplay
	switch t {
	case clue.TypeAnagram:
		if wp.Fodder == "" {
			return invalid("no fodder provided for anagram", nil)
		}
		return ValidateAnagram(wp.Fodder, rec.Answer, words)

	case clue.TypeHidden:
		if wp.Fodder == "" {
			return invalid("no fodder provided for hidden word", nil)
		}
		return ValidateHiddenWord(wp.Fodder, rec.Answer)

	case clue.TypeCharade:
		parts := wp.Parts
		if len(parts) == 0 && wp.Fodder != "" {
			parts = splitCharadeFodder(wp.Fodder)
		}
		if len(parts) == 0 {
			return invalid("no parts provided for charade", nil)
		}
		return ValidateCharade(parts, rec.Answer)

	case clue.TypeContainer:
		if wp.Outer == "" || wp.Inner == "" {
			return invalid("missing 'outer' or 'inner' for container", nil)
		}
		return ValidateContainer(wp.Outer, wp.Inner, rec.Answer, wp.Position)

	case clue.TypeReversal:
		word := wp.Word
		if word == "" {
			word = wp.Fodder
		}
		if word == "" {
			return invalid("no word provided for reversal", nil)
		}
		return ValidateReversal(word, rec.Answer)

	case clue.TypeHomophone:
		return valid(
			"homophone: mechanical validation skipped (requires phonetic reasoning)",
			map[string]any{"requires_llm": true},
		)

	case clue.TypeDoubleDefinition:
		return valid(
			"double definition: mechanical validation skipped (requires semantic reasoning)",
			map[string]any{"requires_llm": true},
		)

	case clue.TypeAndLit:
		return valid(
			"&lit: mechanical validation skipped (requires holistic reasoning)",
			map[string]any{"requires_llm": true},
		)
	}

	// Unreachable given ParseType's closed mapping; kept for totality.
	return invalid(
		fmt.Sprintf("unknown clue type: %q", rec.Type),
		map[string]any{"supported_types": clue.SupportedTypes()},
	)
}

func splitCharadeFodder(fodder string) []string {
	var parts []string
	for _, p := range charadeSeparators.Split(fodder, -1) {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// ValidateClueComplete runs the length check (when an enumeration is given)
// and the wordplay check, returning overall validity with the named results.
func ValidateClueComplete(rec clue.Record, enumeration string, words lexicon.WordValidator) (bool, map[string]ValidationResult) {
	results := make(map[string]ValidationResult)

	if strings.TrimSpace(enumeration) != "" {
		results["length"] = ValidateLength(rec.Answer, enumeration)
	}
	results["wordplay"] = ValidateClue(rec, words)

	allValid := true
	for _, r := range results {
		if !r.IsValid {
			allValid = false
		}
	}
	return allValid, results
}
