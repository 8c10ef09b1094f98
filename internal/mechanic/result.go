// Package mechanic implements the deterministic, per-mechanism validators for
// cryptic wordplay: anagram, hidden word, charade, container, reversal, plus
// the length and identity constraints shared between them. Every validator is
// total (always returning a ValidationResult, never panicking) and pure apart
// from optional dictionary lookups.
package mechanic

import (
	"regexp"
	"strings"
)

// ValidationResult is the outcome of a single mechanical check. Details holds
// mechanism-specific diagnostics (letter multisets, splice positions) for
// display; callers decide retry or abort policy from IsValid.
type ValidationResult struct {
	IsValid bool           `json:"is_valid"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func valid(message string, details map[string]any) ValidationResult {
	return ValidationResult{IsValid: true, Message: message, Details: details}
}

func invalid(message string, details map[string]any) ValidationResult {
	return ValidationResult{IsValid: false, Message: message, Details: details}
}

var nonLetter = regexp.MustCompile(`[^a-zA-Z]`)

// Normalize strips every character that is not an ASCII letter and lowercases
// the remainder, so punctuation, digits, and whitespace never affect
// mechanical legality.
func Normalize(text string) string {
	return strings.ToLower(nonLetter.ReplaceAllString(text, ""))
}
