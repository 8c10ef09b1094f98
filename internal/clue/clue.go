// Package clue defines the value objects passed between the mechanical
// validator, the rule-based auditor, and the scoring engine: a clue record
// with its wordplay decomposition, and the canonical clue-type tag.
package clue

import (
	"regexp"
	"strings"
)

// Wordplay holds the mechanism-specific fields of a clue decomposition.
// Which fields are populated depends on the clue type: anagrams and hidden
// words use Fodder, charades use Parts (or Fodder split on separators),
// containers use Outer/Inner, reversals use Word or Fodder.
type Wordplay struct {
	Fodder    string   `json:"fodder,omitempty" yaml:"fodder,omitempty"`
	Indicator string   `json:"indicator,omitempty" yaml:"indicator,omitempty"`
	Mechanism string   `json:"mechanism,omitempty" yaml:"mechanism,omitempty"`
	Word      string   `json:"word,omitempty" yaml:"word,omitempty"`
	Outer     string   `json:"outer,omitempty" yaml:"outer,omitempty"`
	Inner     string   `json:"inner,omitempty" yaml:"inner,omitempty"`
	Parts     []string `json:"parts,omitempty" yaml:"parts,omitempty"`
	Position  *int     `json:"position,omitempty" yaml:"position,omitempty"`
}

// Record is a single cryptic clue with its claimed decomposition.
// The answer is conventionally uppercase; the clue text is expected to end
// with an enumeration annotation such as (6) or (3,4).
type Record struct {
	Answer      string   `json:"answer" yaml:"answer"`
	Clue        string   `json:"clue" yaml:"clue"`
	Definition  string   `json:"definition" yaml:"definition"`
	Type        string   `json:"type" yaml:"type"`
	Wordplay    Wordplay `json:"wordplay_parts" yaml:"wordplay_parts"`
	Enumeration string   `json:"enumeration,omitempty" yaml:"enumeration,omitempty"`
}

var enumerationPattern = regexp.MustCompile(`\(([\d,\s/-]+)\)\s*$`)

// ExtractEnumeration returns the trailing enumeration annotation of a clue
// text, parentheses included, or "" when the clue carries none.
func ExtractEnumeration(clueText string) string {
	m := enumerationPattern.FindString(strings.TrimSpace(clueText))
	return strings.TrimSpace(m)
}

// FodderText returns the raw wordplay material of the record regardless of
// mechanism: the fodder field when set, otherwise the charade parts joined,
// otherwise the container outer and inner joined.
func (r Record) FodderText() string {
	switch {
	case r.Wordplay.Fodder != "":
		return r.Wordplay.Fodder
	case len(r.Wordplay.Parts) > 0:
		return strings.Join(r.Wordplay.Parts, " ")
	case r.Wordplay.Outer != "" || r.Wordplay.Inner != "":
		return strings.TrimSpace(r.Wordplay.Outer + " " + r.Wordplay.Inner)
	}
	return ""
}
