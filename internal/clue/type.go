package clue

import "strings"

// Type is the canonical clue-type tag. The string tags accepted on input are
// looser (see ParseType); once parsed, dispatch happens over this closed set.
type Type int

const (
	TypeUnknown Type = iota
	TypeAnagram
	TypeHidden
	TypeCharade
	TypeContainer
	TypeReversal
	TypeHomophone
	TypeDoubleDefinition
	TypeAndLit
)

// typeSynonyms maps each accepted input spelling to its canonical tag.
// Setters and upstream datasets are inconsistent about plurals and naming,
// so the mapping is deliberately lenient.
var typeSynonyms = map[string]Type{
	"anagram":            TypeAnagram,
	"anagrams":           TypeAnagram,
	"hidden word":        TypeHidden,
	"hidden words":       TypeHidden,
	"hidden":             TypeHidden,
	"charade":            TypeCharade,
	"charades":           TypeCharade,
	"container":          TypeContainer,
	"containers":         TypeContainer,
	"inclusion":          TypeContainer,
	"inclusions":         TypeContainer,
	"insertion":          TypeContainer,
	"reversal":           TypeReversal,
	"reversals":          TypeReversal,
	"reverse":            TypeReversal,
	"homophone":          TypeHomophone,
	"homophones":         TypeHomophone,
	"double definition":  TypeDoubleDefinition,
	"double definitions": TypeDoubleDefinition,
	"&lit":               TypeAndLit,
	"all-in-one":         TypeAndLit,
}

// ParseType resolves a free-text clue type to its canonical tag.
// Matching is case-insensitive and whitespace-trimmed; ok is false for
// unrecognized spellings.
func ParseType(s string) (t Type, ok bool) {
	t, ok = typeSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// String returns the display name of the canonical tag.
func (t Type) String() string {
	switch t {
	case TypeAnagram:
		return "anagram"
	case TypeHidden:
		return "hidden word"
	case TypeCharade:
		return "charade"
	case TypeContainer:
		return "container"
	case TypeReversal:
		return "reversal"
	case TypeHomophone:
		return "homophone"
	case TypeDoubleDefinition:
		return "double definition"
	case TypeAndLit:
		return "&lit"
	default:
		return "unknown"
	}
}

// SupportedTypes lists the canonical type names, for error messages.
func SupportedTypes() []string {
	return []string{
		"anagram", "hidden word", "charade", "container",
		"reversal", "homophone", "double definition", "&lit",
	}
}

// ParsedType resolves the record's type string. Unknown spellings return
// TypeUnknown with ok false.
func (r Record) ParsedType() (Type, bool) {
	return ParseType(r.Type)
}
