// Package ximenes holds the static convention tables used by the auditor and
// the scoring engine: directional blocklists, indicator word lists, connector
// words, and the two abbreviation tiers. The tables are read-only data; they
// are initialized once and never mutated.
package ximenes

// DirectionalBlocklist contains down-only direction words. A clue laid out
// horizontally must not use any of these as an indicator.
var DirectionalBlocklist = []string{
	"rising",
	"lifted",
	"climbing",
	"up",
	"upwards",
	"skyward",
	"mounting",
	"ascending",
	"on",
	"supports",
	"overhead",
	"over",
	"underneath",
	"atop",
	"climbing up",
	"going up",
	"comes up",
	"rises",
	"lifts",
	"climbs",
}

// NounIndicators are anagram indicators that name a jumbled state rather than
// instruct an action. "mix" and "scramble" are deliberately absent: both read
// as acceptable imperative verbs.
var NounIndicators = map[string]struct{}{
	"anagram": {},
	"medley":  {},
	"salad":   {},
	"mixture": {},
	"hash":    {},
	"chaos":   {},
	"mess":    {},
	"jumble":  {},
	"tangle":  {},
}

// AllowedConnectors are the grammatical glue words permitted between
// definition, fodder, and indicator. At most two per clue.
var AllowedConnectors = map[string]struct{}{
	"is": {}, "for": {}, "gives": {}, "from": {}, "at": {},
	"becomes": {}, "to": {}, "in": {}, "of": {}, "with": {},
}

// PriorityAbbreviations is the tier of widely recognized cryptic
// abbreviations: Roman numerals, common elements, compass directions, music
// dynamics, chess pieces, titles, academic degrees, and units.
var PriorityAbbreviations = map[string]struct{}{
	// Roman numerals
	"I": {}, "V": {}, "X": {}, "L": {}, "C": {}, "D": {}, "M": {}, "XI": {},
	// Common elements
	"H": {}, "O": {}, "N": {}, "AU": {}, "AG": {}, "FE": {}, "PB": {}, "CU": {},
	// Directions
	"S": {}, "E": {}, "W": {}, "R": {},
	// Music
	"P": {}, "F": {}, "PP": {}, "FF": {},
	// Chess
	"K": {}, "Q": {}, "B": {},
	// Titles
	"DR": {}, "MO": {}, "MP": {}, "QC": {}, "PM": {},
	// Academic
	"BA": {}, "MA": {}, "BSC": {},
	// Units
	"T": {}, "G": {}, "OZ": {}, "LB": {}, "HR": {}, "MIN": {},
	// Common single letters
	"A": {}, "U": {}, "Y": {}, "Z": {},
}

// ExtendedAbbreviations is the tier of less common abbreviations. Fragments
// drawn from this tier are flagged for review rather than rejected.
var ExtendedAbbreviations = map[string]struct{}{
	"EN": {}, "RE": {}, "RA": {}, "GI": {}, "CA": {}, "CH": {}, "LA": {},
	"TE": {}, "DIT": {}, "DAH": {}, "NT": {}, "ER": {}, "ED": {}, "ST": {},
	"ND": {}, "RD": {}, "TH": {},
}

// AnagramShorthand lists the 1-2 letter tokens accepted in anagram fodder
// without a dictionary lookup.
var AnagramShorthand = map[string]struct{}{
	"n": {}, "s": {}, "e": {}, "w": {}, "l": {}, "r": {}, "u": {}, "o": {},
	"er": {}, "ed": {}, "re": {},
}

// PastParticipleExceptions are -ed words that are not participles and must
// not trip the indicator grammar check. The list is a heuristic, not a closed
// linguistic resource.
var PastParticipleExceptions = map[string]struct{}{
	"red": {}, "bed": {}, "fed": {}, "led": {}, "wed": {}, "bred": {}, "shed": {},
}

// IsAbbreviation reports whether the uppercased fragment belongs to either
// abbreviation tier.
func IsAbbreviation(frag string) bool {
	if _, ok := PriorityAbbreviations[frag]; ok {
		return true
	}
	_, ok := ExtendedAbbreviations[frag]
	return ok
}

// IsPriority reports whether the uppercased fragment is a priority-tier
// abbreviation.
func IsPriority(frag string) bool {
	_, ok := PriorityAbbreviations[frag]
	return ok
}

// IsExtended reports whether the uppercased fragment is an extended-tier
// abbreviation.
func IsExtended(frag string) bool {
	_, ok := ExtendedAbbreviations[frag]
	return ok
}
