package auditor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/lexicon"
	"github.com/setterlab/cluewright/internal/mechanic"
	"github.com/setterlab/cluewright/internal/ximenes"
)

var (
	lowerWord     = regexp.MustCompile(`\b[a-z]+\b`)
	wordToken     = regexp.MustCompile(`\b\w+\b`)
	upperFragment = regexp.MustCompile(`\b[A-Z]{1,4}\b`)
	fodderWord    = regexp.MustCompile(`\b[a-z]{2,}\b`)

	// Word-boundary patterns for the directional blocklist, compiled once.
	// Boundary matching keeps "on" from firing inside "confused" or "scones".
	directionPatterns = compileBlocklist(ximenes.DirectionalBlocklist)

	literalListingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[a-z]\s*,\s*[a-z]\b`),
		regexp.MustCompile(`\b[a-z]\s*,\s*[a-z]\s*,\s*[a-z]\b`),
		regexp.MustCompile(`\bwith\s+[a-z]{1,2}\s*,`),
		regexp.MustCompile(`\bfrom\s+[a-z]{1,2}\s*,`),
		regexp.MustCompile(`\bhas\s+[a-z]{1,2}\s*,`),
	}

	mechanismNonWordPatterns = []*regexp.Regexp{
		regexp.MustCompile(`reverse of ([a-z]+)`),
		regexp.MustCompile(`anagram of ([a-z]+)`),
		regexp.MustCompile(`hidden in ([a-z]+)`),
	}
)

func compileBlocklist(terms []string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(terms))
	for _, term := range terms {
		patterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// Words acceptable as standalone short tokens in a surface reading.
var acceptableShort = map[string]struct{}{
	"a": {}, "i": {}, "is": {}, "in": {}, "it": {}, "at": {}, "to": {}, "of": {},
	"or": {}, "an": {}, "as": {}, "be": {}, "by": {}, "do": {}, "go": {}, "he": {},
	"if": {}, "me": {}, "my": {}, "no": {}, "on": {}, "so": {}, "up": {}, "us": {},
	"we": {},
	// Cryptic standards
	"ace": {}, "one": {}, "ten": {}, "two": {}, "gas": {}, "old": {}, "new": {},
	"son": {}, "tea": {},
}

var commonTwoLetter = map[string]struct{}{
	"am": {}, "an": {}, "as": {}, "at": {}, "be": {}, "by": {}, "do": {}, "go": {},
	"he": {}, "hi": {}, "if": {}, "in": {}, "is": {}, "it": {}, "me": {}, "my": {},
	"no": {}, "of": {}, "oh": {}, "ok": {}, "on": {}, "or": {}, "ox": {}, "so": {},
	"to": {}, "up": {}, "us": {}, "we": {}, "ye": {},
}

// checkDirection scans the indicator field, never fodder or mechanism, for
// down-only direction words. Such indicators are only fair in a down clue,
// and clues here are laid out horizontally.
func (a *Auditor) checkDirection(rec clue.Record) CheckResult {
	indicator := strings.ToLower(rec.Wordplay.Indicator)

	var hits []string
	for _, term := range ximenes.DirectionalBlocklist {
		if directionPatterns[term].MatchString(indicator) {
			hits = append(hits, term)
		}
	}

	if len(hits) > 0 {
		sort.Strings(hits)
		return CheckResult{false, fmt.Sprintf(
			"[FAIL] Found down-only indicator(s) in indicator field: %s. "+
				"This clue cannot be used in a stand-alone (horizontal) format.",
			strings.Join(hits, ", "))}
	}
	return CheckResult{true, "[PASS] No down-only indicators detected in indicator field."}
}

// checkIndicatorFairness flags noun indicators on anagram clues. Ximenean
// convention wants anagram indicators to be verbs signaling an action, not
// nouns naming a jumbled state.
func (a *Auditor) checkIndicatorFairness(rec clue.Record) CheckResult {
	if t, _ := rec.ParsedType(); t != clue.TypeAnagram {
		return CheckResult{true, "[PASS] Indicator appears fair."}
	}

	for _, word := range wordToken.FindAllString(strings.ToLower(rec.Wordplay.Indicator), -1) {
		if _, ok := ximenes.NounIndicators[word]; ok {
			return CheckResult{false, fmt.Sprintf(
				"[WARN] Anagram uses noun indicator %q. "+
					"Ximeneans prefer verb indicators (e.g., 'mixed', 'scrambled').", word)}
		}
	}
	return CheckResult{true, "[PASS] Indicator appears fair."}
}

// checkFodderPresence requires every substantial fodder word to appear
// verbatim in the clue text. Substituting a synonym for a fodder word hides a
// letter's provenance from the solver.
func (a *Auditor) checkFodderPresence(rec clue.Record) CheckResult {
	fodder := strings.ToLower(rec.Wordplay.Fodder)
	if fodder == "" {
		return CheckResult{true, "[PASS] No fodder to check."}
	}
	clueText := strings.ToLower(rec.Clue)

	var missing []string
	for _, word := range lowerWord.FindAllString(fodder, -1) {
		if len(word) <= 2 {
			continue
		}
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		if !pattern.MatchString(clueText) {
			missing = append(missing, word)
		}
	}

	if len(missing) > 0 {
		return CheckResult{false, fmt.Sprintf(
			"[FAIL] Fodder words not found in clue text: %s. "+
				"This suggests synonyms were used instead of the exact fodder. "+
				"Ximenean rules require the fodder to be physically present in the clue.",
			strings.Join(missing, ", "))}
	}
	return CheckResult{true, "[PASS] All fodder words are physically present in the clue."}
}

// checkFillerWords enforces surface economy: every clue word must serve the
// definition, fodder, or indicator, or be one of at most two allowed
// connectors.
func (a *Auditor) checkFillerWords(rec clue.Record) CheckResult {
	clueWords := wordSet(rec.Clue)
	functional := wordSet(rec.Definition)
	for w := range wordSet(rec.Wordplay.Fodder) {
		functional[w] = struct{}{}
	}
	for w := range wordSet(rec.Wordplay.Indicator) {
		functional[w] = struct{}{}
	}

	var connectors, fillers []string
	for w := range clueWords {
		if _, ok := functional[w]; ok {
			continue
		}
		if _, ok := ximenes.AllowedConnectors[w]; ok {
			connectors = append(connectors, w)
		} else {
			fillers = append(fillers, w)
		}
	}
	sort.Strings(connectors)
	sort.Strings(fillers)

	if len(connectors) > 2 {
		return CheckResult{false, fmt.Sprintf(
			"[FAIL] Too many connectors (%d): %s. "+
				"Use at most 2 connectors. Build with Definition + Fodder + Indicator first.",
			len(connectors), strings.Join(connectors, ", "))}
	}
	if len(fillers) > 0 {
		return CheckResult{false, fmt.Sprintf(
			"[FAIL] Filler words detected: %s. "+
				"Every word must be definition, fodder, indicator, or an essential connector.",
			strings.Join(fillers, ", "))}
	}
	return CheckResult{true, "[PASS] Minimalist economy achieved - all words serve a cryptic purpose."}
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range lowerWord.FindAllString(strings.ToLower(s), -1) {
		set[w] = struct{}{}
	}
	return set
}

// checkIndicatorGrammar applies the past-participle position rule. A
// participle before the fodder reads attributively and is always acceptable;
// after the fodder it reads as a description rather than an instruction,
// which is wrong for anagrams specifically. For other types ("returned"
// after a reversal operand) the same ordering is fine.
func (a *Auditor) checkIndicatorGrammar(rec clue.Record) CheckResult {
	clueText := strings.ToLower(rec.Clue)
	indicator := strings.TrimSpace(strings.ToLower(rec.Wordplay.Indicator))
	fodder := strings.TrimSpace(strings.ToLower(rec.Wordplay.Fodder))

	if indicator == "" || fodder == "" {
		return CheckResult{true, "[PASS] No indicator or fodder to check."}
	}

	indicatorPos := strings.Index(clueText, indicator)
	fodderPos := strings.Index(clueText, fodder)
	if indicatorPos == -1 || fodderPos == -1 {
		return CheckResult{true, "[PASS] Cannot determine indicator/fodder positions."}
	}

	participle := false
	for _, word := range strings.Fields(indicator) {
		if len(word) <= 3 {
			continue
		}
		if _, ok := ximenes.PastParticipleExceptions[word]; ok {
			continue
		}
		if strings.HasSuffix(word, "ed") {
			participle = true
			break
		}
	}
	if !participle {
		return CheckResult{true, "[PASS] Indicator grammar is correct (imperative form)."}
	}

	if indicatorPos < fodderPos {
		return CheckResult{true, fmt.Sprintf(
			"[PASS] Indicator %q uses past participle in attributive position (before fodder). "+
				"This is acceptable classic Ximenean style.", indicator)}
	}

	if t, _ := rec.ParsedType(); t == clue.TypeAnagram {
		return CheckResult{false, fmt.Sprintf(
			"[FAIL] Indicator %q appears after fodder in anagram clue. "+
				"Past participles after fodder suggest a state rather than an instruction. "+
				"Prefer imperative forms (e.g., 'mix' not 'mixed') or place the indicator before the fodder.",
			indicator)}
	}
	return CheckResult{true, fmt.Sprintf(
		"[PASS] Indicator %q uses past participle after fodder. "+
			"This is acceptable for %s clues (e.g., 'returned' for reversals).",
		indicator, strings.ToLower(rec.Type))}
}

// checkIdentityConstraint mirrors the mechanic's identity check but extracts
// fodder generically from the wordplay fields, and for hidden-word clues
// additionally rejects single-word fodder identical to the answer.
func (a *Auditor) checkIdentityConstraint(rec clue.Record) CheckResult {
	fodder := rec.FodderText()
	if fodder == "" {
		return CheckResult{true, "[PASS] No fodder to check."}
	}

	if res := mechanic.CheckIdentityConstraint(fodder, rec.Answer); !res.IsValid {
		return CheckResult{false, "[FAIL] " + res.Message}
	}

	if t, _ := rec.ParsedType(); t == clue.TypeHidden {
		tokens := strings.Fields(fodder)
		if len(tokens) == 1 && mechanic.Normalize(fodder) == mechanic.Normalize(rec.Answer) {
			return CheckResult{false, fmt.Sprintf(
				"[FAIL] Hidden word fodder %q is the answer itself. "+
					"The answer must be concealed across at least two different words.", fodder)}
		}
	}

	return CheckResult{true, fmt.Sprintf(
		"[PASS] Identity constraint satisfied: %q not found in fodder.", rec.Answer)}
}

// checkNarrativeIntegrity rejects surfaces that read as literal letter
// listings ("with en, treat, y") instead of natural language, and, when a
// real dictionary is loaded, anagram fodder that is not made of real words.
func (a *Auditor) checkNarrativeIntegrity(rec clue.Record) CheckResult {
	t, _ := rec.ParsedType()

	if t == clue.TypeAnagram && lexicon.IsDictionaryBacked(a.words) {
		fodder := rec.Wordplay.Fodder
		if fodder != "" {
			var bogus []string
			for _, word := range strings.Fields(strings.ToLower(fodder)) {
				if len(word) <= 2 {
					if _, ok := ximenes.AnagramShorthand[word]; ok {
						continue
					}
				}
				if !a.words.IsWord(word) {
					bogus = append(bogus, word)
				}
			}
			if len(bogus) > 0 {
				return CheckResult{false, fmt.Sprintf(
					"[FAIL] Anagram fodder contains non-dictionary gibberish: %s. "+
						"Ximenean standard requires all anagram fodder to be real English words.",
					strings.Join(bogus, ", "))}
			}
		}
	}

	clueText := strings.ToLower(rec.Clue)
	for _, pattern := range literalListingPatterns {
		if m := pattern.FindString(clueText); m != "" {
			return CheckResult{false, fmt.Sprintf(
				"[FAIL] Surface contains literal letter listing: %q. "+
					"Single letters must be masked using standard cryptic abbreviations "+
					"(e.g. 'N' -> 'north/knight/new', 'EN' -> 'nurse').", m)}
		}
	}

	var suspicious []string
	for _, token := range lowerWord.FindAllString(clueText, -1) {
		if len(token) != 2 {
			continue
		}
		if _, ok := acceptableShort[token]; ok {
			continue
		}
		if _, ok := commonTwoLetter[token]; ok {
			continue
		}
		suspicious = append(suspicious, token)
	}
	if len(suspicious) > 0 && strings.Contains(clueText, ",") {
		return CheckResult{true, fmt.Sprintf(
			"[WARN] Possible unmasked abbreviations: %s. "+
				"Verify these are natural English words, not letter codes.",
			strings.Join(suspicious, ", "))}
	}

	return CheckResult{true, "[PASS] Surface reading appears natural - no literal letter listings detected."}
}

// checkObscurity tiers the abbreviation fragments in the fodder (priority
// abbreviations pass silently, extended or unknown ones warn), hard-fails
// gibberish reversal fodder, and verifies any word named by the mechanism
// ("reverse of X") is real.
func (a *Auditor) checkObscurity(rec clue.Record) CheckResult {
	fodder := strings.ToUpper(rec.Wordplay.Fodder)
	mechanism := strings.ToLower(rec.Wordplay.Mechanism)
	t, _ := rec.ParsedType()

	var flagged []string
	for _, frag := range upperFragment.FindAllString(fodder, -1) {
		if len(frag) > 3 {
			continue
		}
		switch {
		case ximenes.IsPriority(frag):
			// Widely recognized; nothing to flag.
		case ximenes.IsExtended(frag):
			flagged = append(flagged, frag+" (extended)")
		default:
			flagged = append(flagged, frag)
		}
	}
	if len(flagged) > 0 {
		return CheckResult{true, fmt.Sprintf(
			"[WARN] Non-priority abbreviations detected: %s. "+
				"Prefer Roman numerals (I,V,X,L,C,D,M), common elements (H,O,N,AU,FE), "+
				"directions (N,S,E,W), music (P,F), chess (K,Q,B,N), titles (DR,MP,MO), units (T,M,S,HR).",
			strings.Join(flagged, ", "))}
	}

	if t == clue.TypeReversal {
		var nonWords []string
		for _, word := range lowerWord.FindAllString(strings.ToLower(fodder), -1) {
			if len(word) > 2 && !a.words.IsWord(word) {
				nonWords = append(nonWords, word)
			}
		}
		if len(nonWords) > 0 {
			return CheckResult{false, fmt.Sprintf(
				"[FAIL] Non-word fodder detected: %s. "+
					"Every piece of fodder must be a real English word; for reversals, both "+
					"original and reversed must be valid. Choose a different mechanism otherwise.",
				strings.Join(nonWords, ", "))}
		}
	}

	for _, pattern := range mechanismNonWordPatterns {
		for _, m := range pattern.FindAllStringSubmatch(mechanism, -1) {
			word := m[1]
			if len(word) > 3 && !a.words.IsWord(word) {
				return CheckResult{false, fmt.Sprintf(
					"[FAIL] Non-word in mechanism: %q. "+
						"Wordplay cannot force non-words into the clue; choose a mechanism "+
						"that uses real English words only.", word)}
			}
		}
	}

	return CheckResult{true, "[PASS] All abbreviations are standard priority types."}
}

// checkWordValidity requires every substantial fodder token that is not a
// known abbreviation to be a dictionary word. Failures are hard and carry
// type-specific remediation guidance.
func (a *Auditor) checkWordValidity(rec clue.Record) CheckResult {
	fodder := strings.ToLower(rec.Wordplay.Fodder)
	if fodder == "" {
		return CheckResult{true, "[PASS] No fodder to validate."}
	}
	t, _ := rec.ParsedType()

	var toCheck []string
	for _, word := range fodderWord.FindAllString(fodder, -1) {
		if ximenes.IsAbbreviation(strings.ToUpper(word)) {
			continue
		}
		if len(word) >= 3 {
			toCheck = append(toCheck, word)
		}
	}
	if len(toCheck) == 0 {
		return CheckResult{true, "[PASS] No substantial words in fodder to validate."}
	}

	var nonWords []string
	for _, word := range toCheck {
		if !a.words.IsWord(word) {
			nonWords = append(nonWords, word)
		}
	}
	if len(nonWords) == 0 {
		return CheckResult{true, "[PASS] All fodder words are valid dictionary entries."}
	}

	feedback := fmt.Sprintf(
		"[FAIL] Non-dictionary words detected in fodder: %s. "+
			"All mechanical fodder must be legitimate English words. ",
		strings.Join(nonWords, ", "))
	switch t {
	case clue.TypeReversal:
		feedback += "For reversals, both the fodder word and its reverse must be valid " +
			"(e.g. 'lager' -> REGAL). If the reversal creates a non-word, choose a different mechanism."
	case clue.TypeContainer:
		feedback += "For containers, both outer and inner words must be dictionary-valid " +
			"(e.g. IN inside PAT = PAINT)."
	default:
		feedback += "Every piece of fodder must be defensible via a standard English dictionary."
	}
	if !lexicon.IsDictionaryBacked(a.words) {
		feedback += " (Note: using heuristic validation - no system wordlist was found.)"
	}
	return CheckResult{false, feedback}
}
