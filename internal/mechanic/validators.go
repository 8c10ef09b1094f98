package mechanic

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/setterlab/cluewright/internal/lexicon"
	"github.com/setterlab/cluewright/internal/ximenes"
)

// ValidateAnagram checks that the fodder rearranges exactly into the answer.
// The identity constraint runs first: fodder containing the answer (or a
// simple inflection of it) is a lazy anagram and fails before any letter
// arithmetic. When a dictionary-backed validator is supplied, every fodder
// token must also be a real word or an accepted 1-2 letter cryptic shorthand.
func ValidateAnagram(fodder, answer string, words lexicon.WordValidator) ValidationResult {
	if id := CheckIdentityConstraint(fodder, answer); !id.IsValid {
		return id
	}

	if words != nil && lexicon.IsDictionaryBacked(words) {
		var bogus []string
		for _, tok := range strings.Fields(strings.ToLower(fodder)) {
			tok = Normalize(tok)
			if tok == "" {
				continue
			}
			if len(tok) <= 2 {
				if _, ok := ximenes.AnagramShorthand[tok]; ok {
					continue
				}
			}
			if !words.IsWord(tok) {
				bogus = append(bogus, tok)
			}
		}
		if len(bogus) > 0 {
			return invalid(
				fmt.Sprintf("anagram fodder contains non-dictionary words: %s", strings.Join(bogus, ", ")),
				map[string]any{"invalid_words": bogus},
			)
		}
	}

	nf := Normalize(fodder)
	na := Normalize(answer)
	fodderSorted := sortLetters(nf)
	answerSorted := sortLetters(na)

	if fodderSorted == answerSorted {
		return valid(
			fmt.Sprintf("valid anagram: %q -> %q", fodder, answer),
			map[string]any{"fodder": nf, "answer": na},
		)
	}

	missing, extra := letterDiff(nf, na)
	return invalid(
		fmt.Sprintf("invalid anagram: %q does not rearrange to %q", fodder, answer),
		map[string]any{
			"fodder_sorted":   fodderSorted,
			"answer_sorted":   answerSorted,
			"missing_letters": missing,
			"extra_letters":   extra,
		},
	)
}

// ValidateHiddenWord checks that the answer is concealed inside the fodder
// across a word boundary. Fodder that simply is the answer, or that carries
// the answer as a complete word of its own, is rejected before the substring
// search.
func ValidateHiddenWord(fodder, answer string) ValidationResult {
	nf := Normalize(fodder)
	na := Normalize(answer)
	if na == "" {
		return invalid("no answer provided for hidden word", nil)
	}

	tokens := strings.Fields(fodder)
	if len(tokens) == 1 && Normalize(tokens[0]) == na {
		return invalid(
			fmt.Sprintf("hidden word fodder %q is the answer itself; the answer must span at least two words", fodder),
			map[string]any{"fodder": nf, "answer": na},
		)
	}
	for _, tok := range tokens {
		if Normalize(tok) == na {
			return invalid(
				fmt.Sprintf("answer %q appears as a complete word of the fodder %q; it must be concealed across a word boundary", answer, fodder),
				map[string]any{"fodder": nf, "answer": na},
			)
		}
	}

	start := strings.Index(nf, na)
	if start < 0 {
		return invalid(
			fmt.Sprintf("invalid hidden word: %q not found in %q", answer, fodder),
			map[string]any{"fodder": nf, "answer": na},
		)
	}
	end := start + len(na)
	return valid(
		fmt.Sprintf("valid hidden word: %q found in %q", answer, fodder),
		map[string]any{
			"start":  start,
			"end":    end,
			"before": nf[:start],
			"hidden": na,
			"after":  nf[end:],
		},
	)
}

// ValidateCharade checks that the parts, concatenated in the given order,
// spell the answer exactly. Charade order is significant; no reordering is
// attempted.
func ValidateCharade(parts []string, answer string) ValidationResult {
	if len(parts) == 0 {
		return invalid("no parts provided for charade", nil)
	}

	normalized := make([]string, len(parts))
	for i, p := range parts {
		normalized[i] = Normalize(p)
	}
	concatenated := strings.Join(normalized, "")
	na := Normalize(answer)

	if concatenated == na {
		return valid(
			fmt.Sprintf("valid charade: %s = %q", strings.Join(parts, " + "), answer),
			map[string]any{"parts": normalized, "concatenated": concatenated},
		)
	}
	return invalid(
		fmt.Sprintf("invalid charade: %s != %q", strings.Join(parts, " + "), answer),
		map[string]any{"parts": normalized, "concatenated": concatenated, "expected": na},
	)
}

// ValidateContainer checks that splicing inner into outer yields the answer.
// With position set, only that splice index is tried; otherwise every index
// from 0 to len(outer) inclusive is tried and the lowest working index wins.
func ValidateContainer(outer, inner, answer string, position *int) ValidationResult {
	no := Normalize(outer)
	ni := Normalize(inner)
	na := Normalize(answer)

	var candidates []int
	if position != nil {
		if *position < 0 || *position > len(no) {
			return invalid(
				fmt.Sprintf("container position %d out of range for outer %q", *position, outer),
				map[string]any{"outer": no, "inner": ni},
			)
		}
		candidates = []int{*position}
	} else {
		for pos := 0; pos <= len(no); pos++ {
			candidates = append(candidates, pos)
		}
	}

	for _, pos := range candidates {
		spliced := no[:pos] + ni + no[pos:]
		if spliced == na {
			return valid(
				fmt.Sprintf("valid container: %q in %q at position %d = %q", inner, outer, pos, answer),
				map[string]any{"outer": no, "inner": ni, "position": pos, "result": spliced},
			)
		}
	}

	return invalid(
		fmt.Sprintf("invalid container: %q in %q does not produce %q", inner, outer, answer),
		map[string]any{"outer": no, "inner": ni, "expected": na},
	)
}

// ValidateReversal checks that the word reversed equals the answer exactly.
func ValidateReversal(word, answer string) ValidationResult {
	nw := Normalize(word)
	na := Normalize(answer)
	reversed := reverse(nw)

	if reversed == na {
		return valid(
			fmt.Sprintf("valid reversal: %q reversed = %q", word, answer),
			map[string]any{"word": nw, "reversed": reversed},
		)
	}
	return invalid(
		fmt.Sprintf("invalid reversal: %q reversed (%q) != %q", word, reversed, answer),
		map[string]any{"word": nw, "reversed": reversed, "expected": na},
	)
}

var digitRun = regexp.MustCompile(`\d+`)

// ValidateLength checks the letter-count invariant: the sum of the digit runs
// in the enumeration must equal the normalized answer length. An empty
// enumeration passes (nothing to check); an enumeration with no digits fails.
func ValidateLength(answer, enumeration string) ValidationResult {
	if strings.TrimSpace(enumeration) == "" {
		return valid("no enumeration provided to check", nil)
	}

	runs := digitRun.FindAllString(enumeration, -1)
	if len(runs) == 0 {
		return invalid(fmt.Sprintf("invalid enumeration format: %q", enumeration), nil)
	}

	expected := 0
	for _, run := range runs {
		for _, d := range run {
			expected = expected*10 + int(d-'0')
		}
	}
	actual := len(Normalize(answer))

	if actual == expected {
		return valid(
			fmt.Sprintf("length matches: %d", actual),
			map[string]any{"expected": expected, "actual": actual},
		)
	}
	return invalid(
		fmt.Sprintf("length mismatch: expected %d, got %d", expected, actual),
		map[string]any{"expected": expected, "actual": actual},
	)
}

// CheckIdentityConstraint fails when the normalized answer, or a simple
// inflection of it (+s, +ed, +ing, and the drop-trailing-e variants), appears
// as a substring of the normalized fodder. Inflections are only considered
// for answers longer than three letters, to avoid false positives on tiny
// words.
func CheckIdentityConstraint(fodder, answer string) ValidationResult {
	nf := Normalize(fodder)
	na := Normalize(answer)
	if nf == "" || na == "" {
		return valid("no fodder or answer to check", nil)
	}

	if strings.Contains(nf, na) {
		return invalid(
			fmt.Sprintf("identity constraint violated: answer %q appears in fodder %q; the answer must not appear in the wordplay material", answer, fodder),
			map[string]any{"fodder": nf, "answer": na},
		)
	}

	if len(na) > 3 {
		variants := []string{na + "s", na + "ed", na + "ing"}
		if strings.HasSuffix(na, "e") {
			stem := na[:len(na)-1]
			variants = append(variants, stem+"ed", stem+"ing")
		}
		for _, variant := range variants {
			if strings.Contains(nf, variant) {
				return invalid(
					fmt.Sprintf("identity constraint violated: answer variant %q appears in fodder %q", variant, fodder),
					map[string]any{"fodder": nf, "variant": variant},
				)
			}
		}
	}

	return valid(fmt.Sprintf("identity constraint satisfied: %q not found in fodder", answer), nil)
}

func sortLetters(s string) string {
	letters := strings.Split(s, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

// letterDiff compares letter multisets with correct multiplicity: missing
// letters are in the answer but absent from the fodder, extra letters the
// other way around.
func letterDiff(fodder, answer string) (missing, extra []string) {
	counts := make(map[rune]int)
	for _, r := range fodder {
		counts[r]++
	}
	for _, r := range answer {
		counts[r]--
	}

	var runes []rune
	for r := range counts {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	for _, r := range runes {
		for n := counts[r]; n < 0; n++ {
			missing = append(missing, string(r))
		}
		for n := counts[r]; n > 0; n-- {
			extra = append(extra, string(r))
		}
	}
	return missing, extra
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
