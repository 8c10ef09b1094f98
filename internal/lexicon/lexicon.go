// Package lexicon provides real-word validation for clue fodder. A system
// wordlist is used when one can be found; otherwise a permissive heuristic
// stands in so the rules engine never becomes unusably strict because an
// optional dependency is absent.
package lexicon

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// WordValidator is the capability consumed by the mechanic and the auditor.
// Implementations must be safe for concurrent use.
type WordValidator interface {
	// IsWord reports whether the word is acceptable English.
	IsWord(word string) bool
}

// probe order: British English preferred, American English fallback, then the
// generic system wordlist.
var defaultWordlists = []struct {
	locale string
	path   string
}{
	{"en_GB", "/usr/share/dict/british-english"},
	{"en_US", "/usr/share/dict/american-english"},
	{"", "/usr/share/dict/words"},
}

// New probes the default system wordlist locations and returns a
// dictionary-backed validator when one loads, or the heuristic validator when
// none is available. It never fails.
func New() WordValidator {
	paths := make([]string, 0, len(defaultWordlists))
	for _, wl := range defaultWordlists {
		paths = append(paths, wl.path)
	}
	return Open(paths...)
}

// Open probes the given wordlist paths in order and returns a validator
// backed by the first one that loads. With no usable path it degrades to the
// heuristic validator.
func Open(paths ...string) WordValidator {
	for _, path := range paths {
		wl, err := OpenWordlist(path, localeFor(path))
		if err != nil {
			continue
		}
		return wl
	}
	return Heuristic{}
}

func localeFor(path string) string {
	for _, wl := range defaultWordlists {
		if wl.path == path {
			return wl.locale
		}
	}
	return ""
}

// Wordlist is a dictionary-backed validator loaded from a plain-text wordlist
// with one entry per line.
type Wordlist struct {
	words  map[string]struct{}
	locale string
}

// OpenWordlist loads a wordlist file. Possessive entries ("word's") are
// stored with the suffix stripped.
func OpenWordlist(path, locale string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.ToLower(strings.TrimSpace(scanner.Text()))
		w = strings.TrimSuffix(w, "'s")
		if w != "" {
			words[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &Wordlist{words: words, locale: locale}, nil
}

// NewWordlist builds a dictionary-backed validator from an in-memory word
// set. Intended for tests and for callers with their own word sources.
func NewWordlist(locale string, words ...string) *Wordlist {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Wordlist{words: set, locale: locale}
}

// IsWord reports whether the word appears in the loaded list. Words shorter
// than two characters are always rejected.
func (w *Wordlist) IsWord(word string) bool {
	if len(word) < 2 {
		return false
	}
	_, ok := w.words[strings.ToLower(word)]
	return ok
}

// Locale returns the locale tag of the loaded list, or "" when unknown.
func (w *Wordlist) Locale() string { return w.locale }

// Len returns the number of loaded entries.
func (w *Wordlist) Len() int { return len(w.words) }

var (
	consonantRun = regexp.MustCompile(`^[bcdfghjklmnpqrstvwxyz]{5,}$`)
	vowelRun     = regexp.MustCompile(`^[aeiou]{4,}$`)
	nonAlpha     = regexp.MustCompile(`[^a-z]`)
)

// Heuristic is the fallback validator used when no wordlist is available.
// It rejects only obvious gibberish and otherwise accepts; erring toward
// acceptance keeps the engine usable without a dictionary.
type Heuristic struct{}

// IsWord rejects words shorter than two characters, runs of five or more
// consonants, runs of four or more vowels, and anything containing a
// non-alphabetic character. Everything else passes.
func (Heuristic) IsWord(word string) bool {
	if len(word) < 2 {
		return false
	}
	w := strings.ToLower(word)
	if nonAlpha.MatchString(w) {
		return false
	}
	if consonantRun.MatchString(w) || vowelRun.MatchString(w) {
		return false
	}
	return true
}

// IsDictionaryBacked reports whether the validator is backed by a real
// wordlist rather than the heuristic fallback. Checks that require an actual
// dictionary (anagram fodder realness) are gated on this.
func IsDictionaryBacked(v WordValidator) bool {
	_, ok := v.(*Wordlist)
	return ok
}
