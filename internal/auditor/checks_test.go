package auditor

import (
	"strings"
	"testing"

	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/lexicon"
)

func newTestAuditor(words lexicon.WordValidator) *Auditor {
	return New(words, nil)
}

func TestCheckDirection(t *testing.T) {
	a := newTestAuditor(nil)

	tests := map[string]struct {
		indicator string
		fodder    string
		pass      bool
	}{
		"clean indicator":             {"scrambled", "listen", true},
		"down-only indicator":         {"going up", "listen", false},
		"rising indicator":            {"rising", "listen", false},
		"blocklisted word in fodder":  {"scrambled", "cups up", true},
		"no substring false positive": {"confused", "listen", true},
		"on inside another word":      {"wondering", "listen", true},
		"bare on indicator":           {"on", "listen", false},
		"empty indicator":             {"", "listen", true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := clue.Record{
				Answer:   "SILENT",
				Type:     "Anagram",
				Wordplay: clue.Wordplay{Fodder: tc.fodder, Indicator: tc.indicator},
			}
			got := a.checkDirection(rec)
			if got.Passed != tc.pass {
				t.Errorf("checkDirection(indicator=%q) passed = %v, want %v (%s)",
					tc.indicator, got.Passed, tc.pass, got.Feedback)
			}
		})
	}
}

func TestCheckIndicatorFairness(t *testing.T) {
	a := newTestAuditor(nil)

	t.Run("verb indicator on anagram passes", func(t *testing.T) {
		rec := clue.Record{Type: "Anagram", Wordplay: clue.Wordplay{Indicator: "mixed"}}
		if got := a.checkIndicatorFairness(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("noun indicator on anagram warns", func(t *testing.T) {
		rec := clue.Record{Type: "Anagram", Wordplay: clue.Wordplay{Indicator: "salad"}}
		got := a.checkIndicatorFairness(rec)
		if got.Passed {
			t.Error("expected noun indicator to fail on anagram")
		}
		if !strings.Contains(got.Feedback, "salad") {
			t.Errorf("feedback should name the indicator: %s", got.Feedback)
		}
	})

	t.Run("noun indicator ignored for non-anagram", func(t *testing.T) {
		rec := clue.Record{Type: "Reversal", Wordplay: clue.Wordplay{Indicator: "salad"}}
		if got := a.checkIndicatorFairness(rec); !got.Passed {
			t.Errorf("expected pass for non-anagram, got: %s", got.Feedback)
		}
	})
}

func TestCheckFodderPresence(t *testing.T) {
	a := newTestAuditor(nil)

	tests := map[string]struct {
		clueText string
		fodder   string
		pass     bool
	}{
		"fodder present":          {"Confused listen to be quiet (6)", "listen", true},
		"fodder missing":          {"Confused hear to be quiet (6)", "listen", false},
		"short tokens skipped":    {"Quiet at last (6)", "at en re", true},
		"multi word all present":  {"Tales entered oddly (4)", "tales entered", true},
		"one of two missing":      {"Tales told oddly (4)", "tales entered", false},
		"empty fodder":            {"Anything at all (6)", "", true},
		"word boundary respected": {"Listener confused (6)", "listen", false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := clue.Record{Clue: tc.clueText, Wordplay: clue.Wordplay{Fodder: tc.fodder}}
			got := a.checkFodderPresence(rec)
			if got.Passed != tc.pass {
				t.Errorf("checkFodderPresence(clue=%q, fodder=%q) passed = %v, want %v (%s)",
					tc.clueText, tc.fodder, got.Passed, tc.pass, got.Feedback)
			}
		})
	}
}

func TestCheckFillerWords(t *testing.T) {
	a := newTestAuditor(nil)

	base := func(clueText string) clue.Record {
		return clue.Record{
			Clue:       clueText,
			Definition: "be quiet",
			Wordplay:   clue.Wordplay{Fodder: "listen", Indicator: "confused"},
		}
	}

	t.Run("economical clue passes", func(t *testing.T) {
		got := a.checkFillerWords(base("Confused listen to be quiet (6)"))
		if !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("true filler fails", func(t *testing.T) {
		got := a.checkFillerWords(base("Confused listen perhaps maybe be quiet (6)"))
		if got.Passed {
			t.Error("expected filler words to fail")
		}
		if !strings.Contains(got.Feedback, "maybe") {
			t.Errorf("feedback should name the fillers: %s", got.Feedback)
		}
	})

	t.Run("three connectors fail", func(t *testing.T) {
		got := a.checkFillerWords(base("Confused listen is for to be quiet (6)"))
		if got.Passed {
			t.Error("expected three connectors to fail")
		}
	})

	t.Run("two connectors pass", func(t *testing.T) {
		got := a.checkFillerWords(base("Confused listen is to be quiet (6)"))
		if !got.Passed {
			t.Errorf("expected two connectors to pass, got: %s", got.Feedback)
		}
	})
}

func TestCheckIndicatorGrammar(t *testing.T) {
	a := newTestAuditor(nil)

	tests := map[string]struct {
		clueText  string
		indicator string
		fodder    string
		clueType  string
		pass      bool
	}{
		"imperative indicator": {
			"Mix listen to be quiet (6)", "mix", "listen", "Anagram", true},
		"participle before fodder": {
			"Confused listen to be quiet (6)", "confused", "listen", "Anagram", true},
		"participle after fodder on anagram": {
			"Listen confused to be quiet (6)", "confused", "listen", "Anagram", false},
		"participle after operand on reversal": {
			"Star returned for vermin (4)", "returned", "star", "Reversal", true},
		"exception word red": {
			"Listen red to be quiet (6)", "red", "listen", "Anagram", true},
		"missing fodder position": {
			"Hear mangled to be quiet (6)", "mangled", "listen", "Anagram", true},
		"empty indicator": {
			"Confused listen to be quiet (6)", "", "listen", "Anagram", true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec := clue.Record{
				Clue: tc.clueText,
				Type: tc.clueType,
				Wordplay: clue.Wordplay{
					Fodder:    tc.fodder,
					Indicator: tc.indicator,
				},
			}
			got := a.checkIndicatorGrammar(rec)
			if got.Passed != tc.pass {
				t.Errorf("checkIndicatorGrammar(%q) passed = %v, want %v (%s)",
					name, got.Passed, tc.pass, got.Feedback)
			}
		})
	}
}

func TestCheckIdentityConstraint(t *testing.T) {
	a := newTestAuditor(nil)

	t.Run("clean fodder passes", func(t *testing.T) {
		rec := clue.Record{Answer: "SILENT", Type: "Anagram", Wordplay: clue.Wordplay{Fodder: "listen"}}
		if got := a.checkIdentityConstraint(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("answer in fodder fails", func(t *testing.T) {
		rec := clue.Record{Answer: "SILENT", Type: "Anagram", Wordplay: clue.Wordplay{Fodder: "silent night"}}
		if got := a.checkIdentityConstraint(rec); got.Passed {
			t.Error("expected identity violation")
		}
	})

	t.Run("inflection in fodder fails", func(t *testing.T) {
		rec := clue.Record{Answer: "PART", Type: "Anagram", Wordplay: clue.Wordplay{Fodder: "parted ways"}}
		if got := a.checkIdentityConstraint(rec); got.Passed {
			t.Error("expected inflection violation")
		}
	})

	t.Run("container fodder from outer and inner", func(t *testing.T) {
		rec := clue.Record{Answer: "PAINT", Type: "Container", Wordplay: clue.Wordplay{Outer: "pat", Inner: "in"}}
		if got := a.checkIdentityConstraint(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("empty fodder passes", func(t *testing.T) {
		rec := clue.Record{Answer: "SILENT", Type: "Anagram"}
		if got := a.checkIdentityConstraint(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})
}

func TestCheckNarrativeIntegrity(t *testing.T) {
	a := newTestAuditor(nil)

	t.Run("natural surface passes", func(t *testing.T) {
		rec := clue.Record{Clue: "Confused listen to be quiet (6)", Type: "Anagram"}
		if got := a.checkNarrativeIntegrity(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("literal letter listing fails", func(t *testing.T) {
		rec := clue.Record{Clue: "Entry with en, treat, y mixed (5)", Type: "Anagram"}
		got := a.checkNarrativeIntegrity(rec)
		if got.Passed {
			t.Error("expected letter listing to fail")
		}
	})

	t.Run("comma separated single letters fail", func(t *testing.T) {
		rec := clue.Record{Clue: "Take a, b and mix (2)", Type: "Anagram"}
		got := a.checkNarrativeIntegrity(rec)
		if got.Passed {
			t.Error("expected single-letter listing to fail")
		}
	})

	t.Run("gibberish anagram fodder fails with dictionary", func(t *testing.T) {
		words := lexicon.NewWordlist("en_GB", "listen", "confused", "quiet")
		dict := newTestAuditor(words)
		rec := clue.Record{
			Clue:     "Confused istlen to be quiet (6)",
			Type:     "Anagram",
			Wordplay: clue.Wordplay{Fodder: "istlen"},
		}
		got := dict.checkNarrativeIntegrity(rec)
		if got.Passed {
			t.Error("expected gibberish fodder to fail with a dictionary loaded")
		}
	})

	t.Run("gibberish fodder tolerated without dictionary", func(t *testing.T) {
		rec := clue.Record{
			Clue:     "Confused istlen to be quiet (6)",
			Type:     "Anagram",
			Wordplay: clue.Wordplay{Fodder: "istlen"},
		}
		if got := a.checkNarrativeIntegrity(rec); !got.Passed {
			t.Errorf("heuristic validator must not gate fodder realness: %s", got.Feedback)
		}
	})
}

func TestCheckObscurity(t *testing.T) {
	t.Run("priority abbreviations pass silently", func(t *testing.T) {
		a := newTestAuditor(nil)
		rec := clue.Record{Type: "Charade", Wordplay: clue.Wordplay{Fodder: "DR + AU"}}
		got := a.checkObscurity(rec)
		if !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
		if strings.Contains(got.Feedback, "WARN") {
			t.Errorf("priority abbreviations must not warn: %s", got.Feedback)
		}
	})

	t.Run("extended abbreviation warns but passes", func(t *testing.T) {
		a := newTestAuditor(nil)
		rec := clue.Record{Type: "Charade", Wordplay: clue.Wordplay{Fodder: "EN + DIT"}}
		got := a.checkObscurity(rec)
		if !got.Passed {
			t.Errorf("extended tier must pass, got: %s", got.Feedback)
		}
		if !strings.Contains(got.Feedback, "extended") {
			t.Errorf("feedback should tag the extended tier: %s", got.Feedback)
		}
	})

	t.Run("reversal gibberish fodder hard fails", func(t *testing.T) {
		words := lexicon.NewWordlist("en_GB", "star", "rats")
		a := newTestAuditor(words)
		rec := clue.Record{Type: "Reversal", Wordplay: clue.Wordplay{Fodder: "zzqy"}}
		got := a.checkObscurity(rec)
		if got.Passed {
			t.Error("expected non-word reversal fodder to fail")
		}
	})

	t.Run("reversal real fodder passes", func(t *testing.T) {
		words := lexicon.NewWordlist("en_GB", "star", "rats")
		a := newTestAuditor(words)
		rec := clue.Record{Type: "Reversal", Wordplay: clue.Wordplay{Fodder: "star"}}
		if got := a.checkObscurity(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("non-word in mechanism fails", func(t *testing.T) {
		words := lexicon.NewWordlist("en_GB", "listen")
		a := newTestAuditor(words)
		rec := clue.Record{
			Type:     "Anagram",
			Wordplay: clue.Wordplay{Fodder: "listen", Mechanism: "reverse of xyzzq"},
		}
		got := a.checkObscurity(rec)
		if got.Passed {
			t.Error("expected mechanism non-word to fail")
		}
	})
}

func TestCheckWordValidity(t *testing.T) {
	words := lexicon.NewWordlist("en_GB", "listen", "star", "pat")
	a := newTestAuditor(words)

	t.Run("real fodder passes", func(t *testing.T) {
		rec := clue.Record{Type: "Anagram", Wordplay: clue.Wordplay{Fodder: "listen"}}
		if got := a.checkWordValidity(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})

	t.Run("gibberish fodder fails", func(t *testing.T) {
		rec := clue.Record{Type: "Anagram", Wordplay: clue.Wordplay{Fodder: "istlen"}}
		if got := a.checkWordValidity(rec); got.Passed {
			t.Error("expected non-dictionary fodder to fail")
		}
	})

	t.Run("abbreviations excluded from lookup", func(t *testing.T) {
		rec := clue.Record{Type: "Charade", Wordplay: clue.Wordplay{Fodder: "BSC listen"}}
		if got := a.checkWordValidity(rec); !got.Passed {
			t.Errorf("known abbreviations must be skipped: %s", got.Feedback)
		}
	})

	t.Run("reversal guidance in feedback", func(t *testing.T) {
		rec := clue.Record{Type: "Reversal", Wordplay: clue.Wordplay{Fodder: "xyzzq"}}
		got := a.checkWordValidity(rec)
		if got.Passed {
			t.Fatal("expected failure")
		}
		if !strings.Contains(got.Feedback, "reverse") {
			t.Errorf("reversal failures should carry reversal guidance: %s", got.Feedback)
		}
	})

	t.Run("empty fodder passes", func(t *testing.T) {
		rec := clue.Record{Type: "Anagram"}
		if got := a.checkWordValidity(rec); !got.Passed {
			t.Errorf("expected pass, got: %s", got.Feedback)
		}
	})
}
