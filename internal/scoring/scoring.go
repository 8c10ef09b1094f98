// Package scoring computes the composite audit metrics (Ximenean score,
// difficulty level, narrative fidelity) from the auditor's check outcomes
// and the raw clue. All functions are pure.
package scoring

import (
	"regexp"
	"strings"

	"github.com/setterlab/cluewright/internal/clue"
	"github.com/setterlab/cluewright/internal/ximenes"
)

// Checks is the auditor's boolean outcome vector, one flag per check.
type Checks struct {
	Direction    bool
	DoubleDuty   bool
	Fairness     bool
	Identity     bool
	Fodder       bool
	Filler       bool
	Grammar      bool
	Narrative    bool
	Obscurity    bool
	WordValidity bool
}

var lowerWord = regexp.MustCompile(`\b[a-z]+\b`)

// XimeneanScore measures technical compliance on [0,1]. It starts at 1.0 and
// subtracts a fixed penalty per failing category; the filler penalty scales
// with clue length because a longer clue had more room to be economical. The
// result is floor-clamped at 0.
func XimeneanScore(rec clue.Record, c Checks) float64 {
	score := 1.0

	if !c.Filler {
		words := len(lowerWord.FindAllString(strings.ToLower(rec.Clue), -1))
		switch {
		case words > 10:
			score -= 0.30
		case words > 8:
			score -= 0.20
		default:
			score -= 0.15
		}
	}
	if !c.Grammar {
		score -= 0.30
	}
	if !c.Fodder {
		score -= 0.40
	}
	// Non-word fodder is the most severe Ximenean violation.
	if !c.WordValidity {
		score -= 0.50
	}
	if !c.Obscurity {
		score -= 0.20
	}
	if !c.Narrative {
		score -= 0.25
	}

	if score < 0 {
		return 0.0
	}
	return score
}

// DifficultyLevel estimates solver difficulty on the 1..5 scale, starting at
// 3 (intermediate) and adjusting by discrete steps for mechanism complexity,
// definition obliqueness, abbreviation load, clue length, and fodder part
// count.
func DifficultyLevel(rec clue.Record) int {
	difficulty := 3

	t, _ := rec.ParsedType()
	switch t {
	case clue.TypeHidden, clue.TypeHomophone:
		difficulty--
	case clue.TypeReversal, clue.TypeCharade:
		difficulty++
	}

	clueText := strings.ToLower(rec.Clue)
	definition := strings.ToLower(rec.Definition)
	if definition != "" && strings.Contains(clueText, definition) {
		difficulty--
	} else {
		difficulty++
	}

	fodder := strings.ToUpper(rec.Wordplay.Fodder)
	abbrevs := 0
	for abbr := range ximenes.PriorityAbbreviations {
		if strings.Contains(fodder, abbr) {
			abbrevs++
		}
	}
	if abbrevs >= 3 {
		difficulty++
	}

	if len(strings.Fields(rec.Clue)) <= 5 {
		difficulty--
	}

	if len(strings.Split(fodder, "+")) >= 4 {
		difficulty++
	}

	if difficulty < 1 {
		return 1
	}
	if difficulty > 5 {
		return 5
	}
	return difficulty
}

// NarrativeFidelity measures surface naturalness on [0,100]. Visible
// letter-listing is the most severe penalty; a brevity bonus rewards
// minimalist clues and a verbosity penalty punishes clunky ones. The result
// is clamped to [0,100]; the bonus can push an otherwise-perfect raw score
// above 100 before clamping.
func NarrativeFidelity(rec clue.Record, c Checks) float64 {
	fidelity := 100.0

	if !c.Narrative {
		fidelity -= 40.0
	}
	if !c.Filler {
		fidelity -= 20.0
	}
	if !c.Grammar {
		fidelity -= 15.0
	}
	if !c.DoubleDuty {
		fidelity -= 10.0
	}
	if !c.Obscurity {
		fidelity -= 10.0
	}

	words := len(strings.Fields(rec.Clue))
	if words <= 6 {
		fidelity += 5.0
	} else if words >= 12 {
		fidelity -= 10.0
	}

	if fidelity < 0 {
		return 0.0
	}
	if fidelity > 100 {
		return 100.0
	}
	return fidelity
}
