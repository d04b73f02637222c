package guess

import (
	"strings"

	"github.com/samber/lo"
)

// Outcome classifies a single letter position of a guess.
type Outcome int

const (
	Absent Outcome = iota
	Present
	Exact
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Symbol is the compact one-character form used in logs and tests.
func (o Outcome) Symbol() rune {
	switch o {
	case Exact:
		return '='
	case Present:
		return '+'
	default:
		return '.'
	}
}

// Result holds one Outcome per letter position of a guess.
type Result []Outcome

// Solved reports whether every position is an exact match.
func (r Result) Solved() bool {
	return len(r) > 0 && lo.EveryBy(r, func(o Outcome) bool { return o == Exact })
}

// String renders the result with Outcome.Symbol, e.g. ".=++=".
func (r Result) String() string {
	var b strings.Builder
	for _, o := range r {
		b.WriteRune(o.Symbol())
	}
	return b.String()
}

// ParseResult is the inverse of Result.String.
func ParseResult(s string) Result {
	return lo.Map([]rune(s), func(r rune, _ int) Outcome {
		switch r {
		case '=':
			return Exact
		case '+':
			return Present
		default:
			return Absent
		}
	})
}
