package mode

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mode is a game mode. Each mode fixes the word length; the guess limit
// comes from Rules.
type Mode int

const (
	Nursery Mode = iota
	Elementary
	Classic
	Advanced
	Ludicrous
)

// DefaultGuessLimit is used when no per-mode limit is configured.
const DefaultGuessLimit = 6

var names = map[Mode]string{
	Nursery:    "Nursery",
	Elementary: "Elementary",
	Classic:    "Classic",
	Advanced:   "Advanced",
	Ludicrous:  "Ludicrous",
}

// All returns every mode, shortest words first.
func All() []Mode {
	return []Mode{Nursery, Elementary, Classic, Advanced, Ludicrous}
}

func (m Mode) String() string {
	if n, ok := names[m]; ok {
		return n
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// WordLength is 3 for Nursery up to 7 for Ludicrous.
func (m Mode) WordLength() int {
	return int(m) + 3
}

// Valid reports whether m is one of the five modes.
func (m Mode) Valid() bool {
	_, ok := names[m]
	return ok
}

// Scope is the statistics scope of the mode.
func (m Mode) Scope() Scope {
	return Scope(strings.ToLower(m.String()))
}

// Parse accepts a mode name (case-insensitive) or its word length.
func Parse(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for _, m := range All() {
		if strings.EqualFold(s, m.String()) || s == fmt.Sprint(m.WordLength()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown game mode %q (use one of %s)", s,
		strings.Join(lo.Map(All(), func(m Mode, _ int) string { return strings.ToLower(m.String()) }), ", "))
}

// Scope names a statistics table: the global aggregate or a single mode.
type Scope string

// Global aggregates statistics over every mode.
const Global Scope = "global"

// Scopes returns Global followed by every mode scope.
func Scopes() []Scope {
	return append([]Scope{Global}, lo.Map(All(), func(m Mode, _ int) Scope { return m.Scope() })...)
}

func (s Scope) String() string { return string(s) }

// Title is the display name of the scope.
func (s Scope) Title() string {
	if s == Global {
		return "Global"
	}
	for _, m := range All() {
		if m.Scope() == s {
			return m.String()
		}
	}
	return string(s)
}

// Rules is everything that differs between game modes.
type Rules struct {
	Mode       Mode
	WordLength int
	GuessLimit int
}

// DefaultRules returns the rules of m with the default guess limit.
func DefaultRules(m Mode) Rules {
	return NewRules(m, DefaultGuessLimit)
}

// NewRules returns the rules of m with a custom guess limit.
// Limits below 1 fall back to DefaultGuessLimit.
func NewRules(m Mode, guessLimit int) Rules {
	if guessLimit < 1 {
		guessLimit = DefaultGuessLimit
	}
	return Rules{Mode: m, WordLength: m.WordLength(), GuessLimit: guessLimit}
}
