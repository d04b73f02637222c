package guess

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput is returned when the hidden and guessed words differ in length.
// Callers enforce the word length before evaluating, so hitting it is a bug.
var ErrInvalidInput = errors.New("guess: words differ in length")

// consumed marks a letter slot that can no longer be matched.
const consumed rune = 0

// Canonical returns the form words are compared in.
func Canonical(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Evaluate classifies every letter of guessed against hidden.
//
// Exact matches are locked in across the whole word first. Remaining letters
// are then matched left to right against the leftmost unconsumed occurrence
// in hidden, so a letter is never credited more often than it appears there.
func Evaluate(hidden, guessed string) (Result, error) {
	h := []rune(Canonical(hidden))
	g := []rune(Canonical(guessed))
	if len(h) != len(g) {
		return nil, fmt.Errorf("%w: hidden has %d letters, guess has %d", ErrInvalidInput, len(h), len(g))
	}

	res := make(Result, len(g))

	// Exact pass
	for i := range g {
		if g[i] == h[i] {
			res[i] = Exact
			h[i], g[i] = consumed, consumed
		}
	}

	// Present pass
	for i := range g {
		if res[i] == Exact {
			continue
		}
		j := indexRune(h, g[i])
		if j < 0 {
			res[i] = Absent
			continue
		}
		res[i] = Present
		h[j], g[i] = consumed, consumed
	}

	return res, nil
}

// Length is the word length Evaluate measures, in letters.
func Length(word string) int {
	return utf8.RuneCountInString(strings.TrimSpace(word))
}

func indexRune(letters []rune, r rune) int {
	for i, l := range letters {
		if l != consumed && l == r {
			return i
		}
	}
	return -1
}
