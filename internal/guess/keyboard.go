package guess

import (
	"sort"

	"github.com/samber/lo"
)

// Attempt pairs a submitted word with its evaluation.
type Attempt struct {
	Word   string
	Result Result
}

// Keyboard folds a round's attempts into the best outcome seen per letter.
// A letter once seen as Exact stays Exact; Present beats Absent.
func Keyboard(attempts []Attempt) map[rune]Outcome {
	best := make(map[rune]Outcome)
	for _, a := range attempts {
		letters := []rune(Canonical(a.Word))
		for i, o := range a.Result {
			if i >= len(letters) {
				break
			}
			if prev, ok := best[letters[i]]; !ok || o > prev {
				best[letters[i]] = o
			}
		}
	}
	return best
}

// KeyboardLetters returns the letters of a Keyboard map in alphabetical order.
func KeyboardLetters(kb map[rune]Outcome) []rune {
	keys := lo.Keys(kb)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
