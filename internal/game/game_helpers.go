package game

import (
	"unicode"
	"unicode/utf8"

	"wordem/internal/guess"
)

func IsQuitRequested(key string) bool {
	return key == "esc"
}

func IsRevealRequested(key string) bool {
	return key == "ctrl+r"
}

func IsSubmit(key string) bool {
	return key == "enter"
}

func IsBackspace(key string) bool {
	return key == "backspace"
}

// Letter returns the upper-cased letter of a single-letter key.
func Letter(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return unicode.ToUpper(r), true
}

// RowState tells the UI how to paint a board row.
type RowState int

const (
	RowEmpty RowState = iota
	RowSubmitted
	RowTyping
	RowInvalid // enter pressed on an unfilled slot, or not a word
)

// Row is one line of the board.
type Row struct {
	Letters []rune
	Result  guess.Result // only for RowSubmitted
	State   RowState
}

// Board returns GuessLimit rows: submitted guesses, the typing slot while the
// round is running, then empty rows.
func (g *Game) Board() []Row {
	rules := g.Round.Rules()
	rows := make([]Row, 0, rules.GuessLimit)

	for _, a := range g.Round.Attempts() {
		rows = append(rows, Row{Letters: []rune(a.Word), Result: a.Result, State: RowSubmitted})
	}

	if !g.IsOver() && len(rows) < rules.GuessLimit {
		st := RowTyping
		if g.Invalid || g.NotAWord {
			st = RowInvalid
		}
		rows = append(rows, Row{Letters: append([]rune(nil), g.Input...), State: st})
	}

	for len(rows) < rules.GuessLimit {
		rows = append(rows, Row{State: RowEmpty})
	}
	return rows
}
