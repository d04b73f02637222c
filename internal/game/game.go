package game

import (
	"context"
	"errors"

	"wordem/internal/guess"
	"wordem/internal/round"
)

// Game is the typed-input layer over a Round, independent of the UI.
// Letters fill the current guess slot; enter submits it.
type Game struct {
	Round    *round.Round
	Input    []rune
	Invalid  bool  // enter was pressed before the slot was full
	NotAWord bool  // the last submitted word is not in the word list
	Revealed bool  // the hidden word was revealed with the reveal key
	Err      error // last store failure, shown on the status line
}

// NewGame wraps a started round.
func NewGame(r *round.Round) *Game {
	return &Game{Round: r}
}

// HandleKeyPress processes a key press and updates the game state.
// Quit requests are not handled here; the shell asks for confirmation first.
func (g *Game) HandleKeyPress(ctx context.Context, key string) {
	// If game is already over, ignore input
	if g.IsOver() {
		return
	}

	switch {
	case IsRevealRequested(key):
		g.Revealed = true
	case IsBackspace(key):
		g.Backspace()
	case IsSubmit(key):
		_ = g.Submit(ctx)
	default:
		if r, ok := Letter(key); ok {
			g.Type(r)
		}
	}
}

// Type appends a letter to the current slot if there is room.
func (g *Game) Type(r rune) {
	if g.IsOver() || len(g.Input) >= g.Round.Rules().WordLength {
		return
	}
	g.clearFlags()
	g.Input = append(g.Input, r)
}

// Backspace removes the last typed letter.
func (g *Game) Backspace() {
	if g.IsOver() || len(g.Input) == 0 {
		return
	}
	g.clearFlags()
	g.Input = g.Input[:len(g.Input)-1]
}

// Submit sends the current slot to the round. An unfilled slot is flagged
// invalid, an unknown word sets NotAWord; both keep the typed letters.
func (g *Game) Submit(ctx context.Context) error {
	if len(g.Input) < g.Round.Rules().WordLength {
		g.Invalid = true
		return round.ErrIncompleteGuess
	}

	before := len(g.Round.Attempts())
	_, err := g.Round.SubmitGuess(ctx, string(g.Input))
	if len(g.Round.Attempts()) == before {
		// Rejected; keep the letters so the player can edit and retry.
		switch {
		case errors.Is(err, round.ErrNotAWord):
			g.NotAWord = true
		case errors.Is(err, round.ErrIncompleteGuess):
			g.Invalid = true
		case err != nil:
			g.Err = err
		}
		return err
	}

	// The guess counted, even if recording statistics failed afterwards.
	g.Input = nil
	g.Err = err
	return err
}

// Quit abandons the round.
func (g *Game) Quit(ctx context.Context) error {
	err := g.Round.Quit(ctx)
	if err != nil && !errors.Is(err, round.ErrNotInProgress) {
		g.Err = err
	}
	return err
}

// IsOver reports whether the round reached a terminal state.
func (g *Game) IsOver() bool {
	return g.Round.Status().Finished()
}

// Won reports whether the round was won.
func (g *Game) Won() bool {
	return g.Round.Status() == round.Won
}

// ShowHiddenWord reports whether the UI may display the hidden word.
func (g *Game) ShowHiddenWord() bool {
	return g.Revealed || g.IsOver()
}

// Keyboard summarizes the letters guessed so far.
func (g *Game) Keyboard() map[rune]guess.Outcome {
	return guess.Keyboard(g.Round.Attempts())
}

func (g *Game) clearFlags() {
	g.Invalid = false
	g.NotAWord = false
}
