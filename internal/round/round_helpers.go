package round

import (
	"errors"

	"wordem/internal/guess"
)

var (
	// ErrNotAWord means the word list does not know the guess. The round is unchanged.
	ErrNotAWord = errors.New("not a word")
	// ErrIncompleteGuess means the guess does not fill the slot.
	ErrIncompleteGuess = errors.New("guess does not fill the word")
	// ErrNotInProgress is returned by operations that need a running round.
	ErrNotInProgress = errors.New("round is not in progress")
	// ErrInProgress is returned by Start while the current round is still running.
	ErrInProgress = errors.New("round already in progress")
)

// Status is the state of a round's state machine.
type Status string

const (
	NotStarted Status = "notStarted"
	InProgress Status = "inProgress"
	Won        Status = "won"
	Lost       Status = "lost"
	Abandoned  Status = "abandoned"
)

// Finished reports whether s is a terminal state.
func (s Status) Finished() bool {
	return s == Won || s == Lost || s == Abandoned
}

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	}
	return string(s)
}

// Outcome describes how a round ended.
type Outcome struct {
	Status     Status
	HiddenWord string
	Attempts   []guess.Attempt
}

// Guesses is the number of guesses the round took.
func (o Outcome) Guesses() int {
	return len(o.Attempts)
}

// Listener receives round outcomes.
type Listener func(Outcome)
