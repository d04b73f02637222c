package stats

import (
	"context"
	"fmt"

	"wordem/internal/mode"
)

// Counter names one statistic kept per scope.
type Counter string

const (
	Played        Counter = "played"
	Quit          Counter = "quit"
	Won           Counter = "won"
	Lost          Counter = "lost"
	WinPercentage Counter = "win_percentage"
)

// Counters returns every counter in display order.
func Counters() []Counter {
	return []Counter{Played, Quit, Won, Lost, WinPercentage}
}

// Incrementable reports whether c is a plain tally.
// WinPercentage is derived and only changes through RecomputeWinPercentage.
func (c Counter) Incrementable() bool {
	return c == Played || c == Quit || c == Won || c == Lost
}

// Title is the label shown on the statistics screen.
func (c Counter) Title() string {
	switch c {
	case Played:
		return "Games Played"
	case Quit:
		return "Games Quit"
	case Won:
		return "Games Won"
	case Lost:
		return "Games Lost"
	case WinPercentage:
		return "Win Percentage"
	}
	return string(c)
}

// Reader reads statistics.
type Reader interface {
	// Read returns the current value of a counter in a scope.
	Read(ctx context.Context, c Counter, scope mode.Scope) (int, error)
}

// Store defines the statistics capability used by rounds and the
// statistics screen. It allows swapping the persistence layer in tests.
type Store interface {
	Reader
	// Increment adds one to an incrementable counter.
	Increment(ctx context.Context, c Counter, scope mode.Scope) error
	// RecomputeWinPercentage sets WinPercentage to floor(100*won/played), or 0 before any game.
	RecomputeWinPercentage(ctx context.Context, scope mode.Scope) error
}

// WinPercentageOf is the win percentage formula shared by every Store.
func WinPercentageOf(won, played int) int {
	if played <= 0 {
		return 0
	}
	return 100 * won / played
}

func errNotIncrementable(c Counter) error {
	return fmt.Errorf("stats: counter %q cannot be incremented", c)
}
