package game

import (
	"context"
	"fmt"

	"wordem/internal/mode"
	"wordem/internal/round"

	"github.com/rs/zerolog/log"
)

// Session hosts the rounds of one game mode. It replaces a separate screen
// type per mode: only Rules differ between modes.
type Session struct {
	Rules       mode.Rules
	Language    mode.Language
	Words       round.WordSource
	Stats       round.Recorder
	CurrentGame *Game

	// Tallies for this session only; the statistics store keeps the totals.
	Won        int
	Lost       int
	Quit       int
	Streak     int
	BestStreak int

	unsubscribe func()
}

// NewSession creates a session for rules and starts its first round.
func NewSession(ctx context.Context, rules mode.Rules, lang mode.Language, words round.WordSource, stats round.Recorder) (*Session, error) {
	s := &Session{
		Rules:    rules,
		Language: lang,
		Words:    words,
		Stats:    stats,
	}

	// Initialize first game
	if err := s.NextGame(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// NextGame discards the finished round and starts a new one in the
// session's current language. A running round must be quit first.
func (s *Session) NextGame(ctx context.Context) error {
	if s.CurrentGame != nil && s.CurrentGame.Round.Status() == round.InProgress {
		return round.ErrInProgress
	}

	r := round.New(s.Rules, s.Words, s.Stats)
	unsubscribe := r.Subscribe(s.record)
	if err := r.Start(ctx, s.Language); err != nil {
		unsubscribe()
		return fmt.Errorf("new %s game: %w", s.Rules.Mode, err)
	}

	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = unsubscribe
	s.CurrentGame = NewGame(r)
	return nil
}

// SetLanguage changes the language used from the next round on.
func (s *Session) SetLanguage(lang mode.Language) {
	s.Language = lang
}

// QuitGame abandons the current round.
func (s *Session) QuitGame(ctx context.Context) error {
	if s.CurrentGame == nil {
		return round.ErrNotInProgress
	}
	return s.CurrentGame.Quit(ctx)
}

// IsFinished reports whether the current round is over.
func (s *Session) IsFinished() bool {
	return s.CurrentGame == nil || s.CurrentGame.IsOver()
}

// Close stops listening to the current round.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Session) record(o round.Outcome) {
	switch o.Status {
	case round.Won:
		s.Won++
		s.Streak++
		s.BestStreak = max(s.BestStreak, s.Streak)
	case round.Lost:
		s.Lost++
		s.Streak = 0
	case round.Abandoned:
		s.Quit++
		s.Streak = 0
	}
	log.Info().
		Str("mode", s.Rules.Mode.String()).
		Str("outcome", string(o.Status)).
		Int("guesses", o.Guesses()).
		Int("streak", s.Streak).
		Msg("session round recorded")
}
