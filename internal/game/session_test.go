package game

import (
	"context"
	"errors"
	"testing"

	"wordem/internal/mode"
	"wordem/internal/round"
	"wordem/internal/words"
)

func TestSession_Init(t *testing.T) {
	w := &MockWords{Hidden: []string{"crane"}}
	sess, err := NewSession(context.Background(), mode.DefaultRules(mode.Classic), mode.English, w, &MockStats{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if sess.CurrentGame == nil {
		t.Fatal("CurrentGame should be initialized")
	}
	if sess.CurrentGame.Round.HiddenWord() != "CRANE" {
		t.Errorf("Expected hidden word CRANE, got %s", sess.CurrentGame.Round.HiddenWord())
	}
	if sess.CurrentGame.Round.Rules().GuessLimit != 6 {
		t.Errorf("Expected 6 guesses, got %d", sess.CurrentGame.Round.Rules().GuessLimit)
	}
}

func TestSession_InitFailure(t *testing.T) {
	w := &MockWords{Err: words.ErrNotFound}
	_, err := NewSession(context.Background(), mode.DefaultRules(mode.Ludicrous), mode.Spanish, w, &MockStats{})
	if !errors.Is(err, words.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSession_Progression(t *testing.T) {
	w := &MockWords{Hidden: []string{"cat", "dog", "sun"}, Known: map[string]bool{"CAT": true, "DOG": true, "BOX": true}}
	st := &MockStats{}
	sess, _ := NewSession(context.Background(), mode.NewRules(mode.Nursery, 1), mode.English, w, st)

	// A running round must be quit before the next one
	if err := sess.NextGame(context.Background()); !errors.Is(err, round.ErrInProgress) {
		t.Errorf("Expected ErrInProgress, got %v", err)
	}

	// Win game 1
	typeWord(sess.CurrentGame, "cat")
	sess.CurrentGame.HandleKeyPress(context.Background(), "enter")
	if !sess.IsFinished() {
		t.Fatal("Game 1 should be finished")
	}

	// Lose game 2 with its only guess
	if err := sess.NextGame(context.Background()); err != nil {
		t.Fatalf("NextGame failed: %v", err)
	}
	typeWord(sess.CurrentGame, "box")
	sess.CurrentGame.HandleKeyPress(context.Background(), "enter")
	if sess.CurrentGame.Round.Status() != round.Lost {
		t.Fatalf("Game 2 should be lost, got %s", sess.CurrentGame.Round.Status())
	}

	// Quit game 3
	sess.SetLanguage(mode.Spanish)
	if err := sess.NextGame(context.Background()); err != nil {
		t.Fatalf("NextGame failed: %v", err)
	}
	if sess.CurrentGame.Round.Language() != mode.Spanish {
		t.Error("New round should use the new language")
	}
	if err := sess.QuitGame(context.Background()); err != nil {
		t.Fatalf("QuitGame failed: %v", err)
	}

	if sess.Won != 1 || sess.Lost != 1 || sess.Quit != 1 {
		t.Errorf("Unexpected tallies: won %d lost %d quit %d", sess.Won, sess.Lost, sess.Quit)
	}
	if sess.Streak != 0 || sess.BestStreak != 1 {
		t.Errorf("Unexpected streaks: %d best %d", sess.Streak, sess.BestStreak)
	}
}

func TestSession_OldRoundsAreUnsubscribed(t *testing.T) {
	w := &MockWords{Hidden: []string{"cat", "dog"}, Known: map[string]bool{"CAT": true}}
	sess, _ := NewSession(context.Background(), mode.NewRules(mode.Nursery, 2), mode.English, w, &MockStats{})

	first := sess.CurrentGame
	typeWord(first, "cat")
	first.HandleKeyPress(context.Background(), "enter")
	if err := sess.NextGame(context.Background()); err != nil {
		t.Fatalf("NextGame failed: %v", err)
	}

	// Restarting the discarded round must not touch the session tallies.
	w.Hidden = []string{"cat"}
	if err := first.Round.Start(context.Background(), mode.English); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	typeWord(first, "cat")
	first.HandleKeyPress(context.Background(), "enter")

	if sess.Won != 1 {
		t.Errorf("Expected 1 win, got %d", sess.Won)
	}
}

func TestSession_FailedNextGameKeepsCurrent(t *testing.T) {
	w := &MockWords{Hidden: []string{"cat"}}
	sess, _ := NewSession(context.Background(), mode.NewRules(mode.Nursery, 1), mode.English, w, &MockStats{})
	if err := sess.QuitGame(context.Background()); err != nil {
		t.Fatalf("QuitGame failed: %v", err)
	}

	current := sess.CurrentGame
	if err := sess.NextGame(context.Background()); err == nil {
		t.Fatal("Expected error when no hidden word is left")
	}
	if sess.CurrentGame != current {
		t.Error("CurrentGame should be unchanged after a failed NextGame")
	}
}
