package main

import (
	"context"
	"errors"

	"wordem/internal/config"
	"wordem/internal/game"
	"wordem/internal/mode"
	"wordem/internal/round"
	"wordem/internal/stats"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type screen int

const (
	homeScreen screen = iota
	gameScreen
	statsScreen
	aboutScreen
)

// LocalState is the bubbletea model. Store calls run synchronously in
// Update; SQLite answers well within a frame.
type LocalState struct {
	Config   *config.Config
	Words    round.WordSource
	Stats    stats.Store
	Language mode.Language

	Screen     screen
	Session    *game.Session // nil outside the game screen
	Confirming bool          // "Quitting?" dialog is open
	Reports    []stats.Report
	Err        error

	ctx  context.Context
	keys keyMap
	help help.Model
}

func initialModel(ctx context.Context, cfg *config.Config, words round.WordSource, st stats.Store) *LocalState {
	return &LocalState{
		Config:   cfg,
		Words:    words,
		Stats:    st,
		Language: cfg.Language,
		ctx:      ctx,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

func (s *LocalState) Init() tea.Cmd {
	return nil
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Interrupt) {
			s.shutdown()
			return s, tea.Quit
		}
		switch s.Screen {
		case homeScreen:
			return s.updateHome(msg)
		case gameScreen:
			s.updateGame(msg)
		case statsScreen, aboutScreen:
			if key.Matches(msg, s.keys.Back) {
				s.Screen = homeScreen
			}
		}
	}
	return s, nil
}

func (s *LocalState) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s.Err = nil
	switch {
	case key.Matches(msg, s.keys.Exit):
		s.shutdown()
		return s, tea.Quit
	case key.Matches(msg, s.keys.Play):
		if m, ok := modeForKey(msg.String()); ok {
			s.startMode(m)
		}
	case key.Matches(msg, s.keys.Stats):
		s.showStats()
	case key.Matches(msg, s.keys.About):
		s.Screen = aboutScreen
	case key.Matches(msg, s.keys.Language):
		s.Language = s.Language.Next()
		log.Debug().Str("language", s.Language.Code()).Msg("language changed")
	}
	return s, nil
}

func (s *LocalState) updateGame(msg tea.KeyMsg) {
	g := s.Session.CurrentGame

	if s.Confirming {
		switch {
		case key.Matches(msg, s.keys.Confirm):
			s.Confirming = false
			if err := s.Session.QuitGame(s.ctx); err != nil && !errors.Is(err, round.ErrNotInProgress) {
				// The round is abandoned either way; keep the error for the home screen.
				s.Err = err
			}
			s.leaveGame()
		case key.Matches(msg, s.keys.Cancel):
			s.Confirming = false
		}
		return
	}

	if g.IsOver() {
		switch {
		case key.Matches(msg, s.keys.Next):
			s.Session.SetLanguage(s.Language)
			if err := s.Session.NextGame(s.ctx); err != nil {
				g.Err = err
			}
		case key.Matches(msg, s.keys.Home):
			s.leaveGame()
		}
		return
	}

	if game.IsQuitRequested(msg.String()) {
		s.Confirming = true
		return
	}
	g.HandleKeyPress(s.ctx, msg.String())
}

// startMode opens the game screen for m. On failure the home screen shows
// the error.
func (s *LocalState) startMode(m mode.Mode) {
	sess, err := game.NewSession(s.ctx, s.Config.Rules(m), s.Language, s.Words, s.Stats)
	if err != nil {
		log.Error().Err(err).Str("mode", m.String()).Msg("could not start game")
		s.Err = err
		return
	}
	s.Session = sess
	s.Screen = gameScreen
}

func (s *LocalState) leaveGame() {
	if s.Session != nil {
		s.Session.Close()
		s.Session = nil
	}
	s.Confirming = false
	s.Screen = homeScreen
}

func (s *LocalState) showStats() {
	reports, err := stats.LoadReports(s.ctx, s.Stats)
	if err != nil {
		log.Error().Err(err).Msg("could not load statistics")
		s.Err = err
		return
	}
	s.Reports = reports
	s.Screen = statsScreen
}

// shutdown closes the session. A round still running when the program
// exits is not counted.
func (s *LocalState) shutdown() {
	if s.Session != nil && !s.Session.IsFinished() {
		log.Info().Str("mode", s.Session.Rules.Mode.String()).Msg("exiting with a round in progress")
	}
	s.leaveGame()
}

// modeForKey maps the home screen keys 1-5 to the modes, shortest words first.
func modeForKey(k string) (mode.Mode, bool) {
	modes := mode.All()
	if len(k) != 1 || k[0] < '1' || int(k[0]-'1') >= len(modes) {
		return 0, false
	}
	return modes[k[0]-'1'], true
}
