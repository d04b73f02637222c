package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Play      key.Binding
	Stats     key.Binding
	About     key.Binding
	Language  key.Binding
	Exit      key.Binding
	Interrupt key.Binding
	Back      key.Binding

	Submit    key.Binding
	Erase     key.Binding
	Reveal    key.Binding
	QuitRound key.Binding
	Next      key.Binding
	Home      key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Play:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "play")),
		Stats:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "statistics")),
		About:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Language:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		Exit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "exit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
		Back:      key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "home")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "guess")),
		Erase:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Reveal:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reveal")),
		QuitRound: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next word")),
		Home:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),

		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "quit round")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep playing")),
	}
}

// toolbar returns the bindings shown for the current screen.
func (s *LocalState) toolbar() []key.Binding {
	k := s.keys
	switch s.Screen {
	case gameScreen:
		switch {
		case s.Confirming:
			return []key.Binding{k.Confirm, k.Cancel}
		case s.Session.IsFinished():
			return []key.Binding{k.Next, k.Home, k.Interrupt}
		}
		return []key.Binding{k.Submit, k.Erase, k.Reveal, k.QuitRound, k.Interrupt}
	case statsScreen, aboutScreen:
		return []key.Binding{k.Back, k.Interrupt}
	}
	return []key.Binding{k.Play, k.Stats, k.About, k.Language, k.Exit}
}
