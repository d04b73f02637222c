package main

import (
	"errors"
	"fmt"
	"strings"

	"wordem/internal/game"
	"wordem/internal/guess"
	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

var (
	exactColor   = lipgloss.Color("#6AAA64")
	presentColor = lipgloss.Color("#C9B458")
	absentColor  = lipgloss.Color("#787C7E")
	invalidColor = lipgloss.Color("#F6CDCD")

	tileStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF"))
	typingStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Reverse(true)
	emptyStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(absentColor)
	invalidStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(invalidColor).Foreground(lipgloss.Color("#000000"))

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(exactColor)
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boardStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.ThickBorder())
	dialog     = lipgloss.NewStyle().Padding(1, 3).Border(lipgloss.DoubleBorder()).BorderForeground(presentColor)
)

func outcomeColor(o guess.Outcome) lipgloss.Color {
	switch o {
	case guess.Exact:
		return exactColor
	case guess.Present:
		return presentColor
	}
	return absentColor
}

func (s *LocalState) View() string {
	var body string
	switch s.Screen {
	case gameScreen:
		body = s.gameView()
	case statsScreen:
		body = s.statsView()
	case aboutScreen:
		body = aboutView()
	default:
		body = s.homeView()
	}
	if s.Err != nil {
		body += "\n\n" + redStyle.Render(errorMessage(s.Err))
	}
	return body + "\n\n" + s.help.ShortHelpView(s.toolbar()) + "\n"
}

func (s *LocalState) header(subtitle string) string {
	return titleStyle.Render("WordEm") + "  " + subtitle + "  " + lipgloss.NewStyle().Faint(true).Render(s.Language.String())
}

func (s *LocalState) homeView() string {
	var b strings.Builder
	b.WriteString(s.header("Home") + "\n\n")
	for i, m := range mode.All() {
		r := s.Config.Rules(m)
		fmt.Fprintf(&b, "  %d  %-11s %d letters, %d guesses\n", i+1, m, r.WordLength, r.GuessLimit)
	}
	return b.String()
}

func (s *LocalState) gameView() string {
	g := s.Session.CurrentGame
	rules := g.Round.Rules()

	var b strings.Builder
	b.WriteString(s.header(rules.Mode.String()) + "\n")

	rows := lo.Map(g.Board(), func(r game.Row, _ int) string { return renderRow(r, rules.WordLength) })
	b.WriteString(boardStyle.Render(strings.Join(rows, "\n")) + "\n")
	b.WriteString(renderKeyboard(g.Keyboard()) + "\n\n")

	switch {
	case g.Won():
		b.WriteString(greenStyle.Render(fmt.Sprintf("You got it in %d!", len(g.Round.Attempts()))))
	case g.IsOver():
		b.WriteString(redStyle.Render("The word was " + g.Round.HiddenWord()))
	case g.NotAWord:
		b.WriteString(redStyle.Render("That's not a word!"))
	case g.Invalid:
		b.WriteString(redStyle.Render(fmt.Sprintf("Fill all %d letters first.", rules.WordLength)))
	case g.ShowHiddenWord():
		b.WriteString("Hidden word: " + g.Round.HiddenWord())
	default:
		fmt.Fprintf(&b, "%d of %d guesses left", g.Round.Remaining(), rules.GuessLimit)
	}
	if g.Err != nil {
		b.WriteString("\n" + redStyle.Render(errorMessage(g.Err)))
	}

	sess := s.Session
	fmt.Fprintf(&b, "\nThis session: %d won, %d lost, %d quit | streak %d (best %d)",
		sess.Won, sess.Lost, sess.Quit, sess.Streak, sess.BestStreak)

	if s.Confirming {
		b.WriteString("\n\n" + dialog.Render("Quitting?\nThe round counts as quit."))
	}
	return b.String()
}

func renderRow(row game.Row, length int) string {
	tiles := make([]string, length)
	for i := range tiles {
		letter := "_"
		if i < len(row.Letters) {
			letter = string(row.Letters[i])
		}
		switch row.State {
		case game.RowSubmitted:
			tiles[i] = tileStyle.Background(outcomeColor(row.Result[i])).Render(letter)
		case game.RowInvalid:
			tiles[i] = invalidStyle.Render(letter)
		case game.RowTyping:
			if i == len(row.Letters) {
				tiles[i] = typingStyle.Render(letter)
			} else {
				tiles[i] = lipgloss.NewStyle().Bold(true).Padding(0, 1).Render(letter)
			}
		default:
			tiles[i] = emptyStyle.Render(letter)
		}
	}
	return strings.Join(tiles, "")
}

func renderKeyboard(kb map[rune]guess.Outcome) string {
	letters := guess.KeyboardLetters(kb)
	if len(letters) == 0 {
		return ""
	}
	return strings.Join(lo.Map(letters, func(r rune, _ int) string {
		return lipgloss.NewStyle().Foreground(outcomeColor(kb[r])).Render(string(r))
	}), " ")
}

func (s *LocalState) statsView() string {
	headers := append([]string{""}, lo.Map(s.Reports, func(r stats.Report, _ int) string { return r.Scope.Title() })...)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(absentColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})

	for i, c := range stats.Counters() {
		row := []string{c.Title()}
		for _, r := range s.Reports {
			row = append(row, r.Rows()[i][1])
		}
		t.Row(row...)
	}

	out := s.header("Statistics") + "\n" + t.String()
	if best, ok := stats.MostPlayed(s.Reports); ok {
		out += fmt.Sprintf("\nMost played: %s (%d games)", best.Scope.Title(), best.Get(stats.Played))
	}
	return out
}

func aboutView() string {
	return titleStyle.Render("WordEm") + "  About\n\n" +
		"WordEm is a word guessing game in the spirit of Wordle.\n" +
		"Guess the hidden word; after each guess the tiles show\n" +
		greenStyle.Render("green") + " for a letter in the right spot, " +
		lipgloss.NewStyle().Foreground(presentColor).Render("yellow") + " for a letter\n" +
		"elsewhere in the word and gray for a letter not in it.\n\n" +
		"Five modes from Nursery (3 letters) to Ludicrous (7 letters),\n" +
		"word lists in English and Spanish."
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, words.ErrNotFound):
		return "No words of that length in this language: " + err.Error()
	case errors.Is(err, store.ErrUnavailable):
		return "Storage problem: " + err.Error()
	}
	return err.Error()
}
