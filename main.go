package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"wordem/internal/config"
	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type modeFlag struct {
	mode mode.Mode
	set  bool
}

func (m *modeFlag) String() string {
	if !m.set {
		return ""
	}
	return m.mode.String()
}

func (m *modeFlag) Set(s string) error {
	v, err := mode.Parse(s)
	if err != nil {
		return err
	}
	m.mode, m.set = v, true
	return nil
}

type languageFlag struct {
	lang mode.Language
	set  bool
}

func (l *languageFlag) String() string {
	if !l.set {
		return ""
	}
	return l.lang.Code()
}

func (l *languageFlag) Set(s string) error {
	v, err := mode.ParseLanguage(s)
	if err != nil {
		return err
	}
	l.lang, l.set = v, true
	return nil
}

type strictIntFlag int

func (i *strictIntFlag) String() string {
	return fmt.Sprint(int(*i))
}

func (i *strictIntFlag) Set(s string) error {
	if s == "true" {
		return fmt.Errorf("value required (format: -flag=value)")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 1 {
		return fmt.Errorf("must be at least 1")
	}
	*i = strictIntFlag(v)
	return nil
}

func (i *strictIntFlag) IsBoolFlag() bool { return true }

func main() {
	var dbPath string
	var startMode modeFlag
	var lang languageFlag
	var guesses strictIntFlag

	flag.StringVar(&dbPath, "db", "", "Path to the SQLite database (default from "+config.EnvDB+")")

	flag.Var(&lang, "lang", "Word list language: en or es")
	flag.Var(&lang, "l", "Word list language (shorthand)")

	flag.Var(&startMode, "mode", "Start straight in a game mode (nursery, elementary, classic, advanced, ludicrous or 3-7)")
	flag.Var(&startMode, "m", "Start straight in a game mode (shorthand)")

	flag.Var(&guesses, "guesses", "Guesses per round in every mode")
	flag.Var(&guesses, "g", "Guesses per round in every mode (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "        --db=path          SQLite database (default $%s or ~/.config/wordem/wordem.db)\n", config.EnvDB)
		fmt.Fprintf(os.Stderr, "    -l, --lang=en|es       Word list language\n")
		fmt.Fprintf(os.Stderr, "    -m, --mode=name        Start straight in a game mode (nursery ... ludicrous, or 3-7)\n")
		fmt.Fprintf(os.Stderr, "    -g, --guesses=N        Guesses per round in every mode\n")
		fmt.Fprintf(os.Stderr, "    -h, --help             Show this help message\n")
	}

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if lang.set {
		cfg.Language = lang.lang
	}
	if guesses > 0 {
		if err := cfg.SetGuessLimit(int(guesses)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	logFile, err := config.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg, startMode); err != nil {
		log.Error().Err(err).Msg("wordem exited with an error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, start modeFlag) error {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	wordStore := words.NewSQLiteStore(db)
	if err := wordStore.SeedDefaults(ctx); err != nil {
		return err
	}

	model := initialModel(ctx, cfg, wordStore, stats.NewSQLiteStorage(db))
	if start.set {
		model.startMode(start.mode)
	}

	log.Info().Str("db", cfg.DBPath).Str("language", cfg.Language.Code()).Msg("wordem started")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running the program: %w", err)
	}
	return nil
}
