// Command wordem-seed builds the word tables of the WordEm database from
// word-list files and can reset the statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"wordem/internal/config"
	"wordem/internal/mode"
	"wordem/internal/stats"
	"wordem/internal/store"
	"wordem/internal/words"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type pathsFlag []string

func (p *pathsFlag) String() string {
	return strings.Join(*p, ",")
}

func (p *pathsFlag) Set(s string) error {
	*p = append(*p, s)
	return nil
}

type options struct {
	lists      map[mode.Language][]string
	defaults   bool
	keep       bool
	resetStats bool
}

func main() {
	var dbPath string
	var en, es pathsFlag
	var opts options

	flag.StringVar(&dbPath, "db", "", "Path to the SQLite database (default from "+config.EnvDB+")")
	flag.Var(&en, "en", "English word-list file or directory (repeatable)")
	flag.Var(&es, "es", "Spanish word-list file or directory (repeatable)")
	flag.BoolVar(&opts.defaults, "defaults", false, "Load the built-in word lists for languages without -en/-es")
	flag.BoolVar(&opts.keep, "keep", false, "Add to the existing words instead of replacing them")
	flag.BoolVar(&opts.resetStats, "reset-stats", false, "Zero every statistic")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
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
	// The seed tool reports on the terminal.
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts.lists = map[mode.Language][]string{mode.English: en, mode.Spanish: es}
	if len(en) == 0 && len(es) == 0 && !opts.defaults && !opts.resetStats {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("could not open database")
	}
	defer db.Close()

	if err := seed(ctx, words.NewSQLiteStore(db), stats.NewSQLiteStorage(db), opts); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("seeding failed")
	}
}

func seed(ctx context.Context, ws *words.SQLiteStore, st *stats.SQLiteStorage, opts options) error {
	for _, lang := range mode.Languages() {
		var list []string
		switch {
		case len(opts.lists[lang]) > 0:
			var err error
			if list, err = words.LoadWords(opts.lists[lang]...); err != nil {
				return fmt.Errorf("load %s words: %w", lang, err)
			}
		case opts.defaults:
			list = words.Defaults(lang)
		default:
			continue
		}

		if !opts.keep {
			if err := ws.Clear(ctx, lang); err != nil {
				return err
			}
		}
		added, err := ws.Add(ctx, lang, list...)
		if err != nil {
			return err
		}
		counts, err := ws.Count(ctx, lang)
		if err != nil {
			return err
		}
		log.Info().Str("language", lang.Code()).Int("added", added).Str("lengths", formatCounts(counts)).Msg("word list loaded")

		for _, m := range mode.All() {
			if counts[m.WordLength()] == 0 {
				log.Warn().Str("language", lang.Code()).Str("mode", m.String()).Msg("no words for this mode")
			}
		}
	}

	if opts.resetStats {
		for _, scope := range mode.Scopes() {
			if err := st.Reset(ctx, scope); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatCounts(counts map[int]int) string {
	lengths := make([]int, 0, len(counts))
	for n := range counts {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	parts := make([]string, len(lengths))
	for i, n := range lengths {
		parts[i] = fmt.Sprintf("%d:%d", n, counts[n])
	}
	return strings.Join(parts, " ")
}
