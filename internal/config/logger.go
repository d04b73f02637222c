package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogger points the global zerolog logger at the configured log file.
// The terminal belongs to the TUI, so nothing is logged to stderr.
// The returned closer flushes the file.
func SetupLogger(cfg *Config) (io.Closer, error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
