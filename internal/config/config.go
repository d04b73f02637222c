package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wordem/internal/mode"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by Load.
const (
	EnvDB         = "WORDEM_DB"
	EnvLanguage   = "WORDEM_LANGUAGE"
	EnvGuessLimit = "WORDEM_GUESS_LIMIT" // per mode: WORDEM_GUESS_LIMIT_CLASSIC etc.
	EnvLogLevel   = "WORDEM_LOG_LEVEL"
	EnvLogFile    = "WORDEM_LOG_FILE"
)

// Config holds the settings shared by the game and the seed tool.
type Config struct {
	DBPath      string
	Language    mode.Language
	GuessLimits map[mode.Mode]int
	LogLevel    zerolog.Level
	LogFile     string // empty disables logging
}

// Load reads the given .env files (default ".env"; missing files are
// ignored), then the environment.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	dir := defaultDir()
	cfg := &Config{
		DBPath:      getEnv(EnvDB, filepath.Join(dir, "wordem.db")),
		LogFile:     getEnv(EnvLogFile, filepath.Join(dir, "wordem.log")),
		GuessLimits: map[mode.Mode]int{},
	}

	lang, err := mode.ParseLanguage(getEnv(EnvLanguage, "en"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLanguage, err)
	}
	cfg.Language = lang

	lvl, err := zerolog.ParseLevel(strings.ToLower(getEnv(EnvLogLevel, "info")))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	cfg.LogLevel = lvl

	def, err := guessLimit(EnvGuessLimit, mode.DefaultGuessLimit)
	if err != nil {
		return nil, err
	}
	for _, m := range mode.All() {
		n, err := guessLimit(EnvGuessLimit+"_"+strings.ToUpper(m.String()), def)
		if err != nil {
			return nil, err
		}
		cfg.GuessLimits[m] = n
	}
	return cfg, nil
}

// Rules returns the rules of m with its configured guess limit.
func (c *Config) Rules(m mode.Mode) mode.Rules {
	return mode.NewRules(m, c.GuessLimits[m])
}

// SetGuessLimit overrides the guess limit of every mode.
func (c *Config) SetGuessLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("guess limit must be at least 1, got %d", n)
	}
	for _, m := range mode.All() {
		c.GuessLimits[m] = n
	}
	return nil
}

func guessLimit(key string, def int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: want a positive number, got %q", key, v)
	}
	return n, nil
}

func defaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "wordem")
	}
	return "."
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
