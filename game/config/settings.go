// Package config loads runtime settings for the hangman command.
//
// Settings come from the process environment, optionally seeded from a .env
// file in the working directory. Command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/wricardo/hangman/game/engine"
	"github.com/wricardo/hangman/game/words"
)

// Settings holds the runtime configuration of a game
type Settings struct {
	Lives    int    `env:"HANGMAN_LIVES" envDefault:"5"`
	List     string `env:"HANGMAN_WORD_LIST" envDefault:"fruits"`
	WordsDir string `env:"HANGMAN_WORDS_DIR"`
	Seed     uint64 `env:"HANGMAN_SEED" envDefault:"0"` // 0 selects crypto randomness
	NoColor  bool   `env:"HANGMAN_NO_COLOR" envDefault:"false"`
	LogLevel string `env:"HANGMAN_LOG_LEVEL" envDefault:"warn"`
}

// Default returns the settings used when nothing is configured
func Default() Settings {
	return Settings{
		Lives:    engine.DefaultLives,
		List:     words.DefaultListID,
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Load reads settings from dotenv files (when present) and the environment.
// Only malformed values fail here; call Validate once flag overrides are applied.
func Load(dotenvFiles ...string) (Settings, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Validate checks settings for consistency
func (s Settings) Validate() error {
	if err := engine.ValidateLives(s.Lives); err != nil {
		return err
	}
	if strings.TrimSpace(s.List) == "" {
		return fmt.Errorf("%w: word list id is required", engine.ErrInvalidConfiguration)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a zerolog level
func (s Settings) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

// RandomSource returns the random source selected by Seed
func (s Settings) RandomSource() engine.RandomSource {
	if s.Seed == 0 {
		return engine.CryptoSource{}
	}
	return engine.NewSeededSource(s.Seed)
}
