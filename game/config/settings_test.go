package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wricardo/hangman/game/engine"
)

// clearEnv unsets the hangman variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HANGMAN_LIVES", "HANGMAN_WORD_LIST", "HANGMAN_WORDS_DIR",
		"HANGMAN_SEED", "HANGMAN_NO_COLOR", "HANGMAN_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func missingDotenv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	s, err := Load(missingDotenv(t))
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), s)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HANGMAN_LIVES", "7")
	t.Setenv("HANGMAN_WORD_LIST", "animals")
	t.Setenv("HANGMAN_SEED", "42")
	t.Setenv("HANGMAN_NO_COLOR", "true")
	t.Setenv("HANGMAN_LOG_LEVEL", "debug")

	s, err := Load(missingDotenv(t))
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s.Lives != 7 {
		t.Errorf("Expected 7 lives, got %d", s.Lives)
	}
	if s.List != "animals" {
		t.Errorf("Expected list 'animals', got '%s'", s.List)
	}
	if s.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	if !s.NoColor {
		t.Error("Expected NoColor to be true")
	}
	if lvl, _ := s.Level(); lvl != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %s", lvl)
	}
}

func TestLoad_Dotenv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("HANGMAN_LIVES=3\nHANGMAN_WORD_LIST=tech\n"), 0644); err != nil {
		t.Fatalf("Failed to write dotenv file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if s.Lives != 3 {
		t.Errorf("Expected 3 lives from .env, got %d", s.Lives)
	}
	if s.List != "tech" {
		t.Errorf("Expected list 'tech' from .env, got '%s'", s.List)
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric lives", "HANGMAN_LIVES", "five"},
		{"bad seed", "HANGMAN_SEED", "-1"},
		{"bad no-color", "HANGMAN_NO_COLOR", "maybe"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)

			if _, err := Load(missingDotenv(t)); err == nil {
				t.Errorf("Expected error for %s=%s", test.key, test.value)
			}
		})
	}
}

func TestLoad_DefersValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero lives", "HANGMAN_LIVES", "0"},
		{"too many lives", "HANGMAN_LIVES", "100"},
		{"bad log level", "HANGMAN_LOG_LEVEL", "loud"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)

			s, err := Load(missingDotenv(t))
			if err != nil {
				t.Fatalf("Expected out-of-range value to load, got %v", err)
			}
			if err := s.Validate(); err == nil {
				t.Errorf("Expected Validate to reject %s=%s", test.key, test.value)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Expected defaults to be valid, got %v", err)
	}

	s.List = "  "
	if err := s.Validate(); !errors.Is(err, engine.ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration for blank list, got %v", err)
	}
}

func TestRandomSource(t *testing.T) {
	s := Default()
	if _, ok := s.RandomSource().(engine.CryptoSource); !ok {
		t.Errorf("Expected CryptoSource for seed 0, got %T", s.RandomSource())
	}

	s.Seed = 9
	a, b := s.RandomSource(), s.RandomSource()
	for i := 0; i < 10; i++ {
		if a.IntN(100) != b.IntN(100) {
			t.Fatal("Expected seeded sources to agree")
		}
	}
}
