// Command hangman plays a word-guessing game in the terminal.
//
// A secret word is drawn from a word list and the player guesses it one
// letter at a time before running out of lives. It supports two commands:
//  1. (default) – play a game reading guesses from stdin
//  2. "lists" – print the available word lists
//
// Settings are read from the environment (and a .env file when present) and
// can be overridden with flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/hangman/game/config"
	"github.com/wricardo/hangman/game/play"
	"github.com/wricardo/hangman/game/words"
	"github.com/wricardo/hangman/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Hangman"
)

// main loads settings and runs the command tree.
func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strings.ToLower(AppName), err)
		os.Exit(2)
	}

	cmd := newCommand(settings, os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", strings.ToLower(AppName), err)
		os.Exit(1)
	}
}

// newCommand builds the command tree with flag defaults taken from settings
func newCommand(defaults config.Settings, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "hangman",
		Usage:     "guess the secret word one letter at a time",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "lives",
				Aliases: []string{"l"},
				Value:   defaults.Lives,
				Usage:   "number of incorrect guesses allowed",
			},
			&cli.StringFlag{
				Name:    "list",
				Aliases: []string{"w"},
				Value:   defaults.List,
				Usage:   "word list to draw the secret word from",
			},
			&cli.StringFlag{
				Name:  "words-dir",
				Value: defaults.WordsDir,
				Usage: "directory with additional JSON word lists",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: defaults.Seed,
				Usage: "seed for a reproducible word choice (0 picks at random)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Value: defaults.NoColor,
				Usage: "disable colored output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: defaults.LogLevel,
				Usage: "diagnostics level written to stderr (debug, info, warn, error, disabled)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := defaults
			s.Lives = cmd.Int("lives")
			s.List = cmd.String("list")
			s.WordsDir = cmd.String("words-dir")
			s.Seed = cmd.Uint64("seed")
			s.NoColor = cmd.Bool("no-color")
			s.LogLevel = cmd.String("log-level")
			return runPlay(ctx, s, stdin, stdout, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:  "lists",
				Usage: "show the available word lists",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runLists(cmd.String("words-dir"), stdout)
				},
			},
		},
	}
}

// newLogger creates the diagnostics logger
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// runPlay loads the requested word list and plays one game on the console
func runPlay(ctx context.Context, s config.Settings, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	level, _ := s.Level()
	logger := newLogger(stderr, level)

	catalog, err := words.NewCatalog(s.WordsDir)
	if err != nil {
		return fmt.Errorf("failed to create word catalog: %w", err)
	}

	if err := catalog.SetDefault(s.List); err != nil {
		switch {
		case s.List == words.DefaultListID:
			// NewCatalog already fell back to the first valid list
			logger.Warn().Err(err).Str("fallback", catalog.GetDefault().Name).Msg("default word list unusable")
		case errors.Is(err, words.ErrListNotFound):
			if available, listErr := catalog.ListLists(); listErr == nil && len(available) > 0 {
				ids := make([]string, 0, len(available))
				for _, info := range available {
					ids = append(ids, info.ListID)
				}
				return fmt.Errorf("word list '%s' not found. Available lists: %s", s.List, strings.Join(ids, ", "))
			}
			return fmt.Errorf("failed to load word list %s: %w", s.List, err)
		default:
			return fmt.Errorf("failed to load word list %s: %w", s.List, err)
		}
	}
	list := catalog.GetDefault()

	logger.Debug().
		Str("list", s.List).
		Int("words", len(list.Words)).
		Int("lives", s.Lives).
		Bool("seeded", s.Seed != 0).
		Msg("starting game")

	_, err = play.PlayGame(ctx, list.Words,
		console.NewReader(stdin),
		console.NewPrinter(stdout, console.WithNoColor(s.NoColor)),
		play.WithLives(s.Lives),
		play.WithRandomSource(s.RandomSource()),
		play.WithLogger(logger),
	)
	return err
}

// runLists prints the available word lists
func runLists(wordsDir string, stdout io.Writer) error {
	catalog, err := words.NewCatalog(wordsDir)
	if err != nil {
		return fmt.Errorf("failed to create word catalog: %w", err)
	}

	lists, err := catalog.ListLists()
	if err != nil {
		return err
	}

	for _, info := range lists {
		fmt.Fprintf(stdout, "%-12s %-16s %4d words  %s\n", info.ListID, info.Name, info.WordCount, info.Description)
	}
	return nil
}
