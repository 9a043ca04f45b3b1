package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wricardo/hangman/game/engine"
)

// StatusAbandoned marks a game that ended before a win or a loss
const StatusAbandoned engine.Status = "abandoned"

// ErrAbandoned is returned when input ends or the context is cancelled mid-game
var ErrAbandoned = errors.New("game abandoned")

// Result summarizes a finished game
type Result struct {
	Status         engine.Status `json:"status"`
	Secret         string        `json:"secret"`
	Pattern        string        `json:"pattern"`
	LivesRemaining int           `json:"lives_remaining"`
	Turns          int           `json:"turns"`
	Tried          string        `json:"tried"`
}

// Driver runs the guess loop of a game
type Driver struct {
	in     InputSource
	out    OutputSink
	lives  int
	src    engine.RandomSource
	logger zerolog.Logger
}

// Option configures a Driver
type Option func(*Driver)

// WithLives sets the starting life count of new sessions
func WithLives(lives int) Option {
	return func(d *Driver) { d.lives = lives }
}

// WithRandomSource sets the source used to pick the secret word
func WithRandomSource(src engine.RandomSource) Option {
	return func(d *Driver) { d.src = src }
}

// WithLogger sets the diagnostics logger
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// NewDriver creates a driver reading from in and reporting to out
func NewDriver(in InputSource, out OutputSink, opts ...Option) *Driver {
	d := &Driver{
		in:     in,
		out:    out,
		lives:  engine.DefaultLives,
		src:    engine.CryptoSource{},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// PlayGame plays one full game with a word drawn from words
func PlayGame(ctx context.Context, words []string, in InputSource, out OutputSink, opts ...Option) (Result, error) {
	return NewDriver(in, out, opts...).PlayGame(ctx, words)
}

// PlayGame creates a session from words and plays it to completion
func (d *Driver) PlayGame(ctx context.Context, words []string) (Result, error) {
	session, err := d.NewSession(words)
	if err != nil {
		return Result{}, err
	}
	return d.Play(ctx, session)
}

// NewSession creates a session and announces the word length and pattern
func (d *Driver) NewSession(words []string) (*engine.GameSession, error) {
	session, err := engine.NewGameSession(words, d.lives, d.src)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	d.logger.Debug().
		Int("candidates", len(words)).
		Int("length", session.Length()).
		Int("lives", session.LivesRemaining()).
		Msg("game created")

	if err := d.emit(KindIntro, fmt.Sprintf("The mystery word has %d characters", session.Length())); err != nil {
		return nil, err
	}
	if err := d.emit(KindPattern, FormatPattern(session.Pattern())); err != nil {
		return nil, err
	}
	return session, nil
}

// Play repeats AcquireAndApplyGuess until the session is won, lost or abandoned
func (d *Driver) Play(ctx context.Context, session *engine.GameSession) (Result, error) {
	for session.Status() == engine.StatusInProgress {
		if _, err := d.AcquireAndApplyGuess(ctx, session); err != nil {
			if errors.Is(err, ErrAbandoned) {
				d.logger.Info().Err(err).Int("turns", session.Turns()).Msg("game abandoned")
				res := summarize(session)
				res.Status = StatusAbandoned
				return res, d.emit(KindAbandon, "Game abandoned.")
			}
			return summarize(session), err
		}
	}

	res := summarize(session)
	d.logger.Info().
		Str("status", string(res.Status)).
		Int("turns", res.Turns).
		Int("lives", res.LivesRemaining).
		Msg("game finished")

	if res.Status == engine.StatusWon {
		return res, d.emit(KindVictory, "Congratulations! You won!")
	}
	return res, d.emit(KindDefeat, fmt.Sprintf("You lost! The word was %s", res.Secret))
}

// AcquireAndApplyGuess prompts until a new, well-formed letter is read and applies it.
// Malformed and repeated guesses are reported and do not consume a turn.
func (d *Driver) AcquireAndApplyGuess(ctx context.Context, session *engine.GameSession) (engine.GuessResult, error) {
	for {
		if err := d.emit(KindPrompt, "Please enter a letter: "); err != nil {
			return engine.GuessResult{}, err
		}

		raw, err := d.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return engine.GuessResult{}, fmt.Errorf("%w: %v", ErrAbandoned, err)
			}
			return engine.GuessResult{}, fmt.Errorf("failed to read guess: %w", err)
		}

		letter, err := engine.ParseGuess(raw)
		if err != nil {
			d.logger.Debug().Str("input", raw).Msg("rejected guess")
			if err := d.emit(KindInvalid, "Please, enter a single alphabetic character."); err != nil {
				return engine.GuessResult{}, err
			}
			continue
		}

		result, err := session.SubmitLetter(letter)
		if errors.Is(err, engine.ErrRepeatedGuess) {
			d.logger.Debug().Str("letter", string(letter)).Msg("repeated guess")
			if err := d.emit(KindRepeated, fmt.Sprintf("%c was already tried.", letter)); err != nil {
				return result, err
			}
			continue
		}
		if err != nil {
			return result, err
		}

		d.logger.Debug().
			Str("letter", string(letter)).
			Str("outcome", string(result.Outcome)).
			Int("lives", result.LivesRemaining).
			Int("remaining", result.RemainingLetters).
			Msg("guess applied")

		if err := d.emit(KindPattern, FormatPattern(result.Pattern)); err != nil {
			return result, err
		}
		kind := KindHit
		if result.Outcome == engine.OutcomeMissed {
			kind = KindMiss
		}
		if err := d.emit(kind, fmt.Sprintf("Lives remaining: %d", result.LivesRemaining)); err != nil {
			return result, err
		}
		return result, nil
	}
}

// FormatPattern spaces out a reveal pattern for display, e.g. "p__r" becomes "p _ _ r"
func FormatPattern(pattern string) string {
	runes := []rune(pattern)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func (d *Driver) emit(kind Kind, text string) error {
	if err := d.out.Emit(Message{Kind: kind, Text: text}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func summarize(session *engine.GameSession) Result {
	return Result{
		Status:         session.Status(),
		Secret:         session.Secret(),
		Pattern:        session.Pattern(),
		LivesRemaining: session.LivesRemaining(),
		Turns:          session.Turns(),
		Tried:          string(session.TriedLetters()),
	}
}
