package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidGuessInput    = errors.New("guess must be a single alphabetic character")
	ErrRepeatedGuess        = errors.New("letter already tried")
	ErrGameOver             = errors.New("game is over")
)

// GameSession holds the state of a single hangman game
type GameSession struct {
	secret    []rune
	revealed  []rune
	remaining int
	lives     int
	tried     map[rune]struct{}
	order     []rune // tried letters in submission order
	turns     int
}

// NewGameSession creates a new session with a word drawn from words using src
func NewGameSession(words []string, lives int, src RandomSource) (*GameSession, error) {
	if err := ValidateWords(words); err != nil {
		return nil, err
	}
	if err := ValidateLives(lives); err != nil {
		return nil, err
	}
	if src == nil {
		src = CryptoSource{}
	}

	idx := src.IntN(len(words))
	if idx < 0 || idx >= len(words) {
		return nil, fmt.Errorf("%w: random source returned index %d for %d words",
			ErrInvalidConfiguration, idx, len(words))
	}

	secret := []rune(Normalize(words[idx]))
	revealed := make([]rune, len(secret))
	for i := range revealed {
		revealed[i] = Placeholder
	}

	return &GameSession{
		secret:    secret,
		revealed:  revealed,
		remaining: len(distinctLetters(secret)),
		lives:     lives,
		tried:     make(map[rune]struct{}),
		order:     []rune{},
	}, nil
}

// Secret returns the secret word
func (g *GameSession) Secret() string {
	return string(g.secret)
}

// Length returns the number of characters in the secret word
func (g *GameSession) Length() int {
	return len(g.secret)
}

// Revealed returns a copy of the reveal buffer
func (g *GameSession) Revealed() []rune {
	out := make([]rune, len(g.revealed))
	copy(out, g.revealed)
	return out
}

// Pattern returns the reveal buffer as a string, e.g. "p__r"
func (g *GameSession) Pattern() string {
	return string(g.revealed)
}

// LivesRemaining returns the number of lives left
func (g *GameSession) LivesRemaining() int {
	return g.lives
}

// RemainingUniqueLetters returns the number of distinct secret letters not yet revealed
func (g *GameSession) RemainingUniqueLetters() int {
	return g.remaining
}

// TriedLetters returns the tried letters in submission order
func (g *GameSession) TriedLetters() []rune {
	out := make([]rune, len(g.order))
	copy(out, g.order)
	return out
}

// Turns returns the number of guesses that were applied
func (g *GameSession) Turns() int {
	return g.turns
}

// Status returns the current game status. A win takes precedence over a loss.
func (g *GameSession) Status() Status {
	if g.remaining == 0 {
		return StatusWon
	}
	if g.lives == 0 {
		return StatusLost
	}
	return StatusInProgress
}

// IsGameOver returns whether the game has reached a terminal state
func (g *GameSession) IsGameOver() bool {
	return g.Status().IsTerminal()
}

// SubmitLetter evaluates a guessed letter and advances the session.
// A repeated letter returns ErrRepeatedGuess and leaves the session unchanged.
func (g *GameSession) SubmitLetter(letter rune) (GuessResult, error) {
	letter = foldLetter(letter)
	if !isLetter(letter) {
		return g.result(letter, "", nil), ErrInvalidGuessInput
	}
	if g.IsGameOver() {
		return g.result(letter, "", nil), ErrGameOver
	}
	if _, seen := g.tried[letter]; seen {
		return g.result(letter, OutcomeRepeated, nil), ErrRepeatedGuess
	}

	g.tried[letter] = struct{}{}
	g.order = append(g.order, letter)
	g.turns++

	positions := g.reveal(letter)
	outcome := OutcomeRevealed
	if len(positions) == 0 {
		outcome = OutcomeMissed
		g.loseLife()
	}
	g.remaining = g.countRemaining()

	return g.result(letter, outcome, positions), nil
}

func (g *GameSession) result(letter rune, outcome Outcome, positions []int) GuessResult {
	return GuessResult{
		Letter:           letter,
		Outcome:          outcome,
		Positions:        positions,
		Pattern:          g.Pattern(),
		LivesRemaining:   g.lives,
		RemainingLetters: g.remaining,
		Status:           g.Status(),
	}
}
