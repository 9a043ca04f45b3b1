package engine

// Status represents the lifecycle state of a game session
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome represents the effect a single guess had on the session
type Outcome string

const (
	OutcomeRevealed Outcome = "revealed"
	OutcomeMissed   Outcome = "missed"
	OutcomeRepeated Outcome = "repeated"
)

const (
	// Placeholder masks a position of the secret that has not been revealed yet
	Placeholder = '_'

	// DefaultLives is the starting life budget of a new game
	DefaultLives = 5

	// Validation constants
	MinLives = 1
	MaxLives = 26
)

// GuessResult describes the state of a session after a guess was evaluated
type GuessResult struct {
	Letter           rune    `json:"letter"`
	Outcome          Outcome `json:"outcome"`
	Positions        []int   `json:"positions,omitempty"` // Revealed indexes, for OutcomeRevealed
	Pattern          string  `json:"pattern"`
	LivesRemaining   int     `json:"lives_remaining"`
	RemainingLetters int     `json:"remaining_letters"`
	Status           Status  `json:"status"`
}

// IsTerminal reports whether the status ends the game
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}
