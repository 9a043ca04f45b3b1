package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseGuess normalizes a raw line of input into a single lower-case letter.
// It returns ErrInvalidGuessInput unless the trimmed input is exactly one letter.
func ParseGuess(raw string) (rune, error) {
	s := Normalize(strings.TrimSpace(raw))
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidGuessInput, raw)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !isLetter(r) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidGuessInput, raw)
	}
	return r, nil
}
