package engine

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ValidateWords validates a candidate word list for playability
func ValidateWords(words []string) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: word list is empty", ErrInvalidConfiguration)
	}

	for i, word := range words {
		if word == "" {
			return fmt.Errorf("%w: word %d is empty", ErrInvalidConfiguration, i+1)
		}
		for j, r := range Normalize(word) {
			if !unicode.IsLetter(r) {
				return fmt.Errorf("%w: word %d (%q) has non-alphabetic character %q at offset %d",
					ErrInvalidConfiguration, i+1, word, r, j)
			}
		}
	}

	return nil
}

// ValidateLives validates a starting life count
func ValidateLives(lives int) error {
	if lives < MinLives || lives > MaxLives {
		return fmt.Errorf("%w: lives must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinLives, MaxLives, lives)
	}
	return nil
}

// Normalize composes s to NFC and folds it one letter at a time, so a word
// and a single-letter guess always map the same letter to the same rune.
func Normalize(s string) string {
	return strings.Map(foldLetter, norm.NFC.String(s))
}

// distinctLetters returns the set of distinct runes in letters
func distinctLetters(letters []rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return set
}
