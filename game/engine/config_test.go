package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateWords(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr bool
		errText string
	}{
		{"valid list", createTestWords(), false, ""},
		{"single word", []string{"a"}, false, ""},
		{"upper case", []string{"PEAR", "Apple"}, false, ""},
		{"accented letters", []string{"café", "naïve"}, false, ""},
		{"greek capitals", []string{"ΟΔΟΣ"}, false, ""},
		{"dotted capital i", []string{"İzmir"}, false, ""},
		{"decomposed accent", []string{"cafe\u0301"}, false, ""},
		{"combining mark only", []string{"a\u0301\u0301"}, true, "non-alphabetic"},
		{"empty list", nil, true, "word list is empty"},
		{"empty word", []string{"pear", ""}, true, "word 2 is empty"},
		{"digit", []string{"pe4r"}, true, "non-alphabetic"},
		{"hyphen", []string{"x-ray"}, true, "non-alphabetic"},
		{"underscore", []string{"p_ar"}, true, "non-alphabetic"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateWords(test.words)
			if test.wantErr {
				if err == nil {
					t.Fatal("Expected validation error")
				}
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
				}
				if !strings.Contains(err.Error(), test.errText) {
					t.Errorf("Expected error to contain '%s', got '%s'", test.errText, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateLives(t *testing.T) {
	tests := []struct {
		lives   int
		wantErr bool
	}{
		{-1, true},
		{0, true},
		{MinLives, false},
		{DefaultLives, false},
		{MaxLives, false},
		{MaxLives + 1, true},
	}

	for _, test := range tests {
		err := ValidateLives(test.lives)
		if test.wantErr && !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("lives=%d: expected ErrInvalidConfiguration, got %v", test.lives, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("lives=%d: expected no error, got %v", test.lives, err)
		}
	}
}

func TestParseGuess(t *testing.T) {
	tests := []struct {
		raw      string
		expected rune
		wantErr  bool
	}{
		{"a", 'a', false},
		{"Z", 'z', false},
		{"  p \n", 'p', false},
		{"\té\t", 'é', false},
		{"e\u0301", 'é', false},
		{"Σ", 'σ', false},
		{"ς", 'σ', false},
		{"İ", 'i', false},
		{"", 0, true},
		{"   ", 0, true},
		{"ab", 0, true},
		{"a b", 0, true},
		{"1", 0, true},
		{"_", 0, true},
		{"!", 0, true},
	}

	for _, test := range tests {
		letter, err := ParseGuess(test.raw)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidGuessInput) {
				t.Errorf("%q: expected ErrInvalidGuessInput, got %v", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", test.raw, err)
			continue
		}
		if letter != test.expected {
			t.Errorf("%q: expected %q, got %q", test.raw, test.expected, letter)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"PeAR", "pear"},
		{"ΟΔΟΣ", "οδοσ"},
		{"οδος", "οδοσ"},
		{"İzmir", "izmir"},
		{"cafe\u0301", "café"},
	}

	for _, test := range tests {
		if got := Normalize(test.in); got != test.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", test.in, got, test.expected)
		}
	}
}

func TestRandomSources(t *testing.T) {
	t.Run("seeded source is deterministic", func(t *testing.T) {
		a := NewSeededSource(42)
		b := NewSeededSource(42)
		for i := 0; i < 20; i++ {
			x, y := a.IntN(6), b.IntN(6)
			if x != y {
				t.Fatalf("Draw %d: expected identical values, got %d and %d", i, x, y)
			}
			if x < 0 || x >= 6 {
				t.Fatalf("Draw %d: value %d out of range", i, x)
			}
		}
	})

	t.Run("crypto source stays in range", func(t *testing.T) {
		src := CryptoSource{}
		for i := 0; i < 50; i++ {
			if v := src.IntN(3); v < 0 || v >= 3 {
				t.Fatalf("Value %d out of range", v)
			}
		}
	})

	t.Run("single candidate", func(t *testing.T) {
		if v := (CryptoSource{}).IntN(1); v != 0 {
			t.Errorf("Expected 0, got %d", v)
		}
		if v := NewSeededSource(7).IntN(1); v != 0 {
			t.Errorf("Expected 0, got %d", v)
		}
	})
}
