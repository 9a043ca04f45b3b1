// Command analyze prints quick, human-readable heuristics about word lists.
// It summarizes word counts, word lengths and distinct-letter counts, and
// highlights entries that cannot be played or that are hard to win with the
// default number of lives.
//
// With no arguments the built-in lists are analyzed. Each argument is treated
// as the path to a JSON word list file.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wricardo/hangman/game/engine"
	"github.com/wricardo/hangman/game/words"
)

// WordStats holds the heuristics computed for one word.
type WordStats struct {
	Word     string
	Length   int
	Distinct int
}

func main() {
	if len(os.Args) > 1 {
		for _, path := range os.Args[1:] {
			fmt.Printf("\n=== Analyzing %s ===\n", path)
			analyzeFile(os.Stdout, path)
		}
		return
	}

	catalog, err := words.NewCatalog("")
	if err != nil {
		fmt.Printf("Error loading word lists: %v\n", err)
		os.Exit(1)
	}

	lists, err := catalog.ListLists()
	if err != nil {
		fmt.Printf("Error listing word lists: %v\n", err)
		os.Exit(1)
	}

	for _, info := range lists {
		fmt.Printf("\n=== Analyzing %s ===\n", info.Filename)
		list, err := catalog.LoadList(info.ListID)
		if err != nil {
			fmt.Printf("Error loading list: %v\n", err)
			continue
		}
		analyzeList(os.Stdout, list)
	}
}

// analyzeFile reads a list file without validation so broken entries can be reported
func analyzeFile(w io.Writer, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(w, "Error reading file: %v\n", err)
		return
	}

	var list words.List
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(w, "Error parsing JSON: %v\n", err)
		return
	}

	analyzeList(w, &list)
}

func analyzeList(w io.Writer, list *words.List) {
	fmt.Fprintf(w, "Name: %s\n", list.Name)
	fmt.Fprintf(w, "Words: %d\n", len(list.Words))

	var stats []WordStats
	var invalid []string
	seen := make(map[string]int)

	for _, word := range list.Words {
		if err := engine.ValidateWords([]string{word}); err != nil {
			invalid = append(invalid, word)
			continue
		}
		s := wordStats(word)
		seen[s.Word]++
		stats = append(stats, s)
	}

	if len(stats) == 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: list has no playable words\n")
		reportInvalid(w, invalid)
		return
	}

	shortest, longest := stats[0], stats[0]
	totalLength := 0
	for _, s := range stats {
		if s.Length < shortest.Length {
			shortest = s
		}
		if s.Length > longest.Length {
			longest = s
		}
		totalLength += s.Length
	}

	fmt.Fprintf(w, "Shortest: %s (%d)\n", shortest.Word, shortest.Length)
	fmt.Fprintf(w, "Longest: %s (%d)\n", longest.Word, longest.Length)
	fmt.Fprintf(w, "Average Length: %.1f\n", float64(totalLength)/float64(len(stats)))

	reportInvalid(w, invalid)

	var duplicates []string
	for word, n := range seen {
		if n > 1 {
			duplicates = append(duplicates, word)
		}
	}
	if len(duplicates) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d words appear more than once: %s\n", len(duplicates), strings.Join(duplicates, ", "))
	}

	// Flag words whose distinct letters crowd out the default miss budget
	var hard []WordStats
	for _, s := range stats {
		if s.Distinct > engine.MaxLives-engine.DefaultLives {
			hard = append(hard, s)
		}
	}
	if len(hard) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d words use more than %d distinct letters\n", len(hard), engine.MaxLives-engine.DefaultLives)
		for i, s := range hard {
			if i < 5 {
				fmt.Fprintf(w, "   Hard: %s - %d distinct letters\n", s.Word, s.Distinct)
			}
		}
		if len(hard) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(hard)-5)
		}
	}

	if len(invalid) == 0 && len(duplicates) == 0 {
		fmt.Fprintf(w, "✅ All words are playable and unique\n")
	}
}

func reportInvalid(w io.Writer, invalid []string) {
	if len(invalid) == 0 {
		return
	}
	fmt.Fprintf(w, "⚠️  WARNING: %d entries cannot be played\n", len(invalid))
	for _, word := range invalid {
		fmt.Fprintf(w, "   Invalid: %q\n", word)
	}
}

func wordStats(word string) WordStats {
	normalized := engine.Normalize(word)
	letters := make(map[rune]struct{})
	length := 0
	for _, r := range normalized {
		letters[r] = struct{}{}
		length++
	}
	return WordStats{Word: normalized, Length: length, Distinct: len(letters)}
}
