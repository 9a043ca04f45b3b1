package engine

import "unicode"

// reveal uncovers every position of the secret holding letter and returns those positions
func (g *GameSession) reveal(letter rune) []int {
	var positions []int
	for i, r := range g.secret {
		if r == letter {
			g.revealed[i] = letter
			positions = append(positions, i)
		}
	}
	return positions
}

// loseLife consumes one life, never going below zero
func (g *GameSession) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

// countRemaining recomputes the distinct secret letters absent from the reveal buffer
func (g *GameSession) countRemaining() int {
	shown := distinctLetters(g.revealed)
	count := 0
	for r := range distinctLetters(g.secret) {
		if _, ok := shown[r]; !ok {
			count++
		}
	}
	return count
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// foldLetter maps every case variant of a letter to one lower-case rune, e.g. 'Σ' and 'ς' to 'σ'
func foldLetter(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}
