// Package engine provides the core game logic for the hangman word game.
//
// The engine package implements the game mechanics including:
//   - Secret word selection from a candidate list
//   - Guess validation and normalization
//   - Letter reveal and life accounting
//   - Victory and defeat detection
//
// Core Types:
//
// GameSession owns the state of a single game: the secret word, the reveal
// buffer, the tried letters and the remaining lives. It is mutated only
// through SubmitLetter. GuessResult describes the effect of one guess.
//
// Usage:
//
//	session, err := engine.NewGameSession(words, engine.DefaultLives, engine.CryptoSource{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	letter, err := engine.ParseGuess("p")
//	if err != nil {
//		// re-prompt
//	}
//	result, err := session.SubmitLetter(letter)
//
// Game Rules:
//
// Each new letter found in the secret is revealed at every position where it
// occurs. Each new letter absent from the secret costs one life. Letters that
// were already tried are reported and cost nothing. The game is won once every
// distinct letter is revealed and lost once the lives run out; the win check
// runs first.
package engine
