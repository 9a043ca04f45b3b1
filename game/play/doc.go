// Package play drives a hangman game between an engine.GameSession and the
// outside world.
//
// The driver reads raw guesses from an InputSource and reports progress to
// an OutputSink. Both are plain synchronous collaborators, so a game can be
// played headless with in-memory fakes:
//
//	in := play.Lines("p", "e", "a", "r")
//	out := &play.Recorder{}
//	result, err := play.PlayGame(ctx, []string{"pear"}, in, out)
//
// Invalid and repeated guesses are reported and re-prompted without
// consuming a turn. End of input or a cancelled context ends the game as
// abandoned.
package play
