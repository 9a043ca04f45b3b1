// Package console provides the terminal transport for the hangman game.
//
// The console package implements play.InputSource and play.OutputSink on top
// of plain io.Reader and io.Writer values:
//   - Reader reads one guess per line
//   - Printer writes one status line per message, styled with lipgloss
//
// Styling:
//
// The Printer binds its lipgloss renderer to the writer it prints to, so
// colors are only emitted when that writer is a terminal. Pieces of output
// redirected to a file or a pipe stay plain text. Color can also be turned
// off explicitly with WithNoColor.
//
// Usage:
//
//	in := console.NewReader(os.Stdin)
//	out := console.NewPrinter(os.Stdout)
//	result, err := play.PlayGame(ctx, words, in, out)
package console
