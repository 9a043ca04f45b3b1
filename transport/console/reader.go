package console

import (
	"bufio"
	"context"
	"io"
)

// Reader reads guesses line by line
type Reader struct {
	scanner *bufio.Scanner
}

// NewReader creates a line reader over r
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator, or io.EOF once input ends.
// The context is checked before blocking on the underlying reader.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
