package play

import (
	"context"
	"io"
)

// Kind classifies a message sent to an OutputSink
type Kind string

const (
	KindIntro    Kind = "intro"    // word length announcement
	KindPattern  Kind = "pattern"  // reveal buffer
	KindPrompt   Kind = "prompt"   // request for a guess, no trailing newline
	KindInvalid  Kind = "invalid"  // malformed guess
	KindRepeated Kind = "repeated" // letter already tried
	KindHit      Kind = "hit"      // lives line after a correct guess
	KindMiss     Kind = "miss"     // lives line after an incorrect guess
	KindVictory  Kind = "victory"
	KindDefeat   Kind = "defeat"
	KindAbandon  Kind = "abandon"
)

// Message is one line of status text
type Message struct {
	Kind Kind
	Text string
}

// InputSource supplies raw guess lines. It returns io.EOF when input ends.
type InputSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// OutputSink receives status text
type OutputSink interface {
	Emit(msg Message) error
}

// lines is an InputSource backed by a fixed slice of lines
type lines struct {
	lines []string
}

// Lines returns an InputSource that yields each line once, then io.EOF
func Lines(l ...string) InputSource {
	return &lines{lines: l}
}

func (l *lines) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}

// Recorder is an OutputSink that keeps every message in memory
type Recorder struct {
	Messages []Message
}

// Emit records msg
func (r *Recorder) Emit(msg Message) error {
	r.Messages = append(r.Messages, msg)
	return nil
}

// Count returns how many messages of kind were recorded
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, m := range r.Messages {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the last recorded message
func (r *Recorder) Last() Message {
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}
