package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wricardo/hangman/game/play"
)

var (
	hitColor     = lipgloss.Color("#10B981") // Green
	missColor    = lipgloss.Color("#F87171") // Red
	warningColor = lipgloss.Color("#F59E0B") // Amber
	mutedColor   = lipgloss.Color("#9CA3AF") // Gray
	accentColor  = lipgloss.Color("#A78BFA") // Purple
)

// Printer writes game messages as lines of text
type Printer struct {
	w       io.Writer
	noColor bool
	styles  map[play.Kind]lipgloss.Style
}

// PrinterOption configures a Printer
type PrinterOption func(*Printer)

// WithNoColor disables styling regardless of the writer
func WithNoColor(noColor bool) PrinterOption {
	return func(p *Printer) { p.noColor = noColor }
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}

	r := lipgloss.NewRenderer(w)
	p.styles = map[play.Kind]lipgloss.Style{
		play.KindIntro:    r.NewStyle().Bold(true),
		play.KindPattern:  r.NewStyle().Bold(true).Foreground(accentColor),
		play.KindPrompt:   r.NewStyle().Foreground(mutedColor),
		play.KindInvalid:  r.NewStyle().Foreground(warningColor),
		play.KindRepeated: r.NewStyle().Foreground(warningColor).Italic(true),
		play.KindHit:      r.NewStyle().Foreground(hitColor),
		play.KindMiss:     r.NewStyle().Foreground(missColor),
		play.KindVictory:  r.NewStyle().Bold(true).Foreground(hitColor),
		play.KindDefeat:   r.NewStyle().Bold(true).Foreground(missColor),
		play.KindAbandon:  r.NewStyle().Foreground(mutedColor),
	}
	return p
}

// Emit writes msg. Prompts stay on the current line so the guess follows them.
func (p *Printer) Emit(msg play.Message) error {
	text := p.render(msg)
	if msg.Kind == play.KindPrompt {
		_, err := fmt.Fprint(p.w, text)
		return err
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}

func (p *Printer) render(msg play.Message) string {
	if p.noColor {
		return msg.Text
	}
	style, ok := p.styles[msg.Kind]
	if !ok {
		return msg.Text
	}
	return style.Render(msg.Text)
}
