// Package output delivers command results to the user according to the
// invocation's output mode: printed, copied to the clipboard, or dropped.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/animo/aries-cli/internal/config"
	"github.com/atotto/clipboard"
)

// Clipboard is the part of the system clipboard the printer needs.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Printer writes results honoring an output mode.
type Printer struct {
	mode      config.OutputMode
	w         io.Writer
	clipboard Clipboard
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriter sets where normal output goes (default os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		p.w = w
	}
}

// WithClipboard replaces the system clipboard (useful for testing).
func WithClipboard(c Clipboard) Option {
	return func(p *Printer) {
		p.clipboard = c
	}
}

// New creates a Printer for the given mode.
func New(mode config.OutputMode, opts ...Option) *Printer {
	p := &Printer{
		mode:      mode,
		w:         os.Stdout,
		clipboard: systemClipboard{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the mode the printer was created with.
func (p *Printer) Mode() config.OutputMode {
	return p.mode
}

// Print delivers text. In copy mode the text goes to the clipboard and a
// short confirmation is printed instead.
func (p *Printer) Print(text string) error {
	switch p.mode {
	case config.OutputSuppressed:
		return nil
	case config.OutputCopy:
		if err := p.clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copying output to clipboard: %w", err)
		}
		_, err := fmt.Fprintln(p.w, "Copied output to clipboard")
		return err
	default:
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err := io.WriteString(p.w, text)
		return err
	}
}

// Printf formats and delivers text.
func (p *Printer) Printf(format string, args ...any) error {
	return p.Print(fmt.Sprintf(format, args...))
}

// PrintJSON delivers v as indented JSON.
func (p *Printer) PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output as JSON: %w", err)
	}
	return p.Print(string(out))
}
