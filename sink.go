package envconf

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Sink receives non-fatal validation diagnostics.
type Sink interface {
	io.Writer
	// IsInteractive reports whether output is shown on a terminal, enabling color.
	IsInteractive() bool
}

type writerSink struct {
	io.Writer
	interactive bool
}

func (s writerSink) IsInteractive() bool { return s.interactive }

// NewSink wraps w. Writers exposing a file descriptor are checked for a terminal.
func NewSink(w io.Writer) Sink {
	interactive := false
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return writerSink{Writer: w, interactive: interactive}
}

// ColorSink wraps w and always reports itself interactive.
func ColorSink(w io.Writer) Sink {
	return writerSink{Writer: w, interactive: true}
}

// Stderr is the default sink.
func Stderr() Sink {
	return NewSink(os.Stderr)
}
