package cli

import (
	"bytes"
	"io"
)

// StdioWrapper provides stdout- and stderr-like writers that forward
// complete lines to a Terminal, so output from the log package does not
// interfere with the status area.
type StdioWrapper struct {
	term Terminal
}

// NewStdioWrapper initializes a new stdio wrapper for term.
func NewStdioWrapper(term Terminal) *StdioWrapper {
	return &StdioWrapper{term: term}
}

// Stdout returns a writer that prints to the terminal.
func (w *StdioWrapper) Stdout() io.WriteCloser {
	return &lineWriter{print: w.term.Print}
}

// Stderr returns a writer that prints to the terminal.
func (w *StdioWrapper) Stderr() io.WriteCloser {
	return &lineWriter{print: w.term.Print}
}

// lineWriter buffers writes and forwards whole lines.
type lineWriter struct {
	buf   bytes.Buffer
	print func(string)
}

func (w *lineWriter) Write(data []byte) (int, error) {
	n, err := w.buf.Write(data)
	if err != nil {
		return n, err
	}

	for {
		line, rest, found := bytes.Cut(w.buf.Bytes(), []byte("\n"))
		if !found {
			break
		}

		w.print(string(line) + "\n")

		remaining := make([]byte, len(rest))
		copy(remaining, rest)
		w.buf.Reset()
		_, _ = w.buf.Write(remaining)
	}

	return n, err
}

// Close flushes a trailing unterminated line.
func (w *lineWriter) Close() error {
	if w.buf.Len() > 0 {
		w.print(w.buf.String() + "\n")
		w.buf.Reset()
	}
	return nil
}
