// Package indent provides a line-oriented writer that tracks an indentation level.
package indent

import (
	"io"
	"strings"
)

// Writer assembles indented lines on top of an io.Writer.
// The first write error is kept and every later call becomes a no-op.
type Writer struct {
	out   io.Writer
	level int
	err   error

	// Tab is repeated once per indentation level at the start of a line.
	Tab string
	// EOL terminates every line.
	EOL string
}

// New cria um Writer com tabulação "\t" e fim de linha "\n".
func New(out io.Writer) *Writer {
	return &Writer{
		out: out,
		Tab: "\t",
		EOL: "\n",
	}
}

// Level returns the current indentation level.
func (w *Writer) Level() int {
	return w.level
}

// Increase raises the indentation level by one.
func (w *Writer) Increase() int {
	w.level++
	return w.level
}

// Decrease lowers the indentation level by one, never below zero.
func (w *Writer) Decrease() int {
	if w.level > 0 {
		w.level--
	}
	return w.level
}

// Write emits s as-is.
func (w *Writer) Write(s string) *Writer {
	if w.err != nil || s == "" {
		return w
	}
	_, w.err = io.WriteString(w.out, s)
	return w
}

// StartLine emits the indentation followed by text.
func (w *Writer) StartLine(text string) *Writer {
	return w.Write(strings.Repeat(w.Tab, w.level)).Write(text)
}

// EndLine emits text followed by the line terminator.
func (w *Writer) EndLine(text string) *Writer {
	return w.Write(text).Write(w.EOL)
}

// WriteLine emits one complete indented line.
func (w *Writer) WriteLine(text string) *Writer {
	return w.StartLine("").Write(text).EndLine("")
}

// Err returns the first error reported by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}
