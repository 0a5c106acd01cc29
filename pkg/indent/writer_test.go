package indent

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestWriter_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.WriteLine("a")
	w.Increase()
	w.WriteLine("b")
	w.Increase()
	w.WriteLine("c")
	w.Decrease()
	w.WriteLine("d")

	want := "a\n\tb\n\t\tc\n\td\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_StartEndLine(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Increase()

	w.StartLine("<div").Write(" id=\"x\"").EndLine(">")
	w.StartLine("").EndLine("")

	want := "\t<div id=\"x\">\n\t\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_CustomTabAndEOL(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	w.Tab = "  "
	w.EOL = "\r\n"
	w.Increase()

	w.WriteLine("x")

	if buf.String() != "  x\r\n" {
		t.Errorf("output = %q, want %q", buf.String(), "  x\r\n")
	}
}

func TestWriter_DecreaseFloorsAtZero(t *testing.T) {
	w := New(&bytes.Buffer{})

	if got := w.Decrease(); got != 0 {
		t.Errorf("Decrease() = %d, want 0", got)
	}
	w.Increase()
	w.Decrease()
	w.Decrease()
	if w.Level() != 0 {
		t.Errorf("Level() = %d, want 0", w.Level())
	}
}

func TestWriter_StickyError(t *testing.T) {
	fw := &failingWriter{}
	w := New(fw)

	w.WriteLine("first").WriteLine("second")

	if w.Err() == nil {
		t.Fatal("Err() = nil, want error")
	}
	if fw.calls != 1 {
		t.Errorf("underlying writes = %d, want 1", fw.calls)
	}
}
