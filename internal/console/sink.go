package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives the output of a demonstration, one line at a time.
type Sink interface {
	// Line renders values space-joined on a single line.
	Line(values ...any)
	// Header renders a section title.
	Header(title string)
}

// WriterSink writes lines to an io.Writer and styles headers.
type WriterSink struct {
	w      io.Writer
	header lipgloss.Style
}

// NewWriterSink returns a sink writing to w with the default header style.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{
		w:      w,
		header: Styles.Header,
	}
}

// Line implements Sink.
func (s *WriterSink) Line(values ...any) {
	fmt.Fprintln(s.w, Render(values...))
}

// Header implements Sink. Headers are preceded by a blank line.
func (s *WriterSink) Header(title string) {
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, s.header.Render(title))
}
