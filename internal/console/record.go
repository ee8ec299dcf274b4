package console

import (
	"context"
	"strings"
)

// Script is a Prompter that replays fixed answers in order. Once the answers
// run out it reports ErrInputClosed. Labels records every label asked.
type Script struct {
	answers []string
	next    int
	Labels  []string
}

// NewScript returns a Script replaying answers.
func NewScript(answers ...string) *Script {
	return &Script{answers: answers}
}

// Prompt implements Prompter.
func (s *Script) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Labels = append(s.Labels, label)
	if s.next >= len(s.answers) {
		return "", ErrInputClosed
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Remaining reports how many answers have not been consumed.
func (s *Script) Remaining() int {
	return len(s.answers) - s.next
}

// Recorder is a Sink that keeps rendered output in memory.
type Recorder struct {
	// Lines holds every Line call, rendered.
	Lines []string
	// Headers holds every Header title, in order.
	Headers []string
}

// Line implements Sink.
func (r *Recorder) Line(values ...any) {
	r.Lines = append(r.Lines, Render(values...))
}

// Header implements Sink.
func (r *Recorder) Header(title string) {
	r.Headers = append(r.Headers, title)
}

// String renders the recorded lines, one per row.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, l := range r.Lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}
