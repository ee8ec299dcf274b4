package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter reads one answer per line from a reader. It is used when stdin
// is not a terminal, or when the user asked for plain prompts.
type LinePrompter struct {
	r    *bufio.Reader
	w    io.Writer
	echo bool
}

// NewLinePrompter returns a prompter that writes labels to w and reads answers
// from r. With echo set, each answer is written back after its label so that
// a piped transcript shows what was consumed.
func NewLinePrompter(r io.Reader, w io.Writer, echo bool) *LinePrompter {
	return &LinePrompter{
		r:    bufio.NewReader(r),
		w:    w,
		echo: echo,
	}
}

// Prompt writes the label and reads the next line. A final line without a
// trailing newline is still returned; after that the prompter reports
// ErrInputClosed.
func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	return p.read(ctx, label, p.echo)
}

// PromptSecret implements SecretPrompter. The answer is never echoed. A
// terminal in plain mode still shows what is typed.
func (p *LinePrompter) PromptSecret(ctx context.Context, label string) (string, error) {
	answer, err := p.read(ctx, label, false)
	if err == nil && p.echo {
		fmt.Fprintln(p.w)
	}
	return answer, err
}

func (p *LinePrompter) read(ctx context.Context, label string, echo bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(p.w, "%s ", label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.w)
			return "", ErrInputClosed
		}
	}

	line = strings.TrimRight(line, "\r\n")
	if echo {
		fmt.Fprintln(p.w, line)
	}
	return line, nil
}
