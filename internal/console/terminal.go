package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// TerminalPrompter asks through an inline huh input field. Ctrl+C inside
// the field aborts that prompt only.
type TerminalPrompter struct{}

// NewTerminalPrompter returns a prompter for an interactive terminal.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Prompt implements Prompter.
func (p *TerminalPrompter) Prompt(ctx context.Context, label string) (string, error) {
	return p.ask(ctx, label, huh.EchoModeNormal)
}

// PromptSecret implements SecretPrompter; typed characters are masked.
func (p *TerminalPrompter) PromptSecret(ctx context.Context, label string) (string, error) {
	return p.ask(ctx, label, huh.EchoModePassword)
}

func (p *TerminalPrompter) ask(ctx context.Context, label string, mode huh.EchoMode) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	input := huh.NewInput().
		Title(label).
		EchoMode(mode).
		Value(&value)

	err := huh.NewForm(huh.NewGroup(input)).
		WithShowHelp(false).
		RunWithContext(ctx)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, huh.ErrUserAborted):
		return "", ErrAborted
	case ctx.Err() != nil:
		return "", ctx.Err()
	default:
		return "", fmt.Errorf("failed to run prompt %q: %w", label, err)
	}
}
