// Package console holds the input and output collaborators the demonstrations
// talk to: prompters that ask the user for an answer and sinks that render
// lines of output.
package console

import (
	"context"
	"errors"
)

var (
	// ErrInputClosed means the input source is exhausted and will never
	// produce another answer.
	ErrInputClosed = errors.New("input closed")
	// ErrAborted means the user cancelled a single prompt.
	ErrAborted = errors.New("prompt aborted")
)

// Prompter asks for one answer per call. Prompt blocks until the answer
// arrives, the prompt is aborted or ctx is done.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// SecretPrompter is implemented by prompters that can hide what the user types.
type SecretPrompter interface {
	PromptSecret(ctx context.Context, label string) (string, error)
}

// PrompterFunc adapts a plain function to the Prompter interface.
type PrompterFunc func(ctx context.Context, label string) (string, error)

// Prompt calls f(ctx, label).
func (f PrompterFunc) Prompt(ctx context.Context, label string) (string, error) {
	return f(ctx, label)
}

// AskSecret uses PromptSecret when p supports it and falls back to Prompt.
func AskSecret(ctx context.Context, p Prompter, label string) (string, error) {
	if sp, ok := p.(SecretPrompter); ok {
		return sp.PromptSecret(ctx, label)
	}
	return p.Prompt(ctx, label)
}
