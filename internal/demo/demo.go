// Package demo implements the control-flow demonstrations and the driver that
// runs them in order.
package demo

import (
	"context"
	"errors"

	"github.com/swantron/controlflow/internal/console"
)

// Env carries the collaborators a demonstration talks to.
type Env struct {
	In  console.Prompter
	Out console.Sink
}

// Demo is a named, independently runnable demonstration.
type Demo struct {
	Name  string
	Title string
	Run   func(ctx context.Context, env Env) error
}

// All returns the demonstrations in execution order.
func All() []Demo {
	return []Demo{
		{Name: "countdown", Title: "Loop com sentinela", Run: runCountdown},
		{Name: "password", Title: "Verificação de senha", Run: runPassword},
		{Name: "fixed-list", Title: "Lista fixa", Run: runFixedList},
		{Name: "user-list", Title: "Lista do usuário", Run: runUserList},
		{Name: "text", Title: "Funções de texto", Run: runText},
		{Name: "subtract", Title: "Subtração", Run: runSubtract},
	}
}

// Lookup finds a demonstration by name.
func Lookup(name string) (Demo, bool) {
	for _, d := range All() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// answer asks once. A prompt the user aborted reads as an empty answer; any
// other failure, including a closed input source, is returned.
func answer(ctx context.Context, ask func(context.Context, string) (string, error), label string) (string, error) {
	reply, err := ask(ctx, label)
	switch {
	case err == nil:
		return reply, nil
	case ctx.Err() != nil:
		return "", ctx.Err()
	case errors.Is(err, console.ErrAborted):
		return "", nil
	default:
		return "", err
	}
}

// softAnswer is answer for bounded loops: a closed source also reads as "".
func softAnswer(ctx context.Context, ask func(context.Context, string) (string, error), label string) (string, error) {
	reply, err := answer(ctx, ask, label)
	if errors.Is(err, console.ErrInputClosed) {
		return "", nil
	}
	return reply, err
}
