package demo

import (
	"context"
	"fmt"

	"github.com/swantron/controlflow/internal/console"
)

// UserListSize is how many numbers CollectUserList asks for.
const UserListSize = 5

var fixedList = [...]float64{10, 20, 30, 40}

// FixedList returns a copy of the predetermined sequence.
func FixedList() []float64 {
	return append([]float64(nil), fixedList[:]...)
}

// PrintFixedList prints the predetermined sequence, one value per line.
func PrintFixedList(out console.Sink) []float64 {
	values := FixedList()
	out.Line("Números da lista fixa:")
	for _, v := range values {
		out.Line(v)
	}
	return values
}

// CollectUserList asks for UserListSize numbers and prints them back in the
// order they were entered. Answers that are not numbers are kept as NaN.
func CollectUserList(ctx context.Context, in console.Prompter, out console.Sink) ([]float64, error) {
	values := make([]float64, 0, UserListSize)
	for i := 1; i <= UserListSize; i++ {
		reply, err := softAnswer(ctx, in.Prompt, fmt.Sprintf("Digite o %dº número:", i))
		if err != nil {
			return values, err
		}
		values = append(values, console.ParseNumber(reply))
	}

	out.Line("Números digitados:")
	for _, v := range values {
		out.Line(v)
	}
	return values, nil
}

func runFixedList(_ context.Context, env Env) error {
	PrintFixedList(env.Out)
	return nil
}

func runUserList(ctx context.Context, env Env) error {
	_, err := CollectUserList(ctx, env.In, env.Out)
	return err
}
