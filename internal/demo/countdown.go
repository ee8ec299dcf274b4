package demo

import (
	"context"

	"github.com/swantron/controlflow/internal/console"
)

// Sentinel ends the countdown loop.
const Sentinel = 3.0

// Countdown asks for numbers until Sentinel is entered. Every number before
// the sentinel is echoed as entered and returned in order. NaN never matches
// the sentinel, so invalid answers keep the loop going.
//
// The loop only stops early when ctx is done or in reports ErrInputClosed,
// since neither can ever yield the sentinel.
func Countdown(ctx context.Context, in console.Prompter, out console.Sink) ([]float64, error) {
	var entered []float64
	for {
		reply, err := answer(ctx, in.Prompt, "Digite um número (3 para sair):")
		if err != nil {
			return entered, err
		}
		n := console.ParseNumber(reply)
		if n == Sentinel {
			break
		}
		out.Line("Número digitado:", n)
		entered = append(entered, n)
	}
	out.Line("Você digitou 3. Fim do loop!")
	return entered, nil
}

func runCountdown(ctx context.Context, env Env) error {
	_, err := Countdown(ctx, env.In, env.Out)
	return err
}
