package demo

import (
	"context"

	"github.com/swantron/controlflow/internal/console"
)

const (
	// Secret is the reference password.
	Secret = "123456"
	// MaxAttempts bounds the number of submissions before access is blocked.
	MaxAttempts = 3
)

// GateState is a state of the password gate.
type GateState int

const (
	StateRequesting GateState = iota
	StateChecking
	StateGranted
	StateDenied
)

func (s GateState) String() string {
	switch s {
	case StateRequesting:
		return "requesting"
	case StateChecking:
		return "checking"
	case StateGranted:
		return "granted"
	case StateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// GateResult is the terminal state of a PasswordGate run.
type GateResult struct {
	State    GateState
	Attempts int
}

// Granted reports whether access was granted.
func (r GateResult) Granted() bool {
	return r.State == StateGranted
}

// PasswordGate asks for the password up to MaxAttempts times. A match stops
// immediately and wins over the attempt bound, so a correct third attempt
// still grants access.
func PasswordGate(ctx context.Context, in console.Prompter, out console.Sink) (GateResult, error) {
	ask := func(ctx context.Context, label string) (string, error) {
		return console.AskSecret(ctx, in, label)
	}

	state := StateRequesting
	attempts := 0
	var submitted string

	for {
		switch state {
		case StateRequesting:
			reply, err := softAnswer(ctx, ask, "Digite a senha:")
			if err != nil {
				return GateResult{State: state, Attempts: attempts}, err
			}
			submitted = reply
			attempts++
			state = StateChecking

		case StateChecking:
			switch {
			case submitted == Secret:
				state = StateGranted
			case attempts >= MaxAttempts:
				state = StateDenied
			default:
				state = StateRequesting
			}

		case StateGranted:
			out.Line("Acesso liberado!")
			return GateResult{State: state, Attempts: attempts}, nil

		case StateDenied:
			out.Line("Acesso bloqueado!")
			return GateResult{State: state, Attempts: attempts}, nil
		}
	}
}

func runPassword(ctx context.Context, env Env) error {
	_, err := PasswordGate(ctx, env.In, env.Out)
	return err
}
