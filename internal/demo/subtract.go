package demo

import "context"

// Subtract returns a - b with plain float64 semantics.
func Subtract(a, b float64) float64 {
	return a - b
}

func runSubtract(_ context.Context, env Env) error {
	env.Out.Line("10 - 3 =", Subtract(10, 3))
	return nil
}
