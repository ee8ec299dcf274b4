package demo

import (
	"context"
	"fmt"
)

const welcome = "Bem-vindo ao programa de estruturas de controle!"

// WelcomeMessage returns the program's introduction.
func WelcomeMessage() string {
	return welcome
}

// Greeting greets name. Any string is accepted, including "".
func Greeting(name string) string {
	return fmt.Sprintf("Olá, %s! Seja bem-vindo(a).", name)
}

// Square returns n*n.
func Square(n float64) float64 {
	return n * n
}

func runText(_ context.Context, env Env) error {
	env.Out.Line(WelcomeMessage())
	env.Out.Line(Greeting("Ana"))
	env.Out.Line("O quadrado de 5 é", Square(5))
	return nil
}
