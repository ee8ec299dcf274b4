package demo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeMessage(t *testing.T) {
	assert.Equal(t, "Bem-vindo ao programa de estruturas de controle!", WelcomeMessage())
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Olá, Ana! Seja bem-vindo(a).", Greeting("Ana"))
	assert.Equal(t, "Olá, ! Seja bem-vindo(a).", Greeting(""))
}

func TestSquare(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{5, 25},
		{-4, 16},
		{0, 0},
		{1.5, 2.25},
		{-0.5, 0.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Square(tt.in), "Square(%v)", tt.in)
	}
	assert.True(t, math.IsNaN(Square(math.NaN())))
	assert.Equal(t, math.Inf(1), Square(math.Inf(-1)))
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{10, 3, 7},
		{3, 10, -7},
		{0, 0, 0},
		{2.5, 0.5, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subtract(tt.a, tt.b), "Subtract(%v, %v)", tt.a, tt.b)
	}
	assert.True(t, math.IsNaN(Subtract(math.Inf(1), math.Inf(1))))
}
