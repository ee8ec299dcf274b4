package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs rootCmd with args, feeding stdin and capturing stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunAllFromPipe(t *testing.T) {
	stdin := strings.Join([]string{
		"5", "3",
		"errada", "outra", "123456",
		"1.5", "2", "-3", "0", "100",
	}, "\n") + "\n"

	out, err := execute(t, stdin)
	require.NoError(t, err)

	for _, want := range []string{
		"1. Loop com sentinela",
		"Digite um número (3 para sair): 5",
		"Número digitado: 5",
		"Você digitou 3. Fim do loop!",
		"Acesso liberado!",
		"Números da lista fixa:\n10\n20\n30\n40\n",
		"Digite o 5º número: 100",
		"Números digitados:\n1.5\n2\n-3\n0\n100\n",
		"Olá, Ana! Seja bem-vindo(a).",
		"O quadrado de 5 é 25",
		"10 - 3 = 7",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "1. Loop com sentinela"), strings.Index(out, "6. Subtração"))
}

func TestRunSelected(t *testing.T) {
	out, err := execute(t, "a\nb\nc\n", "run", "subtract", "password")
	require.NoError(t, err)

	assert.Contains(t, out, "1. Subtração")
	assert.Contains(t, out, "2. Verificação de senha")
	assert.Contains(t, out, "Acesso bloqueado!")
	assert.NotContains(t, out, "Lista fixa")
}

func TestRunUnknownDemo(t *testing.T) {
	_, err := execute(t, "", "run", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown demo: nope")
	assert.Contains(t, err.Error(), "countdown")
}

func TestRunRequiresName(t *testing.T) {
	_, err := execute(t, "", "run")
	assert.Error(t, err)
}

func TestRunWithClosedInputStillCompletes(t *testing.T) {
	out, err := execute(t, "", "run", "countdown", "fixed-list")
	require.NoError(t, err)
	assert.Contains(t, out, "Números da lista fixa:")
	assert.NotContains(t, out, "Fim do loop")
}

func TestList(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)

	for _, name := range demoNames() {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, len(demoNames()), strings.Count(out, "\n"))
}

func TestSelectDemosKeepsOrder(t *testing.T) {
	demos, err := selectDemos([]string{"text", "countdown", "text"})
	require.NoError(t, err)
	require.Len(t, demos, 3)
	assert.Equal(t, "text", demos[0].Name)
	assert.Equal(t, "countdown", demos[1].Name)
	assert.Equal(t, "text", demos[2].Name)
}
