package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/swantron/controlflow/internal/console"
	"github.com/swantron/controlflow/internal/demo"
)

var runCmd = &cobra.Command{
	Use:   "run <demo>...",
	Short: "Run selected exercises",
	Long: `Run one or more exercises by name, in the order given.
Use "controlflow list" to see the available names.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelected,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	return runDemos(cmd, demo.All())
}

func runSelected(cmd *cobra.Command, args []string) error {
	demos, err := selectDemos(args)
	if err != nil {
		return err
	}
	return runDemos(cmd, demos)
}

func selectDemos(names []string) ([]demo.Demo, error) {
	demos := make([]demo.Demo, 0, len(names))
	for _, name := range names {
		d, ok := demo.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown demo: %s (available: %s)", name, strings.Join(demoNames(), ", "))
		}
		demos = append(demos, d)
	}
	return demos, nil
}

func demoNames() []string {
	all := demo.All()
	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.Name)
	}
	return names
}

func runDemos(cmd *cobra.Command, demos []demo.Demo) error {
	env := demo.Env{
		In:  newPrompter(cmd),
		Out: console.NewWriterSink(cmd.OutOrStdout()),
	}
	return demo.NewDriver(env, logger).Run(cmd.Context(), demos)
}

// newPrompter uses huh prompts on an interactive stdin and plain line reads
// otherwise. Piped answers are echoed so the transcript shows them.
func newPrompter(cmd *cobra.Command) console.Prompter {
	in := cmd.InOrStdin()
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	if interactive && !plain {
		return console.NewTerminalPrompter()
	}
	return console.NewLinePrompter(in, cmd.OutOrStdout(), !interactive)
}
