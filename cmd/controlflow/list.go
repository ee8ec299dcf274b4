package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swantron/controlflow/internal/console"
	"github.com/swantron/controlflow/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, d := range demo.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %-12s %s\n", i+1, d.Name, console.Styles.Muted.Render(d.Title))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
