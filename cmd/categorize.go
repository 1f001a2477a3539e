package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/tidy/internal/rules"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize <filename>...",
	Short: "Print the category for each filename",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := rules.Default()
		for _, name := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, table.Categorize(name))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
}
