package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentic-research/tidy/internal/report"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List the files in a directory grouped by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args)
		if err != nil {
			return err
		}

		grouping := newOrganizer().Scan(dir)
		log.WithFields(logrus.Fields{"dir": dir, "files": grouping.Total()}).Debug("scan complete")

		if scanJSON {
			out, err := report.JSON(grouping)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.RenderGrouping(grouping, useColor(cmd.OutOrStdout())))
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the grouping as JSON")
	rootCmd.AddCommand(scanCmd)
}
