package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentic-research/tidy/internal/report"
)

var (
	organizeDryRun bool
	organizeJSON   bool
)

var organizeCmd = &cobra.Command{
	Use:   "organize [dir]",
	Short: "Move files into category folders (use --dry-run to preview)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := targetDir(args)
		if err != nil {
			return err
		}

		res := newOrganizer().Organize(dir, organizeDryRun)
		log.WithFields(logrus.Fields{
			"run_id":  uuid.NewString(),
			"dir":     dir,
			"dry_run": organizeDryRun,
			"moved":   len(res.MovedFiles),
			"errors":  len(res.Errors),
		}).Info("organize complete")

		if organizeJSON {
			out, err := report.JSON(res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.RenderOrganize(res, useColor(cmd.OutOrStdout())))
		return nil
	},
}

func init() {
	organizeCmd.Flags().BoolVarP(&organizeDryRun, "dry-run", "n", false, "Preview changes without moving files")
	organizeCmd.Flags().BoolVar(&organizeJSON, "json", false, "Print the result as JSON")
	rootCmd.AddCommand(organizeCmd)
}
