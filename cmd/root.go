package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/agentic-research/tidy/internal/config"
	"github.com/agentic-research/tidy/internal/organize"
	"github.com/agentic-research/tidy/internal/rules"
)

var (
	cfgPath string
	cfg     *config.Config

	// log writes to stderr so stdout stays clean for command output and the
	// MCP stdio transport.
	log = logrus.New()
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Path to config file (default ~/.agentic-research/tidy/tidy.hcl)")
}

var rootCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Tidy: sort directory files into category folders by extension",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		log.SetOutput(os.Stderr)
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(lvl)
		return nil
	},
}

// newOrganizer returns the engine over the host filesystem.
func newOrganizer() *organize.Organizer {
	return organize.New(osfs.New("/"), rules.Default())
}

// targetDir picks the directory to operate on: the positional argument if
// given, the configured default otherwise.
func targetDir(args []string) (string, error) {
	if len(args) == 0 {
		return cfg.DefaultDir, nil
	}
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve directory %s: %w", args[0], err)
	}
	return dir, nil
}

// useColor reports whether w is a terminal worth coloring.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
