package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	noColor bool
)

// rootCmd starts the dashboard when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "rammon",
	Short: "Terminal RAM monitor with one-key memory cleanup",
	Long: `rammon shows live RAM and page file usage and runs Sysinternals RAMMap
to empty working sets, standby lists and modified page lists.

Memory actions can be run by hand from the dashboard or fired automatically
when RAM usage crosses a threshold.

Keyboard shortcuts:
  up/k, down/j  Select an action
  enter         Run the selected action
  1-5           Run an action directly
  A             Cycle the automatic action
  T             Raise the automatic threshold (wraps at 95%)
  ?             Show help
  q / Ctrl+C    Quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/rammon/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Config returns the --config flag value.
func Config() string {
	return cfgFile
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError renders err for the terminal. Structured errors carry their
// own layout; unknown commands get a pointer to --help.
func printError(w io.Writer, err error) {
	var rmErr *errors.Error
	if errors.As(err, &rmErr) {
		fmt.Fprint(w, ui.ErrorStyle().Render(rmErr.Error()))
		return
	}

	if isUnknownCommandError(err) {
		name := extractUnknownCommand(err)
		if name != "" {
			fmt.Fprintf(w, "%s Unknown command %q\n\n  Run 'rammon --help' to see available commands.\n",
				ui.ErrorStyle().Render(ui.SymbolFail), name)
			return
		}
	}

	fmt.Fprintf(w, "%s %v\n", ui.ErrorStyle().Render(ui.SymbolFail), err)
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's error.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
