package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/helper"
	"github.com/rileyhilliard/rammon/internal/logger"
	"github.com/rileyhilliard/rammon/internal/monitor"
	"github.com/rileyhilliard/rammon/internal/ui"
	"github.com/spf13/cobra"
)

// newDispatcher builds the dispatcher for one-shot runs; tests replace it.
var newDispatcher = func(cfg config.HelperConfig) monitor.Dispatcher {
	return helper.New(cfg, helper.WithLogger(logger.NewEnvLogger("[helper]")))
}

// runCmd performs a single memory action without the dashboard.
var runCmd = &cobra.Command{
	Use:   "run <action>",
	Short: "Run one memory action and exit",
	Long: `Download RAMMap if needed and run a single memory action.

The action can be given by name, by its dashboard hotkey, or by its RAMMap
switch. Names are matched case-insensitively.

Examples:
  rammon run 4
  rammon run "Empty Standby List"
  rammon run -- -Et`,
	Args: cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return action.Names(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseAction(args[0])
		if err != nil {
			return err
		}
		cfg, messages := config.NewStore(Config()).Load()
		for _, m := range messages {
			if m.IsError {
				ui.PrintWarning(m.Text)
			}
		}
		return runAction(cmd.Context(), cmd.OutOrStdout(), newDispatcher(cfg.Helper), a, cfg.Helper.Timeout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// parseAction resolves a name, hotkey digit or RAMMap switch.
func parseAction(arg string) (action.Action, error) {
	arg = strings.TrimSpace(arg)

	if a, ok := action.Parse(arg); ok {
		return a, nil
	}
	if len(arg) == 1 {
		if a, ok := action.FromKey(rune(arg[0])); ok {
			return a, nil
		}
	}
	for _, a := range action.All() {
		if strings.EqualFold(a.String(), arg) || a.Parameter() == arg {
			return a, nil
		}
	}

	return action.Default, errors.New(errors.ErrDispatch,
		fmt.Sprintf("Unknown action %q", arg),
		"Run 'rammon actions' to list them.")
}

// runAction dispatches a once, showing a spinner while it runs.
func runAction(ctx context.Context, w io.Writer, d monitor.Dispatcher, a action.Action, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = config.DefaultHelperTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	spinner := ui.NewActionSpinner(w, a.String(), a.Parameter())
	spinner.Start()

	err := monitor.ExecuteWithProgress(ctx, d, a, func(p monitor.Phase) {
		spinner.SetPhase(p.String())
	})
	spinner.Finish(err)
	return err
}
