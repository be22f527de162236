package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/ui"
	"github.com/spf13/cobra"
)

// configCmd groups the settings subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change settings",
	Long: `Inspect or change the settings file.

The dashboard writes auto_threshold and auto_action back whenever they are
changed with T or A. Other keys and comments in the file are preserved.

Environment variables override the file, for example:
  RAMMON_AUTO_THRESHOLD=85 rammon`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), config.NewStore(Config()))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Keys:
  auto_threshold  RAM usage percentage (20-95) that fires the auto action
  auto_action     action name or hotkey 1-5

Examples:
  rammon config set auto_threshold 85
  rammon config set auto_action 4`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		if len(args) == 1 && args[0] == config.KeyAutoAction {
			return action.Names(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(cmd.OutOrStdout(), config.NewStore(Config()), args[0], args[1])
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the automatic execution settings interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editConfig(cmd.OutOrStdout(), config.NewStore(Config()))
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configEditCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig prints the file location, the effective values and any load
// problems.
func showConfig(w io.Writer, store *config.Store) error {
	cfg, messages := store.Load()

	source := store.Path()
	if !store.Exists() {
		source += " (not created yet, showing defaults)"
	}
	fmt.Fprintf(w, "%s\n\n", ui.MutedStyle().Render(source))

	fmt.Fprint(w, ui.RenderKeyValues([][2]string{
		{config.KeyAutoThreshold, strconv.FormatFloat(cfg.AutoThreshold, 'g', -1, 64)},
		{config.KeyAutoAction, cfg.AutoAction},
		{"helper.path", cfg.Helper.Path},
		{"helper.url", cfg.Helper.URL},
		{"helper.timeout", cfg.Helper.Timeout.String()},
	}))

	printMessages(w, messages)
	return nil
}

// setConfig applies one key and saves.
func setConfig(w io.Writer, store *config.Store, key, value string) error {
	cfg, _ := store.Load()
	if err := config.Set(cfg, key, value); err != nil {
		return err
	}
	return save(w, store, cfg)
}

// editConfig runs a form for the threshold and action, then saves.
func editConfig(w io.Writer, store *config.Store) error {
	cfg, _ := store.Load()

	threshold := cfg.AutoThreshold
	var thresholds []huh.Option[float64]
	for t := config.MinThreshold; t <= config.MaxThreshold; t += config.ThresholdStep {
		thresholds = append(thresholds, huh.NewOption(fmt.Sprintf("%g%%", t), t))
	}

	selected := cfg.Action()
	var actions []huh.Option[action.Action]
	for _, a := range action.All() {
		actions = append(actions, huh.NewOption(fmt.Sprintf("[%c] %s", a.Key(), a), a))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Auto execution threshold").
				Description("RAM usage that fires the automatic action").
				Options(thresholds...).
				Value(&threshold),
			huh.NewSelect[action.Action]().
				Title("Auto execution action").
				Options(actions...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't get your selection",
			"Try again or use: rammon config set <key> <value>")
	}

	cfg.AutoThreshold = threshold
	cfg.AutoAction = selected.String()
	return save(w, store, cfg)
}

// save writes cfg and reports the outcome.
func save(w io.Writer, store *config.Store, cfg *config.Config) error {
	messages, err := store.Save(cfg)
	printMessages(w, messages)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Saved %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), store.Path())
	return nil
}

// printMessages writes load or validation messages, errors highlighted.
func printMessages(w io.Writer, messages []config.Message) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, m := range messages {
		if m.IsError {
			fmt.Fprintf(w, "%s %s\n", ui.WarningStyle().Render(ui.SymbolWarning), m.Text)
		} else {
			fmt.Fprintf(w, "  %s\n", ui.MutedStyle().Render(m.Text))
		}
	}
}
