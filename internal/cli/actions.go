package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/ui"
	"github.com/spf13/cobra"
)

// actionsCmd lists the memory actions.
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the available memory actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.NewStore(Config()).Load()
		return printActions(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}

// printActions renders the catalog, marking the automatic action.
func printActions(w io.Writer, cfg *config.Config) error {
	columns := []ui.TableColumn{
		{Title: "Key", Width: 5},
		{Title: "Action", Width: 32},
		{Title: "Switch", Width: 8},
		{Title: "Auto", Width: 6},
	}

	auto := cfg.Action()
	rows := make([][]string, 0, action.Count)
	for _, a := range action.All() {
		mark := ""
		if a == auto {
			mark = ui.SymbolComplete
		}
		rows = append(rows, []string{string(a.Key()), a.String(), a.Parameter(), mark})
	}

	_, err := fmt.Fprintln(w, ui.RenderSimpleTable(columns, rows))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nAuto execution fires at %g%% RAM usage.\n", cfg.AutoThreshold)
	return err
}
