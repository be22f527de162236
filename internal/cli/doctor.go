package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/doctor"
	"github.com/rileyhilliard/rammon/internal/helper"
	"github.com/rileyhilliard/rammon/internal/logger"
	"github.com/rileyhilliard/rammon/internal/monitor"
	"github.com/rileyhilliard/rammon/internal/ui"
	"github.com/spf13/cobra"
)

var (
	doctorJSON bool
	doctorFix  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the terminal, memory source and RAMMap helper",
	Long: `Run local diagnostics and report anything that would stop the dashboard
from working.

Checks:
  CONFIG    settings file exists and holds valid values
  TERMINAL  stdout is an interactive terminal of usable size
  MEMORY    RAM and page file usage can be read
  HELPER    RAMMap is supported on this platform and installed

Use --fix to create a default settings file and download RAMMap.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.NewStore(Config())
		return runDoctor(cmd.OutOrStdout(), doctorChecks(store), doctorJSON, doctorFix)
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorChecks builds the full check list. Tests replace it.
var doctorChecks = func(store *config.Store) []doctor.Check {
	cfg, _ := store.Load() // config checks report load problems themselves

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(store)...)
	checks = append(checks, &doctor.TerminalCheck{})
	checks = append(checks, &doctor.MemorySourceCheck{Source: monitor.NewSystemSource()})

	h := helper.New(cfg.Helper, helper.WithLogger(logger.NewEnvLogger("[helper]")))
	checks = append(checks, doctor.NewHelperChecks(h)...)
	return checks
}

// runDoctor runs checks, optionally fixes what it can, and reports.
func runDoctor(w io.Writer, checks []doctor.Check, asJSON, fix bool) error {
	results := doctor.RunAll(checks)
	if fix {
		results = doctor.FixAll(checks, results)
	}

	if asJSON {
		return outputDoctorJSON(w, checks, results)
	}
	outputDoctorText(w, checks, results, fix)
	return nil
}

// groupResults pairs results with their check categories, in report order.
func groupResults(checks []doctor.Check, results []doctor.CheckResult) []CategoryOutput {
	grouped := make(map[string][]doctor.CheckResult)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], results[i])
	}

	var out []CategoryOutput
	for _, cat := range doctor.CategoryOrder {
		if rs, ok := grouped[cat]; ok {
			out = append(out, CategoryOutput{Name: cat, Results: rs})
		}
	}
	return out
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	counts := doctor.CountByStatus(results)
	output := DoctorOutput{
		Categories: groupResults(checks, results),
		Summary: SummaryOutput{
			Pass:     counts[doctor.StatusPass],
			Warn:     counts[doctor.StatusWarn],
			Fail:     counts[doctor.StatusFail],
			Fixable:  doctor.FixableCount(results),
			AllClear: !doctor.HasIssues(results),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult, fixed bool) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("RAM Monitor Diagnostic Report"))
	fmt.Fprintln(w)

	var rows []ui.DoctorCheckRow
	for _, cat := range groupResults(checks, results) {
		for _, r := range cat.Results {
			rows = append(rows, ui.DoctorCheckRow{
				Status:     r.Status.String(),
				Category:   cat.Name,
				Message:    r.Message,
				Suggestion: r.Suggestion,
			})
		}
	}
	fmt.Fprint(w, ui.RenderDoctorTable(rows))

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	if !doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), "Everything looks good")
	} else {
		symbol := ui.WarningStyle().Render(ui.SymbolWarning)
		if doctor.HasFailures(results) {
			symbol = ui.ErrorStyle().Render(ui.SymbolFail)
		}
		fmt.Fprintf(w, "%s %s\n", symbol, doctor.Summary(results))

		if doctor.FixableCount(results) > 0 && !fixed {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  Run with %s to attempt automatic fixes where possible.\n",
				ui.MutedStyle().Render("--fix"))
		}
	}

	fmt.Fprintln(w)
}
