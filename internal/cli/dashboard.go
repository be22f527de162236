package cli

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/helper"
	"github.com/rileyhilliard/rammon/internal/logger"
	"github.com/rileyhilliard/rammon/internal/monitor"
	"golang.org/x/term"
)

// debugLogFile receives log output while the dashboard owns the terminal.
const debugLogFile = "rammon-debug.log"

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// dashboardCommand runs the interactive dashboard until the user quits.
func dashboardCommand() error {
	if !stdoutIsTerminal() {
		return errors.New(errors.ErrTerminal,
			"The dashboard needs an interactive terminal",
			"Run rammon directly in a terminal, or use 'rammon run <action>' from scripts.")
	}

	restore, err := captureLog()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't open the debug log",
			"Unset "+logger.DebugEnv+" or check permissions in the current directory.")
	}
	defer restore()

	model := newDashboardModel(config.NewStore(Config()))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Try a different terminal, or run with "+logger.DebugEnv+"=1 and check "+debugLogFile)
	}
	return nil
}

// captureLog points the standard logger away from the terminal while the
// dashboard owns it: into debugLogFile when RAMMON_DEBUG is set, otherwise
// nowhere. The returned func restores the previous output.
func captureLog() (func(), error) {
	out, flags, prefix := log.Writer(), log.Flags(), log.Prefix()
	restore := func() {
		log.SetOutput(out)
		log.SetFlags(flags)
		log.SetPrefix(prefix)
	}

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(debugLogFile, "rammon")
	if err != nil {
		restore()
		return nil, err
	}
	return func() {
		f.Close()
		restore()
	}, nil
}

// newDashboardModel wires the dashboard to the local memory source, the
// RAMMap helper and the settings store. Load messages seed the event log.
func newDashboardModel(store *config.Store) monitor.Model {
	cfg, messages := store.Load()

	h := helper.New(cfg.Helper, helper.WithLogger(logger.NewEnvLogger("[helper]")))

	return monitor.NewModel(monitor.NewSystemSource(), h, cfg,
		monitor.WithStore(store),
		monitor.WithStartupMessages(messages),
		monitor.WithLogger(logger.NewEnvLogger("[monitor]")),
	)
}
