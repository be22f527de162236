package doctor

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// TerminalCheck verifies that stdout is an interactive terminal, which the
// dashboard needs for its alternate screen.
type TerminalCheck struct {
	// IsTerminal defaults to term.IsTerminal on stdout.
	IsTerminal func() bool
	// Size defaults to term.GetSize on stdout.
	Size func() (int, int, error)
}

const (
	minTerminalWidth  = 40
	minTerminalHeight = 24
)

func (c *TerminalCheck) Name() string     { return "terminal" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run() CheckResult {
	isTerm := c.IsTerminal
	if isTerm == nil {
		isTerm = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}
	size := c.Size
	if size == nil {
		size = func() (int, int, error) { return term.GetSize(int(os.Stdout.Fd())) }
	}

	if !isTerm() {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "stdout is not a terminal",
			Suggestion: "Run rammon directly in a terminal, not through a pipe or redirect",
		}
	}

	w, h, err := size()
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "Interactive terminal (size unknown)",
		}
	}

	if w < minTerminalWidth || h < minTerminalHeight {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    sizeMessage(w, h),
			Suggestion: "The dashboard needs at least 40x24; some panels will be cut off",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: sizeMessage(w, h),
	}
}

func (c *TerminalCheck) Fix() error {
	return nil
}

func sizeMessage(w, h int) string {
	return fmt.Sprintf("Interactive terminal %dx%d", w, h)
}
