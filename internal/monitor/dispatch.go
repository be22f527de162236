package monitor

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/errors"
)

// Dispatcher acquires and launches the external memory helper.
// Spawn starts the process and returns without waiting for it to exit.
type Dispatcher interface {
	EnsureAvailable(ctx context.Context) error
	Spawn(ctx context.Context, parameter string) error
}

// dispatchResultMsg reports the outcome of one dispatch back to the model.
type dispatchResultMsg struct {
	action action.Action
	err    error
}

// Phase is one step of Execute.
type Phase int

const (
	// PhaseAcquire makes RAMMap available, downloading it if missing.
	PhaseAcquire Phase = iota
	// PhaseSpawn starts RAMMap with the action's switch.
	PhaseSpawn
)

func (p Phase) String() string {
	switch p {
	case PhaseAcquire:
		return "preparing RAMMap"
	case PhaseSpawn:
		return "starting RAMMap64"
	}
	return "unknown"
}

// Execute makes the helper available and spawns it for a. Failures are
// structured errors whose Short form is suitable for the event log.
func Execute(ctx context.Context, d Dispatcher, a action.Action) error {
	return ExecuteWithProgress(ctx, d, a, nil)
}

// ExecuteWithProgress is Execute, calling progress (when non-nil) as each
// phase begins.
func ExecuteWithProgress(ctx context.Context, d Dispatcher, a action.Action, progress func(Phase)) error {
	if progress == nil {
		progress = func(Phase) {}
	}

	progress(PhaseAcquire)
	if err := d.EnsureAvailable(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrHelper,
			"Failed to download RAMMap",
			"Check your network connection or set helper.path in the config")
	}

	progress(PhaseSpawn)
	if err := d.Spawn(ctx, a.Parameter()); err != nil {
		return errors.WrapWithCode(err, errors.ErrDispatch,
			"Failed to execute RAMMap64",
			"RAMMap needs to run as Administrator on Windows")
	}
	return nil
}

// dispatchCmd runs Execute off the update loop. The command always yields
// exactly one dispatchResultMsg, including when the dispatcher panics.
func dispatchCmd(d Dispatcher, a action.Action, timeout time.Duration) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = dispatchResultMsg{
					action: a,
					err: errors.WrapWithCode(fmt.Errorf("panic: %v", r), errors.ErrDispatch,
						"Failed to execute RAMMap64", ""),
				}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return dispatchResultMsg{action: a, err: Execute(ctx, d, a)}
	}
}
