// Package monitor implements the RAM dashboard: a Bubble Tea model that
// samples memory usage, renders gauges, and dispatches RAMMap actions
// manually or automatically.
//
// # Architecture
//
// The package follows The Elm Architecture (Model-Update-View):
//
//   - Model: owns the event log, selection, auto trigger, activity tracker
//     and both input debouncers
//   - Update: processes ticks, key presses and dispatch results
//   - View: renders the current state; it never mutates
//
// # Tick Cycle
//
//  1. tickMsg arrives for the live tick chain
//  2. the Source is sampled; a failure keeps the previous snapshot
//  3. the ActivityTracker re-evaluates idleness
//  4. the AutoTrigger checks the threshold and cooldown
//  5. the next tick is scheduled at 25ms (active) or 3000ms (idle)
//
// A key press while idle restarts the chain at the fast cadence. Ticks
// carry a generation number so the abandoned slow chain is dropped.
//
// # Dispatch
//
// Dispatching logs "Executing: NAME..." immediately, then runs the
// Dispatcher in a command. The command reports back with exactly one
// dispatchResultMsg, which becomes one success or error log entry. The
// helper process itself is never awaited.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	↑/k, ↓/j    - Move selection (150ms debounce)
//	Enter       - Run selected action (1s debounce)
//	1-5         - Run action directly (1s debounce, shared with Enter)
//	A           - Cycle automatic action
//	T           - Raise automatic threshold by 5%, wrapping to 20%
//	?           - Toggle help overlay
package monitor
