package monitor

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rammon/internal/config"
)

const gib = 1024 * 1024 * 1024

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeSource reports a 16 GiB host at a settable usage percentage.
type fakeSource struct {
	percent   float64
	swapTotal uint64
	err       error
	calls     int
}

func (s *fakeSource) Sample(context.Context) (Snapshot, error) {
	s.calls++
	if s.err != nil {
		return Snapshot{}, s.err
	}
	total := uint64(16 * gib)
	return Snapshot{
		RAM:  Usage{Used: uint64(float64(total) * s.percent / 100), Total: total},
		Swap: Usage{Used: s.swapTotal / 4, Total: s.swapTotal},
	}, nil
}

type fakeDispatcher struct {
	mu         sync.Mutex
	ensureErr  error
	spawnErr   error
	panicWith  any
	parameters []string
}

func (d *fakeDispatcher) EnsureAvailable(context.Context) error {
	if d.panicWith != nil {
		panic(d.panicWith)
	}
	return d.ensureErr
}

func (d *fakeDispatcher) Spawn(_ context.Context, parameter string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parameters = append(d.parameters, parameter)
	return d.spawnErr
}

func (d *fakeDispatcher) spawned() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.parameters...)
}

type fakeStore struct {
	saved    []config.Config
	messages []config.Message
	err      error
}

func (s *fakeStore) Save(cfg *config.Config) ([]config.Message, error) {
	s.saved = append(s.saved, *cfg)
	return s.messages, s.err
}

// drain runs cmd and any batched commands, returning every message produced.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
