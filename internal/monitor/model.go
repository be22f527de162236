package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rammon/internal/action"
	"github.com/rileyhilliard/rammon/internal/config"
	"github.com/rileyhilliard/rammon/internal/errors"
	"github.com/rileyhilliard/rammon/internal/logger"
)

// Timings collects every duration that shapes the loop.
type Timings struct {
	ActiveTick     time.Duration
	IdleTick       time.Duration
	IdleAfter      time.Duration
	NavCooldown    time.Duration
	ActionCooldown time.Duration
	AutoCooldown   time.Duration
}

// DefaultTimings returns the standard cadence and cooldowns.
func DefaultTimings() Timings {
	return Timings{
		ActiveTick:     25 * time.Millisecond,
		IdleTick:       3000 * time.Millisecond,
		IdleAfter:      30 * time.Second,
		NavCooldown:    150 * time.Millisecond,
		ActionCooldown: time.Second,
		AutoCooldown:   300 * time.Second,
	}
}

// SettingsStore persists changes made from the dashboard.
type SettingsStore interface {
	Save(cfg *config.Config) ([]config.Message, error)
}

// Option customizes a Model.
type Option func(*Model)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithTimings overrides the default cadence and cooldowns.
func WithTimings(t Timings) Option {
	return func(m *Model) { m.timings = t }
}

// WithStore persists threshold and action changes.
func WithStore(s SettingsStore) Option {
	return func(m *Model) { m.store = s }
}

// WithLogCapacity bounds the event log.
func WithLogCapacity(n int) Option {
	return func(m *Model) { m.logCapacity = n }
}

// WithStartupMessages seeds the event log, typically with config load results.
func WithStartupMessages(msgs []config.Message) Option {
	return func(m *Model) { m.startup = append(m.startup, msgs...) }
}

// WithLogger sets the debug logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// Model is the Bubble Tea model for the RAM dashboard. All state is
// mutated from Update; dispatch work runs in commands and reports back
// through dispatchResultMsg.
type Model struct {
	source     Source
	dispatcher Dispatcher
	store      SettingsStore
	cfg        config.Config
	logger     logger.Logger
	now        func() time.Time
	timings    Timings

	log        *EventLog
	history    *History
	selection  action.Selection
	auto       *AutoTrigger
	activity   *ActivityTracker
	navGate    *Debouncer
	actionGate *Debouncer

	snapshot      Snapshot
	hasSample     bool
	lastSampleErr string

	// gen identifies the live tick chain; ticks from older chains are dropped.
	gen int

	keys     KeyMap
	help     help.Model
	width    int
	height   int
	showHelp bool
	quitting bool

	logCapacity int
	startup     []config.Message
}

// tickMsg drives sampling, idle detection and the auto trigger.
type tickMsg struct {
	gen int
}

// NewModel creates a dashboard over source and dispatcher, configured by cfg.
func NewModel(source Source, dispatcher Dispatcher, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := Model{
		source:      source,
		dispatcher:  dispatcher,
		cfg:         *cfg,
		logger:      logger.Noop(),
		now:         time.Now,
		timings:     DefaultTimings(),
		history:     NewHistory(DefaultHistorySize),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		width:       80,
		logCapacity: DefaultLogCapacity,
	}

	for _, opt := range opts {
		opt(&m)
	}

	now := m.now()
	m.log = NewEventLog(m.logCapacity, m.now)
	m.activity = NewActivityTracker(now, m.timings)
	m.navGate = NewDebouncer(m.timings.NavCooldown)
	m.actionGate = NewDebouncer(m.timings.ActionCooldown)
	m.auto = NewAutoTrigger(m.cfg.AutoThreshold, m.cfg.Action(), m.timings.AutoCooldown)

	for _, msg := range m.startup {
		m.log.Add(msg.Text, msg.IsError)
	}

	return m
}

// Init samples immediately and starts the tick chain.
func (m Model) Init() tea.Cmd {
	gen := m.gen
	return func() tea.Msg { return tickMsg{gen: gen} }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		cmd := m.tick()
		return m, tea.Batch(m.tickCmd(), cmd)

	case dispatchResultMsg:
		m.recordDispatch(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderDashboard()
}

// tick runs one sampling step: sample, re-check idleness, then the auto
// trigger. The trigger runs in every activity state.
func (m *Model) tick() tea.Cmd {
	now := m.now()
	m.sample(now)

	if text, ok := m.activity.Evaluate(now); ok {
		m.log.Add(text, false)
	}

	if !m.hasSample {
		return nil
	}
	if a, fire := m.auto.Check(m.snapshot.RAM.Percent(), now); fire {
		m.logger.Info("auto trigger fired at %.1f%%: %s", m.snapshot.RAM.Percent(), a)
		return m.dispatch(a)
	}
	return nil
}

// sample refreshes the snapshot. A failing source keeps the previous
// snapshot and logs each distinct error once.
func (m *Model) sample(now time.Time) {
	snap, err := m.source.Sample(context.Background())
	if err != nil {
		text := errors.Short(err)
		if text != m.lastSampleErr {
			m.lastSampleErr = text
			m.log.Add(text, true)
		}
		return
	}

	m.lastSampleErr = ""
	if snap.At.IsZero() {
		snap.At = now
	}
	m.snapshot = snap
	m.hasSample = true
	m.history.Push(snap)
}

// tickCmd schedules the next tick for the live chain at the current interval.
func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.activity.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// handleKey routes one key press. Every key resets the idle timer before
// any debounce decision is made.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	var cmds []tea.Cmd

	if text, ok := m.activity.Touch(now); ok {
		m.log.Add(text, false)
		// Restart the chain so the fast cadence applies immediately.
		m.gen++
		cmds = append(cmds, m.tickCmd())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Up):
		if m.navGate.Allow(now) {
			m.selection.Up()
		}

	case key.Matches(msg, m.keys.Down):
		if m.navGate.Allow(now) {
			m.selection.Down()
		}

	case key.Matches(msg, m.keys.Confirm):
		if m.actionGate.Allow(now) {
			cmds = append(cmds, m.dispatch(m.selection.Action()))
		}

	case key.Matches(msg, m.keys.Hotkey):
		if a, ok := hotkeyAction(msg); ok && m.actionGate.Allow(now) {
			cmds = append(cmds, m.dispatch(a))
		}

	case key.Matches(msg, m.keys.CycleAction):
		if m.navGate.Allow(now) {
			a := m.auto.CycleAction()
			m.log.Infof("Auto-execution action changed to: %s", a)
			m.cfg.AutoAction = a.String()
			m.persist()
		}

	case key.Matches(msg, m.keys.CycleThreshold):
		if m.navGate.Allow(now) {
			t := m.auto.CycleThreshold()
			m.log.Infof("Auto-execution threshold changed to: %g%%", t)
			m.cfg.AutoThreshold = t
			m.persist()
		}
	}

	return m, tea.Batch(cmds...)
}

// dispatch logs the start of an action and returns the command that runs it.
func (m *Model) dispatch(a action.Action) tea.Cmd {
	m.log.Infof("Executing: %s...", a)
	if m.dispatcher == nil {
		return func() tea.Msg {
			return dispatchResultMsg{action: a, err: errors.New(errors.ErrDispatch,
				"Failed to execute RAMMap64", "No helper configured")}
		}
	}
	timeout := m.cfg.Helper.Timeout
	if timeout <= 0 {
		timeout = config.DefaultHelperTimeout
	}
	return dispatchCmd(m.dispatcher, a, timeout)
}

// recordDispatch turns a dispatch outcome into exactly one log entry.
func (m *Model) recordDispatch(msg dispatchResultMsg) {
	if msg.err != nil {
		m.logger.Warn("dispatch %s failed: %v", msg.action, msg.err)
		m.log.Add(errors.Short(msg.err), true)
		return
	}
	m.log.Infof("Successfully executed: %s", msg.action)
}

// persist saves the current settings, logging validation notes and failures.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	cfg := m.cfg
	messages, err := m.store.Save(&cfg)
	for _, msg := range messages {
		m.log.Add(msg.Text, msg.IsError)
	}
	if err != nil {
		m.log.Add("Failed to save settings: "+errors.Short(err), true)
	}
}

// Snapshot returns the most recent sample and whether one exists.
func (m Model) Snapshot() (Snapshot, bool) {
	return m.snapshot, m.hasSample
}

// Entries returns the event log, newest first.
func (m Model) Entries() []LogEntry {
	return m.log.Entries()
}

// Selected returns the highlighted action.
func (m Model) Selected() action.Action {
	return m.selection.Action()
}

// Activity returns the current activity state.
func (m Model) Activity() ActivityState {
	return m.activity.State()
}

// Interval returns the current tick interval.
func (m Model) Interval() time.Duration {
	return m.activity.Interval()
}

// AutoThreshold returns the auto trigger threshold.
func (m Model) AutoThreshold() float64 {
	return m.auto.Threshold()
}

// AutoAction returns the auto trigger action.
func (m Model) AutoAction() action.Action {
	return m.auto.Action()
}

// Quitting reports whether the model has received Quit.
func (m Model) Quitting() bool {
	return m.quitting
}
