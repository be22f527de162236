package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Braille frames, coloured in turn from GradientColors.
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinnerInterval = 80 * time.Millisecond

// ActionSpinner shows one memory action in flight on a single line,
//
//	⣾ Empty Standby List (-Et): preparing RAMMap...
//
// and replaces it with the outcome once the action finishes.
type ActionSpinner struct {
	mu      sync.Mutex
	out     io.Writer
	name    string
	param   string
	phase   string
	frame   int
	started time.Time
	drawn   int // visible width of the line currently on screen
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewActionSpinner creates a spinner for the action name and its RAMMap
// switch, writing to out.
func NewActionSpinner(out io.Writer, name, parameter string) *ActionSpinner {
	return &ActionSpinner{
		out:     out,
		name:    name,
		param:   parameter,
		started: time.Now(),
	}
}

// Start draws the first frame and animates until Finish.
func (s *ActionSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.started = time.Now()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	s.draw()

	go s.animate(s.stop, s.done)
}

// SetPhase changes the step shown after the action.
func (s *ActionSpinner) SetPhase(phase string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	if s.running {
		s.draw()
	}
}

// Finish stops the animation and prints the outcome with the elapsed time.
// A failure names the phase it happened in.
func (s *ActionSpinner) Finish(err error) {
	s.mu.Lock()
	if s.running {
		s.running = false
		close(s.stop)
		done := s.done
		s.mu.Unlock()
		<-done
		s.mu.Lock()
	}
	defer s.mu.Unlock()

	s.clear()
	elapsed := MutedStyle().Render(formatElapsed(time.Since(s.started)))

	if err == nil {
		fmt.Fprintf(s.out, "%s %s %s\n", SuccessStyle().Render(SymbolSuccess), s.title(), elapsed)
		return
	}
	outcome := "failed"
	if s.phase != "" {
		outcome += " while " + s.phase
	}
	fmt.Fprintf(s.out, "%s %s %s %s\n", ErrorStyle().Render(SymbolFail), s.title(), outcome, elapsed)
}

func (s *ActionSpinner) animate(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.draw()
			s.mu.Unlock()
		}
	}
}

func (s *ActionSpinner) title() string {
	return s.name + " " + MutedStyle().Render("("+s.param+")")
}

// draw repaints the in-flight line. Callers hold mu.
func (s *ActionSpinner) draw() {
	color := GradientColors[(s.frame/2)%len(GradientColors)]
	line := lipgloss.NewStyle().Foreground(color).Render(spinnerFrames[s.frame]) + " " + s.title()
	if s.phase != "" {
		line += ": " + s.phase
	}
	line += "..."

	s.clear()
	fmt.Fprint(s.out, line)
	s.drawn = lipgloss.Width(line)
}

// clear blanks the in-flight line, if any. Callers hold mu.
func (s *ActionSpinner) clear() {
	if s.drawn == 0 {
		return
	}
	fmt.Fprint(s.out, "\r"+strings.Repeat(" ", s.drawn)+"\r")
	s.drawn = 0
}

// formatElapsed renders short runs with extra precision ("0.04s", "1.2s").
func formatElapsed(d time.Duration) string {
	if d < 100*time.Millisecond {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
