package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rammon/internal/action"
)

const (
	minPanelWidth   = 40
	maxPanelWidth   = 100
	defaultLogLines = 10
	minLogLines     = 3
	selectedMarker  = ">> "
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	width := m.panelWidth()

	sections := []string{
		m.renderHeader(),
		m.renderRAM(width),
	}
	if m.hasSample && m.snapshot.HasSwap() {
		sections = append(sections, m.renderSwap(width))
	}
	sections = append(sections,
		m.renderActions(width),
		m.renderAuto(width),
	)

	footer := m.renderFooter()
	used := lipgloss.Height(strings.Join(sections, "\n")) + lipgloss.Height(footer)
	sections = append(sections, m.renderLogs(width, m.logLines(used)), footer)

	return strings.Join(sections, "\n")
}

func (m Model) panelWidth() int {
	w := m.width
	if w > maxPanelWidth {
		w = maxPanelWidth
	}
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

// logLines returns how many log entries fit below used lines of chrome.
func (m Model) logLines(used int) int {
	if m.height <= 0 {
		return defaultLogLines
	}
	// Two border lines around the log panel.
	n := m.height - used - 2
	if n < minLogLines {
		n = minLogLines
	}
	return n
}

// renderHeader renders the title with the current cadence.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("RAM Monitor")

	stats := MutedStyle.Render(fmt.Sprintf(" | %s | tick %dms", m.activity.State(), m.activity.Interval().Milliseconds()))

	return HeaderStyle.Render(title + stats)
}

// gaugeLabel formats a usage pair as "used / total (percent)".
func gaugeLabel(u Usage) string {
	return fmt.Sprintf("%.1fGB / %.1fGB (%.1f%%)", u.UsedGB(), u.TotalGB(), u.Percent())
}

func (m Model) renderRAM(width int) string {
	if !m.hasSample {
		return strings.Join([]string{
			SectionHeader("RAM", "--", width),
			SectionContentLine(MutedStyle.Render("Sampling..."), width),
			SectionFooter(width),
		}, "\n")
	}

	inner := width - 4
	ram := m.snapshot.RAM
	lines := []string{
		SectionHeader("RAM", gaugeLabel(ram), width),
		SectionContentLine(RenderGauge(ram.Percent(), inner), width),
	}
	if spark := RenderSparkline(m.history.RAM(inner), inner); spark != "" {
		lines = append(lines, SectionContentLine(spark, width))
	}
	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

func (m Model) renderSwap(width int) string {
	swap := m.snapshot.Swap
	return strings.Join([]string{
		SectionHeader("Page File", gaugeLabel(swap), width),
		SectionContentLine(RenderGauge(swap.Percent(), width-4), width),
		SectionFooter(width),
	}, "\n")
}

func (m Model) renderActions(width int) string {
	lines := []string{SectionHeader("Memory Management", "enter/1-5", width)}

	for _, a := range action.All() {
		row := fmt.Sprintf("[%c] %s", a.Key(), a)
		if a == m.selection.Action() {
			row = SelectedStyle.Render(selectedMarker + row)
		} else {
			row = LabelStyle.Render(strings.Repeat(" ", len(selectedMarker)) + row)
		}
		lines = append(lines, SectionContentLine(row, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

func (m Model) renderAuto(width int) string {
	threshold := m.auto.Threshold()
	status := ValueStyle.Render("armed")
	if remaining, ok := m.auto.CoolingDown(m.now()); ok {
		status = lipgloss.NewStyle().Foreground(ColorWarning).
			Render("cooling down (" + remaining.Round(time.Second).String() + ")")
	}

	lines := []string{
		SectionHeader("Auto Execution", "", width),
		SectionContentLine(LabelStyle.Render("Threshold: ")+
			MetricStyle(threshold).Render(fmt.Sprintf("%g%%", threshold))+
			MutedStyle.Render(" (T to change)"), width),
		SectionContentLine(LabelStyle.Render("Action:    ")+
			ValueStyle.Render(m.auto.Action().String())+
			MutedStyle.Render(" (A to change)"), width),
		SectionContentLine(LabelStyle.Render("Status:    ")+status, width),
		SectionFooter(width),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLogs(width, rows int) string {
	entries := m.log.Entries()
	lines := []string{SectionHeader("Logs", fmt.Sprintf("%d", len(entries)), width)}

	if len(entries) == 0 {
		lines = append(lines, SectionContentLine(MutedStyle.Render("No events yet"), width))
	}

	now := m.now()
	for i, e := range entries {
		if i >= rows {
			break
		}
		style := LogInfoStyle
		if e.IsError {
			style = LogErrorStyle
		}
		line := MutedStyle.Render("["+FormatAge(now.Sub(e.Timestamp))+"]") + " " + style.Render(e.Message)
		lines = append(lines, SectionContentLine(line, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(m.keys))
}
