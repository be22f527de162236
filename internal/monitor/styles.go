package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	// Semantic colors for usage
	ColorHealthy  = lipgloss.Color("#39FF14")
	ColorWarning  = lipgloss.Color("#FFAA00")
	ColorCritical = lipgloss.Color("#FF0055")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = lipgloss.Color("#FF2E97")
	ColorAccentDim = lipgloss.Color("#BF40FF")
	ColorGraph     = lipgloss.Color("#00FFFF")
)

// Usage severity thresholds, in percent.
const (
	WarningThreshold  = 75.0
	CriticalThreshold = 90.0
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LogErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)

	LogInfoStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)
)

// MetricColor returns green below the warning threshold, amber up to the
// critical threshold and red at or above it.
func MetricColor(percent float64) lipgloss.Color {
	switch {
	case percent >= CriticalThreshold:
		return ColorCritical
	case percent >= WarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyle returns a style with the appropriate foreground color for the metric.
func MetricStyle(percent float64) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColor(percent))
}

// SectionHeader renders a section header with the title on the left and value on the right.
// Format: ╭─ Title ────────────────────────────────────── Value ╮
func SectionHeader(title, value string, width int) string {
	if width < 10 {
		width = 10
	}

	// Left: "╭─ " (3 chars) + title + " " (1 char)
	leftWidth := 3 + lipgloss.Width(title) + 1

	// Right: " " (1 char) + value + " ╮" (2 chars)
	rightWidth := 1 + lipgloss.Width(value) + 2

	fillWidth := width - leftWidth - rightWidth
	if fillWidth < 1 {
		fillWidth = 1
	}

	middle := strings.Repeat("─", fillWidth)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorGraph).Bold(true)

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+middle+" ") +
		valueStyle.Render(value) +
		borderStyle.Render(" ╮")
}

// SectionFooter renders the bottom border of a section.
// Format: ╰────────────────────────────────────────────────────╯
func SectionFooter(width int) string {
	if width < 2 {
		width = 2
	}

	middle := strings.Repeat("─", width-2)

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	return borderStyle.Render("╰" + middle + "╯")
}

// SectionContentLine renders a content line with left and right borders, properly padded to width.
// Content wider than the section is truncated.
// Format: │ content                                              │
func SectionContentLine(content string, width int) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)

	// Inner width is total width minus "│ " on the left and " │" on the right
	innerWidth := width - 4

	if lipgloss.Width(content) > innerWidth {
		content = lipgloss.NewStyle().MaxWidth(innerWidth).Render(content)
	}

	padding := innerWidth - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
