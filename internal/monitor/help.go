package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(10)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// helpDescriptions expand the short binding help for the overlay.
var helpDescriptions = map[string]string{
	"up":             "Select previous action",
	"down":           "Select next action",
	"run selected":   "Run the selected action",
	"run action":     "Run an action directly",
	"auto action":    "Cycle the automatic action",
	"auto threshold": "Raise the automatic threshold (wraps at 95%)",
	"help":           "Toggle this help",
	"quit":           "Quit",
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, helpTitleStyle.Render("Keyboard Shortcuts"))

	for _, column := range m.keys.FullHelp() {
		for _, b := range column {
			h := b.Help()
			desc := h.Desc
			if long, ok := helpDescriptions[h.Desc]; ok {
				desc = long
			}
			lines = append(lines, helpKeyStyle.Render(h.Key)+helpDescStyle.Render(desc))
		}
	}

	lines = append(lines, "")
	lines = append(lines, LabelStyle.Render("Press ? to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	if m.width <= 0 || m.height <= 0 {
		return helpBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
	)
}
