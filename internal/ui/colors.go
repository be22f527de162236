package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Neon accents; the spinner cycles through them.
const (
	ColorNeonPink   lipgloss.Color = "#FF2E97"
	ColorNeonPurple lipgloss.Color = "#BF40FF"
	ColorNeonCyan   lipgloss.Color = "#00FFFF"
	ColorNeonGreen  lipgloss.Color = "#39FF14"
)

// Status and text colors.
const (
	ColorSuccess = ColorNeonGreen
	ColorError   lipgloss.Color = "#FF0055"
	ColorWarning lipgloss.Color = "#FFAA00"
	ColorPrimary lipgloss.Color = "#FFFFFF"
	ColorMuted   lipgloss.Color = "#6B6B8D"
)

var GradientColors = []lipgloss.Color{
	ColorNeonPink,
	ColorNeonPurple,
	ColorNeonCyan,
	ColorNeonGreen,
}

func SuccessStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorSuccess) }
func ErrorStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorError) }
func WarningStyle() lipgloss.Style { return lipgloss.NewStyle().Foreground(ColorWarning) }
func MutedStyle() lipgloss.Style   { return lipgloss.NewStyle().Foreground(ColorMuted) }

// PrintWarning writes a warning line to stderr.
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}

// DisableColors switches every lipgloss renderer to plain ASCII output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
