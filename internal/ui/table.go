package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// RenderSimpleTable renders rows under underlined headers for command
// output. It returns "" when there are no rows.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is focused, the cursor row looks like the rest.
	s.Selected = lipgloss.NewStyle()

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(s),
	)
	return t.View()
}

// DoctorCheckRow is one doctor result; Status is "pass", "warn" or "fail".
type DoctorCheckRow struct {
	Status     string
	Category   string
	Message    string
	Suggestion string
}

// RenderDoctorTable lists results under their category, categories in the
// order first seen. Suggestions are shown only for results that did not pass.
func RenderDoctorTable(rows []DoctorCheckRow) string {
	if len(rows) == 0 {
		return "No checks to display"
	}

	var order []string
	byCategory := make(map[string][]DoctorCheckRow)
	for _, r := range rows {
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	var b strings.Builder
	for _, cat := range order {
		b.WriteString(header.Render(cat) + "\n")
		for _, r := range byCategory[cat] {
			fmt.Fprintf(&b, "  %s %s\n", statusSymbol(r.Status), r.Message)
			if r.Suggestion != "" && r.Status != "pass" {
				fmt.Fprintf(&b, "    %s\n", MutedStyle().Render(r.Suggestion))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func statusSymbol(status string) string {
	switch status {
	case "pass":
		return SuccessStyle().Render(SymbolSuccess)
	case "warn":
		return WarningStyle().Render(SymbolWarning)
	case "fail":
		return ErrorStyle().Render(SymbolFail)
	default:
		return MutedStyle().Render(SymbolPending)
	}
}

// RenderKeyValues renders aligned "key  value" lines, keys muted.
func RenderKeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	key := MutedStyle().Width(width + 2)
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(key.Render(p[0]) + p[1] + "\n")
	}
	return b.String()
}
