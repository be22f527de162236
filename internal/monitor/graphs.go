package monitor

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// sparkLevels are the eight block heights used by RenderSparkline.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws the newest width usage percentages as one row of
// blocks on a fixed 0-100 scale, coloured by the latest value. Histories
// shorter than width are drawn at their own length.
func RenderSparkline(percents []float64, width int) string {
	if len(percents) == 0 || width <= 0 {
		return ""
	}
	if len(percents) > width {
		percents = percents[len(percents)-width:]
	}

	top := len(sparkLevels) - 1
	row := make([]rune, len(percents))
	for i, p := range percents {
		level := int(p / 100 * float64(top))
		row[i] = sparkLevels[max(0, min(level, top))]
	}

	latest := percents[len(percents)-1]
	return lipgloss.NewStyle().Foreground(MetricColor(latest)).Render(string(row))
}

// RenderGauge renders a usage bar, coloured by severity.
func RenderGauge(percent float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(MetricColor(percent))),
		progress.WithWidth(max(width, 1)),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(max(0, min(percent/100, 1)))
}
