package monitor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline(t *testing.T) {
	plainColors(t)

	tests := []struct {
		name  string
		data  []float64
		width int
		want  string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []float64{50}, 0, ""},
		{"extremes", []float64{0, 100}, 2, "▁█"},
		{"short history keeps length", []float64{0, 50, 100}, 10, "▁▄█"},
		{"keeps the newest samples", []float64{100, 100, 0, 50}, 2, "▁▄"},
		{"out of range clamps", []float64{-20, 140}, 2, "▁█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderSparkline(tt.data, tt.width))
		})
	}
}

func TestRenderGauge_Width(t *testing.T) {
	plainColors(t)

	for _, p := range []float64{-5, 0, 42, 100, 180} {
		assert.Equal(t, 30, lipgloss.Width(RenderGauge(p, 30)), "percent %v", p)
	}
}

func TestMetricColor(t *testing.T) {
	tests := []struct {
		percent float64
		want    lipgloss.Color
	}{
		{0, ColorHealthy},
		{74.9, ColorHealthy},
		{75, ColorWarning},
		{89.9, ColorWarning},
		{90, ColorCritical},
		{100, ColorCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MetricColor(tt.percent), "percent %v", tt.percent)
	}
}

func TestSectionContentLine_Truncates(t *testing.T) {
	plainColors(t)

	line := SectionContentLine("a very long line that cannot possibly fit", 20)
	assert.Equal(t, 20, lipgloss.Width(line))
}
