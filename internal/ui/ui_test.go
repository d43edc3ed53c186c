package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tag-contact.klederson.com/internal/analysis"
)

func TestTicks(t *testing.T) {
	got := ticks(11, 0, 10)
	assert.Equal(t, map[int]string{0: "0", 2: "2", 4: "4", 6: "6", 8: "8", 10: "10"}, got)

	assert.Len(t, ticks(3, 0, 10), 3)
	assert.Empty(t, ticks(1, 0, 10))
}

func TestPlotArea(t *testing.T) {
	w, h := PlotArea(60, 30)
	assert.Equal(t, 60-2-2-yAxisWidth, w)
	assert.Equal(t, 30-2-plotChrome, h)

	w, h = PlotArea(1, 1)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
}

func TestRenderPlotPanelHeight(t *testing.T) {
	w, h := PlotArea(50, 24)
	content := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", w)+"\n", h), "\n")

	out := RenderPlotPanel(50, 24, "title", "x [m]", "y [m]", 0, 10, content, "legend")
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.Contains(t, out, "x [m]")
	assert.Contains(t, out, "legend")
}

func TestRenderSummaryPanel(t *testing.T) {
	r := &analysis.Report{
		Options:     analysis.Options{Threshold: 1.5},
		Connections: analysis.ConnectionReport{TagA: []string{"B"}, TagB: []string{"A"}},
		Distances: analysis.DistanceReport{
			Paired:  30,
			Windows: 2,
			Mismatches: []analysis.PairedReading{
				{Time: 0.1, DistanceA: 1, DistanceB: 2},
				{Time: 0.7, DistanceA: 1, DistanceB: 3},
			},
		},
		Contacts: analysis.ContactSummary{WithinA: 5, WithinB: 4, Duration: 0.4},
	}

	out := RenderSummaryPanel(r, 40, 20, 0)
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Contains(t, out, "Mismatches [2]")
	assert.Contains(t, out, "0.10")

	scrolled := RenderSummaryPanel(r, 40, 20, 1)
	assert.NotContains(t, scrolled, "    0.10")
	assert.Contains(t, scrolled, "0.70")

	r.Distances.Mismatches = nil
	assert.Contains(t, RenderSummaryPanel(r, 40, 20, 0), "All distances match")
}

func TestBarsFillWidth(t *testing.T) {
	assert.Equal(t, 100, lipgloss.Width(RenderMenuBar(100, "demo", true)))
	assert.Equal(t, 100, lipgloss.Width(RenderStatusBar(100, StatusInfo{Time: 1, EndTime: 9.9, Threshold: 1.5})))
}
