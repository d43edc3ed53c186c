package ui

import (
	"fmt"
	"math"
	"strings"
)

const (
	yAxisWidth  = 6 // Tick labels left of the plot
	plotChrome  = 4 // Title, x ticks, x label, legend
	borderWidth = 2
	maxTicks    = 5
)

// PlotArea returns the size of the plot grid that fits a panel.
// The plot itself is rendered externally to avoid import cycles.
func PlotArea(width, height int) (int, int) {
	w := width - borderWidth - 2 - yAxisWidth
	h := height - borderWidth - plotChrome
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return w, h
}

// ticks spreads up to maxTicks+1 labels over n cells from lo to hi and
// returns cell index -> label.
func ticks(n int, lo, hi float64) map[int]string {
	out := make(map[int]string)
	if n < 2 {
		return out
	}
	count := maxTicks
	if n-1 < count {
		count = n - 1
	}
	for i := 0; i <= count; i++ {
		cell := int(math.Round(float64(i) * float64(n-1) / float64(count)))
		out[cell] = fmt.Sprintf("%g", roundTick(lo+float64(i)*(hi-lo)/float64(count)))
	}
	return out
}

func roundTick(v float64) float64 {
	return math.Round(v*10) / 10
}

// RenderPlotPanel wraps plot content with axes, labels, legend and border.
func RenderPlotPanel(width, height int, title, xLabel, yLabel string, lo, hi float64, plotContent, legend string) string {
	plotW, plotH := PlotArea(width, height)
	rows := strings.Split(plotContent, "\n")

	lines := []string{StylePanelTitle.Render(title)}

	yt := ticks(plotH, lo, hi)
	for r := 0; r < plotH; r++ {
		label := ""
		// Row 0 is the top of the window
		if t, ok := yt[plotH-1-r]; ok {
			label = t
		}
		if r == plotH/2 && label == "" {
			label = yLabel
		}
		row := ""
		if r < len(rows) {
			row = rows[r]
		}
		lines = append(lines, StyleAxisLabel.Render(fmt.Sprintf("%*s ", yAxisWidth-1, trunc(label, yAxisWidth-1)))+row)
	}

	xt := ticks(plotW, lo, hi)
	axis := []byte(strings.Repeat(" ", plotW+2))
	for cell, label := range xt {
		start := cell - len(label)/2
		if start < 0 {
			start = 0
		}
		for i := 0; i < len(label) && start+i < len(axis); i++ {
			axis[start+i] = label[i]
		}
	}
	lines = append(lines, strings.Repeat(" ", yAxisWidth)+StyleAxisLabel.Render(strings.TrimRight(string(axis), " ")))

	pad := (plotW - len(xLabel)) / 2
	if pad < 0 {
		pad = 0
	}
	lines = append(lines, strings.Repeat(" ", yAxisWidth+pad)+StyleAxisLabel.Render(xLabel))
	lines = append(lines, legend)

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - borderWidth).Height(height - borderWidth).Render(content)
}

func trunc(s string, w int) string {
	if len(s) > w {
		return s[:w]
	}
	return s
}
