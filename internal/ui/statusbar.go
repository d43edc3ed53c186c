package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports.
type StatusInfo struct {
	Playing   bool
	Time      float64 // Replay cursor in seconds
	EndTime   float64
	Windows   int
	Duration  float64
	Threshold float64
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s StatusInfo) string {
	status := StyleStatusPaused.Render("[PAUSED]")
	if s.Playing {
		status = StyleStatusPlaying.Render("[PLAYING]")
	}

	info := fmt.Sprintf(" t=%.1fs/%.1fs  Windows: %d  Contact: %gs  Threshold: %gm",
		s.Time, s.EndTime, s.Windows, s.Duration, s.Threshold)

	content := status + info

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
