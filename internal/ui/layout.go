package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the plot panel and summary panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, plotPanel, summaryPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, plotPanel, summaryPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
