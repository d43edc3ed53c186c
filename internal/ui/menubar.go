package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tag-contact.klederson.com/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, session string, playing bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"T", "racks"},
		{"C", "ontacts"},
		{"Space", " play"},
		{"R", "ewind"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := StyleStatusPaused.Render("PAUSED")
	if playing {
		status = StyleStatusPlaying.Render("REPLAY")
	}

	sessionInfo := StyleMenuLabel.Render(fmt.Sprintf("Session: %s", session))

	left := StyleMenuKey.Render(title) + menu
	right := status + "  " + sessionInfo + " "

	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
