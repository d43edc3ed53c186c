package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorText       = lipgloss.Color("#D0D0D0")
	ColorDim        = lipgloss.Color("#6C6C6C")
	ColorAccent     = lipgloss.Color("#5FAFFF")
	ColorBarBg      = lipgloss.Color("#1C1C1C")
	ColorBorderNorm = lipgloss.Color("#4E4E4E")
	ColorOK         = lipgloss.Color("#5FD75F")
	ColorError      = lipgloss.Color("#FF3300")
	ColorWarning    = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusPlaying = lipgloss.NewStyle().
				Foreground(ColorOK).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleValue = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleOK = lipgloss.NewStyle().
		Foreground(ColorOK)

	StyleWarn = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorBorderNorm)

	StyleAxisLabel = lipgloss.NewStyle().
			Foreground(ColorDim)
)
