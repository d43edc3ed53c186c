package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/geo/r2"

	"tag-contact.klederson.com/internal/analysis"
	"tag-contact.klederson.com/internal/config"
	"tag-contact.klederson.com/internal/plot"
	"tag-contact.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	report *analysis.Report
	scene  plot.Scene
	replay *Replay
}

// AppModel is the root Bubble Tea model of the visualizer.
type AppModel struct {
	width  int
	height int

	playing      bool
	showTracks   bool
	showContacts bool
	scrollOffset int
	session      string
	labels       plot.Labels

	shared *shared
}

// New creates the visualizer for a finished analysis.
func New(r *analysis.Report, bounds r2.Rect, session string) AppModel {
	return AppModel{
		showTracks:   true,
		showContacts: true,
		session:      session,
		labels: plot.Labels{
			Title:  plot.Title(r.Options.Threshold, r.Options.Interval),
			XLabel: "x [m]",
			YLabel: "y [m]",
		},
		shared: &shared{
			report: r,
			scene:  plot.FromReport(r, bounds),
			replay: NewReplay(r.Positions, "A", "B"),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.playing && !m.shared.replay.Advance(config.ReplayStep) {
			m.playing = false
		}
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	replay := m.shared.replay

	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "t", "T":
		m.showTracks = !m.showTracks

	case "c", "C":
		m.showContacts = !m.showContacts

	case " ":
		if !m.playing && replay.AtEnd() {
			replay.Seek(0)
		}
		m.playing = !m.playing

	case "r", "R":
		replay.Seek(0)

	case "right", "l":
		replay.Advance(1)

	case "left", "h":
		replay.Seek(replay.Index() - 1)

	case "up", "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}

	case "down", "j":
		if m.scrollOffset < len(m.shared.report.Distances.Mismatches)-1 {
			m.scrollOffset++
		}

	case "home":
		m.scrollOffset = 0

	case "end":
		if n := len(m.shared.report.Distances.Mismatches); n > 0 {
			m.scrollOffset = n - 1
		}
	}

	return m, nil
}

// Scene returns the frame to draw with the current toggles and replay
// cursor applied.
func (m AppModel) Scene() plot.Scene {
	s := m.shared.scene
	s.ShowTracks = m.showTracks
	s.ShowContacts = m.showContacts

	s.Cursors = nil
	for i, id := range m.shared.replay.IDs() {
		color := plot.ColorTagA
		if i < len(s.Tracks) {
			color = s.Tracks[i].Color
		}
		s.Cursors = append(s.Cursors, plot.Series{
			Label:  id,
			Points: m.shared.replay.Trail(id).Points(),
			Color:  color,
		})
	}
	return s
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing tag-contact..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 10 {
		bodyH = 10
	}

	listW := m.width / 3
	if listW < 34 {
		listW = 34
	}
	plotW := m.width - listW
	if plotW < 30 {
		plotW = 30
	}

	menuBar := ui.RenderMenuBar(m.width, m.session, m.playing)

	scene := m.Scene()
	innerW, innerH := ui.PlotArea(plotW, bodyH)
	content := plot.Render(innerW, innerH, scene)
	legend := plot.RenderLegend(innerW, scene)
	plotPanel := ui.RenderPlotPanel(plotW, bodyH, m.labels.Title, m.labels.XLabel, m.labels.YLabel,
		scene.Bounds.X.Lo, scene.Bounds.X.Hi, content, legend)

	summary := ui.RenderSummaryPanel(m.shared.report, listW, bodyH, m.scrollOffset)

	r := m.shared.report
	statusBar := ui.RenderStatusBar(m.width, ui.StatusInfo{
		Playing:   m.playing,
		Time:      m.shared.replay.Time(),
		EndTime:   m.shared.replay.End(),
		Windows:   r.Distances.Windows,
		Duration:  r.Contacts.Duration,
		Threshold: r.Options.Threshold,
	})

	return ui.ComposeLayout(menuBar, plotPanel, summary, statusBar)
}

// Run starts the interactive visualizer and blocks until the user quits.
func Run(r *analysis.Report, bounds r2.Rect, session string) error {
	p := tea.NewProgram(
		New(r, bounds, session),
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)
	_, err := p.Run()
	return err
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
