package plot

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"

	"tag-contact.klederson.com/internal/config"
)

// Kind tells the renderer how to style a cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindGrid
	KindAxis
	KindTrack
	KindContact
	KindCursor
)

// Cell is one rasterized character of the plot.
type Cell struct {
	Ch     rune
	Kind   Kind
	Series int // Index into Scene.Tracks for tracks and cursors
}

// Series is a labeled sequence of points.
type Series struct {
	Label  string
	Points []r2.Point
	Color  lipgloss.Color
}

// Scene is everything drawn in one frame.
type Scene struct {
	Bounds       r2.Rect
	Tracks       []Series
	Contacts     Series
	Cursors      []Series // Recent positions per track, oldest first
	ShowTracks   bool
	ShowContacts bool
}

var (
	colorGrid    = lipgloss.Color("#3A3A3A")
	colorAxis    = lipgloss.Color("#6C6C6C")
	colorContact = lipgloss.Color("#FF3300")

	styleGrid    = lipgloss.NewStyle().Foreground(colorGrid)
	styleAxis    = lipgloss.NewStyle().Foreground(colorAxis)
	styleContact = lipgloss.NewStyle().Foreground(colorContact).Bold(true)
)

// Rasterize draws the scene into a width x height grid. Later layers win:
// grid, tracks, contacts, cursors.
func Rasterize(width, height int, s Scene) [][]Cell {
	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
		for j := range grid[i] {
			grid[i][j] = Cell{Ch: ' '}
		}
	}
	if width < 2 || height < 2 {
		return grid
	}
	vp := Viewport{Bounds: s.Bounds, Width: width, Height: height}

	set := func(col, row int, c Cell) {
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = c
		}
	}

	// Meter grid and the axes along the window's lower and left edges
	for x := math.Ceil(s.Bounds.X.Lo); x <= s.Bounds.X.Hi; x += config.GridSpacing {
		for y := math.Ceil(s.Bounds.Y.Lo); y <= s.Bounds.Y.Hi; y += config.GridSpacing {
			if col, row, ok := vp.Cell(r2.Point{X: x, Y: y}); ok {
				set(col, row, Cell{Ch: '.', Kind: KindGrid})
			}
		}
	}
	for col := 0; col < width; col++ {
		set(col, height-1, Cell{Ch: '-', Kind: KindAxis})
	}
	for row := 0; row < height; row++ {
		set(0, row, Cell{Ch: '|', Kind: KindAxis})
	}
	set(0, height-1, Cell{Ch: '+', Kind: KindAxis})

	if s.ShowTracks {
		for si, tr := range s.Tracks {
			prevCol, prevRow, prevOK := 0, 0, false
			for _, p := range tr.Points {
				col, row, ok := vp.Cell(p)
				if ok && prevOK {
					line(prevCol, prevRow, col, row, func(c, r int, ch rune) {
						set(c, r, Cell{Ch: ch, Kind: KindTrack, Series: si})
					})
				} else if ok {
					set(col, row, Cell{Ch: '+', Kind: KindTrack, Series: si})
				}
				prevCol, prevRow, prevOK = col, row, ok
			}
		}
	}

	if s.ShowContacts {
		for _, p := range s.Contacts.Points {
			if col, row, ok := vp.Cell(p); ok {
				set(col, row, Cell{Ch: 'x', Kind: KindContact})
			}
		}
	}

	for si, cur := range s.Cursors {
		for i, p := range cur.Points {
			col, row, ok := vp.Cell(p)
			if !ok {
				continue
			}
			ch := 'o'
			if i == len(cur.Points)-1 {
				ch = headRune(cur.Label)
			}
			set(col, row, Cell{Ch: ch, Kind: KindCursor, Series: si})
		}
	}

	return grid
}

func headRune(label string) rune {
	for _, r := range label {
		return r
	}
	return '@'
}

// Render produces the styled plot.
func Render(width, height int, s Scene) string {
	grid := Rasterize(width, height, s)

	var sb strings.Builder
	for row, cells := range grid {
		for _, c := range cells {
			sb.WriteString(styleCell(c, s))
		}
		if row < len(grid)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func styleCell(c Cell, s Scene) string {
	str := string(c.Ch)
	switch c.Kind {
	case KindGrid:
		return styleGrid.Render(str)
	case KindAxis:
		return styleAxis.Render(str)
	case KindTrack:
		return lipgloss.NewStyle().Foreground(seriesColor(s.Tracks, c.Series)).Render(str)
	case KindContact:
		return styleContact.Render(str)
	case KindCursor:
		return lipgloss.NewStyle().Foreground(seriesColor(s.Cursors, c.Series)).Bold(true).Render(str)
	}
	return str
}

func seriesColor(series []Series, i int) lipgloss.Color {
	if i < len(series) && series[i].Color != "" {
		return series[i].Color
	}
	return colorAxis
}

// RenderLegend produces the legend line, centered in width.
func RenderLegend(width int, s Scene) string {
	var parts []string
	for _, tr := range s.Tracks {
		sty := lipgloss.NewStyle().Foreground(tr.Color)
		if !s.ShowTracks {
			sty = styleGrid
		}
		parts = append(parts, sty.Render("- "+tr.Label))
	}
	if s.Contacts.Label != "" {
		sty := styleContact
		if !s.ShowContacts {
			sty = styleGrid
		}
		parts = append(parts, sty.Render("x "+s.Contacts.Label))
	}
	legend := strings.Join(parts, "   ")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
