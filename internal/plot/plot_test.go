package plot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tag-contact.klederson.com/internal/analysis"
	"tag-contact.klederson.com/internal/tag"
)

func TestViewportCell(t *testing.T) {
	vp := Viewport{Bounds: Window(0, 10), Width: 11, Height: 11}

	col, row, ok := vp.Cell(r2.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 10, row)

	col, row, ok = vp.Cell(r2.Point{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, 10, col)
	assert.Equal(t, 0, row)

	col, row, ok = vp.Cell(r2.Point{X: 3, Y: 7})
	require.True(t, ok)
	assert.Equal(t, 3, col)
	assert.Equal(t, 3, row)

	_, _, ok = vp.Cell(r2.Point{X: 10.5, Y: 5})
	assert.False(t, ok)
	_, _, ok = vp.Cell(r2.Point{X: 5, Y: -0.1})
	assert.False(t, ok)
}

func TestSegmentChar(t *testing.T) {
	assert.Equal(t, '-', SegmentChar(3, 0))
	assert.Equal(t, '|', SegmentChar(0, -2))
	assert.Equal(t, '/', SegmentChar(1, -1))
	assert.Equal(t, '\\', SegmentChar(1, 1))
	assert.Equal(t, '/', SegmentChar(-1, 1))
	assert.Equal(t, '+', SegmentChar(0, 0))
}

func TestLineVisitsEndpoints(t *testing.T) {
	var cells [][2]int
	line(1, 1, 4, 1, func(c, r int, ch rune) {
		cells = append(cells, [2]int{c, r})
		assert.Equal(t, '-', ch)
	})
	assert.Equal(t, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}, cells)
}

func TestRasterizeLayers(t *testing.T) {
	s := Scene{
		Bounds: Window(0, 10),
		Tracks: []Series{
			{Label: "Tag A", Points: []r2.Point{{X: 2, Y: 5}, {X: 6, Y: 5}}},
		},
		Contacts:     Series{Label: "contacts", Points: []r2.Point{{X: 4, Y: 5}, {X: 20, Y: 20}}},
		Cursors:      []Series{{Label: "B", Points: []r2.Point{{X: 8, Y: 8}}}},
		ShowTracks:   true,
		ShowContacts: true,
	}

	grid := Rasterize(11, 11, s)
	require.Len(t, grid, 11)

	assert.Equal(t, Cell{Ch: '-', Kind: KindTrack}, grid[5][3])
	assert.Equal(t, Cell{Ch: 'x', Kind: KindContact}, grid[5][4])
	assert.Equal(t, Cell{Ch: 'B', Kind: KindCursor}, grid[2][8])
	assert.Equal(t, KindAxis, grid[10][0].Kind)
	assert.Equal(t, KindGrid, grid[1][1].Kind)

	contacts := 0
	for _, row := range grid {
		for _, c := range row {
			if c.Kind == KindContact {
				contacts++
			}
		}
	}
	assert.Equal(t, 1, contacts, "point outside the window is clipped")
}

func TestRasterizeToggles(t *testing.T) {
	s := Scene{
		Bounds:   Window(0, 10),
		Tracks:   []Series{{Points: []r2.Point{{X: 2, Y: 5}, {X: 6, Y: 5}}}},
		Contacts: Series{Points: []r2.Point{{X: 4, Y: 5}}},
	}
	grid := Rasterize(11, 11, s)
	for _, row := range grid {
		for _, c := range row {
			assert.NotEqual(t, KindTrack, c.Kind)
			assert.NotEqual(t, KindContact, c.Kind)
		}
	}
}

func TestRenderShape(t *testing.T) {
	out := Render(20, 8, Scene{Bounds: Window(0, 10)})
	assert.Len(t, strings.Split(out, "\n"), 8)
	assert.Equal(t, "", Render(0, 0, Scene{Bounds: Window(0, 10)}))
}

func sampleReport() *analysis.Report {
	s := &tag.Session{
		A: []tag.Reading{{Time: 0, ContactID: "B", Distance: 1}, {Time: 0.1, ContactID: "B", Distance: 3}},
		B: []tag.Reading{{Time: 0, ContactID: "A", Distance: 1}, {Time: 0.1, ContactID: "A", Distance: 3}},
		Positions: []tag.Position{
			{Time: 0, TagID: "A", X: 1, Y: 1},
			{Time: 0, TagID: "B", X: 2, Y: 1},
			{Time: 0.1, TagID: "A", X: 1, Y: 4},
			{Time: 0.1, TagID: "B", X: 5, Y: 1},
		},
	}
	return analysis.Run(s, analysis.Options{Threshold: 1.5, Interval: 0.1, Detect: analysis.DetectScan})
}

func TestFromReport(t *testing.T) {
	s := FromReport(sampleReport(), Window(0, 10))

	require.Len(t, s.Tracks, 2)
	assert.Equal(t, []r2.Point{{X: 1, Y: 1}, {X: 1, Y: 4}}, s.Tracks[0].Points)
	assert.Equal(t, []r2.Point{{X: 2, Y: 1}, {X: 5, Y: 1}}, s.Tracks[1].Points)
	assert.Equal(t, []r2.Point{{X: 1, Y: 1}}, s.Contacts.Points)
	assert.Contains(t, s.Contacts.Label, "within 1.5m")
	assert.True(t, s.ShowTracks)
}

func TestWriteSVG(t *testing.T) {
	s := FromReport(sampleReport(), Window(0, 10))

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s, Labels{Title: Title(1.5, 0.1), XLabel: "x [m]", YLabel: "y [m]"}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 2, strings.Count(out, "<polyline"))
	assert.Contains(t, out, "Tag tracks + Contact points within 1.5 m (dt = 0.1s)")
	assert.Contains(t, out, "x [m]")
	assert.Contains(t, out, `fill="#FF3300"`)
}

func TestWindowRuns(t *testing.T) {
	pts := []r2.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 20, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}, {X: -1, Y: 0}}
	runs := windowRuns(pts, Window(0, 10))
	assert.Equal(t, [][]r2.Point{
		{{X: 1, Y: 1}, {X: 2, Y: 2}},
		{{X: 3, Y: 3}, {X: 4, Y: 4}},
	}, runs)
	assert.Empty(t, windowRuns([]r2.Point{{X: 11, Y: 11}}, Window(0, 10)))
}

func TestWriteSVGBreaksTrackOutsideWindow(t *testing.T) {
	s := Scene{
		Bounds:     Window(0, 10),
		ShowTracks: true,
		Tracks: []Series{{
			Label:  "Tag A",
			Points: []r2.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 15, Y: 1}, {X: 8, Y: 1}, {X: 9, Y: 1}, {X: 30, Y: 1}, {X: 5, Y: 5}},
			Color:  ColorTagA,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, s, Labels{}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "<polyline"))
	assert.Equal(t, 1, strings.Count(out, `r="1" fill="#1F77B4"`))
}
