package plot

import (
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"tag-contact.klederson.com/internal/config"
)

// Labels are the texts around the figure.
type Labels struct {
	Title  string
	XLabel string
	YLabel string
}

// Title returns the figure title for a threshold and sample interval.
func Title(threshold, interval float64) string {
	return fmt.Sprintf("Tag tracks + Contact points within %g m (dt = %gs)", threshold, interval)
}

// svgCanvas maps plot coordinates to SVG pixels.
type svgCanvas struct {
	bounds r2.Rect
	size   int
	margin int
}

func (c svgCanvas) xy(p r2.Point) (float64, float64) {
	inner := float64(c.size - 2*c.margin)
	x := float64(c.margin) + (p.X-c.bounds.X.Lo)/c.bounds.X.Length()*inner
	y := float64(c.size-c.margin) - (p.Y-c.bounds.Y.Lo)/c.bounds.Y.Length()*inner
	return x, y
}

// WriteSVG renders the scene as a standalone SVG figure with grid, axes,
// tracks, contact markers and a legend. Cursors are not drawn.
func WriteSVG(w io.Writer, s Scene, l Labels) error {
	c := svgCanvas{bounds: s.Bounds, size: config.SVGSize, margin: config.SVGMargin}
	lo, hi := c.margin, c.size-c.margin

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, c.size, c.size))

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+"\n",
		c.size/2, c.margin/2, html.EscapeString(l.Title)))

	// Grid and ticks
	for v := math.Ceil(s.Bounds.X.Lo); v <= s.Bounds.X.Hi; v += config.GridSpacing {
		x, _ := c.xy(r2.Point{X: v, Y: s.Bounds.Y.Lo})
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d" stroke="#dddddd" stroke-width="1"/>`+"\n", x, lo, x, hi))
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" text-anchor="middle" font-family="sans-serif" font-size="11">%g</text>`+"\n", x, hi+16, v))
	}
	for v := math.Ceil(s.Bounds.Y.Lo); v <= s.Bounds.Y.Hi; v += config.GridSpacing {
		_, y := c.xy(r2.Point{X: s.Bounds.X.Lo, Y: v})
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#dddddd" stroke-width="1"/>`+"\n", lo, y, hi, y))
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" text-anchor="end" font-family="sans-serif" font-size="11">%g</text>`+"\n", lo-6, y+4, v))
	}
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="#333333" stroke-width="1"/>`+"\n", lo, lo, hi-lo, hi-lo))

	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="13">%s</text>`+"\n",
		c.size/2, c.size-c.margin/4, html.EscapeString(l.XLabel)))
	svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="13" transform="rotate(-90 %d %d)">%s</text>`+"\n",
		c.margin/4, c.size/2, c.margin/4, c.size/2, html.EscapeString(l.YLabel)))

	if s.ShowTracks {
		for _, tr := range s.Tracks {
			// A point outside the window ends the current run, as in Rasterize
			for _, run := range windowRuns(tr.Points, s.Bounds) {
				if len(run) == 1 {
					x, y := c.xy(run[0])
					svg.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1" fill="%s"/>`+"\n", x, y, string(tr.Color)))
					continue
				}
				pts := make([]string, 0, len(run))
				for _, p := range run {
					x, y := c.xy(p)
					pts = append(pts, fmt.Sprintf("%.1f,%.1f", x, y))
				}
				svg.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5" stroke-opacity="0.7"/>`+"\n",
					strings.Join(pts, " "), string(tr.Color)))
			}
		}
	}

	if s.ShowContacts {
		for _, p := range s.Contacts.Points {
			if !s.Bounds.ContainsPoint(p) {
				continue
			}
			x, y := c.xy(p)
			svg.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>`+"\n", x, y, string(colorContact)))
		}
	}

	// Legend in the upper right corner
	ly := lo + 16
	entry := func(color, label string, dot bool) {
		if dot {
			svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="3" fill="%s"/>`+"\n", hi-250, ly-4, color))
		} else {
			svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n", hi-258, ly-4, hi-242, ly-4, color))
		}
		svg.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="11">%s</text>`+"\n", hi-234, ly, html.EscapeString(label)))
		ly += 16
	}
	for _, tr := range s.Tracks {
		entry(string(tr.Color), tr.Label, false)
	}
	if s.Contacts.Label != "" {
		entry(string(colorContact), s.Contacts.Label, true)
	}

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

// SaveSVG writes the figure to path.
func SaveSVG(path string, s Scene, l Labels) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := WriteSVG(f, s, l); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// windowRuns splits points into maximal runs that lie inside bounds.
func windowRuns(points []r2.Point, bounds r2.Rect) [][]r2.Point {
	var runs [][]r2.Point
	var cur []r2.Point
	for _, p := range points {
		if !bounds.ContainsPoint(p) {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
