package plot

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Window returns the square plot area [lo, hi] x [lo, hi] in meters.
func Window(lo, hi float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: lo, Hi: hi}, Y: r1.Interval{Lo: lo, Hi: hi}}
}

// Viewport maps plot coordinates onto a grid of terminal cells. Row 0 is
// the top of the window, so y grows upwards as on paper.
type Viewport struct {
	Bounds r2.Rect
	Width  int
	Height int
}

// Cell returns the grid cell of p. ok is false when p lies outside Bounds.
func (v Viewport) Cell(p r2.Point) (col, row int, ok bool) {
	if !v.Bounds.ContainsPoint(p) || v.Width < 1 || v.Height < 1 {
		return 0, 0, false
	}
	fx := (p.X - v.Bounds.X.Lo) / v.Bounds.X.Length()
	fy := (p.Y - v.Bounds.Y.Lo) / v.Bounds.Y.Length()
	col = int(math.Round(fx * float64(v.Width-1)))
	row = v.Height - 1 - int(math.Round(fy*float64(v.Height-1)))
	return col, row, true
}

// SegmentChar returns the character for a line step from one cell to the
// next. Rows grow downwards, so a step up-right is drawn as '/'.
func SegmentChar(dcol, drow int) rune {
	switch {
	case dcol == 0 && drow == 0:
		return '+'
	case drow == 0:
		return '-'
	case dcol == 0:
		return '|'
	case (dcol > 0) == (drow < 0):
		return '/'
	default:
		return '\\'
	}
}

// line walks the cells between two cells with Bresenham's algorithm and
// calls visit for each, including both ends.
func line(c0, r0, c1, r1 int, visit func(col, row int, ch rune)) {
	dc := abs(c1 - c0)
	dr := -abs(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	ch := SegmentChar(c1-c0, r1-r0)
	// Steep or shallow lines read better with the dominant axis glyph.
	if dc > 2*-dr {
		ch = '-'
	} else if -dr > 2*dc {
		ch = '|'
	}

	err := dc + dr
	for {
		visit(c0, r0, ch)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
