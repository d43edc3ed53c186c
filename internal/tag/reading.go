package tag

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// Reading is one proximity sample logged by a tag.
type Reading struct {
	Time      float64 // Seconds since session start
	ContactID string  // Tag or beacon seen by the sensor
	Distance  float64 // Meters
}

// Position is one tracked location of a tag.
type Position struct {
	Time  float64
	TagID string
	X     float64 // Meters
	Y     float64 // Meters
}

// Point returns the position as a planar point.
func (p Position) Point() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("%s@%.2fs (%.2f, %.2f)", p.TagID, p.Time, p.X, p.Y)
}

// Session holds everything loaded for one experiment.
type Session struct {
	Files     map[string]string // Tag name -> file path
	A         []Reading
	B         []Reading
	Positions []Position
}

// PositionsOf returns the positions recorded for one tag id, in input order.
func PositionsOf(positions []Position, id string) []Position {
	var out []Position
	for _, p := range positions {
		if p.TagID == id {
			out = append(out, p)
		}
	}
	return out
}

// Points projects positions onto the plane.
func Points(positions []Position) []r2.Point {
	pts := make([]r2.Point, len(positions))
	for i, p := range positions {
		pts[i] = p.Point()
	}
	return pts
}
