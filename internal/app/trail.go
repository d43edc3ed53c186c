package app

import "github.com/golang/geo/r2"

// Trail is a circular buffer of the most recent positions of one tag.
type Trail struct {
	buf   []r2.Point
	pos   int
	count int
}

// NewTrail creates a trail holding up to capacity points.
func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{
		buf: make([]r2.Point, capacity),
	}
}

// Push adds a point, dropping the oldest when full.
func (t *Trail) Push(p r2.Point) {
	t.buf[t.pos] = p
	t.pos = (t.pos + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Points returns the stored points oldest first.
func (t *Trail) Points() []r2.Point {
	if t.count == 0 {
		return nil
	}
	out := make([]r2.Point, t.count)
	if t.count < len(t.buf) {
		copy(out, t.buf[:t.count])
	} else {
		n := copy(out, t.buf[t.pos:])
		copy(out[n:], t.buf[:t.pos])
	}
	return out
}

// Reset empties the trail.
func (t *Trail) Reset() {
	t.pos = 0
	t.count = 0
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.count
}
