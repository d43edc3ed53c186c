package tag

import (
	"math"
	"math/rand"
)

// GenerateOptions controls a synthetic session.
type GenerateOptions struct {
	Samples      int     // Timestamps to produce
	Interval     float64 // Seconds between timestamps
	Seed         int64
	Mismatches   int  // Rows where tag B reports a different distance than tag A
	DuplicateIDs bool // Label every position row "A"
	RoomSize     float64
}

type walker struct {
	cx, cy    float64 // Orbit center
	radius    float64
	phase     float64
	speed     float64 // Radians per second
	amplitude float64 // Wobble in meters
}

func (w walker) at(t float64, rng *rand.Rand) (float64, float64) {
	a := w.phase + w.speed*t
	wobble := w.amplitude * math.Sin(3*a)
	x := w.cx + (w.radius+wobble)*math.Cos(a) + (rng.Float64()-0.5)*0.05
	y := w.cy + (w.radius+wobble)*math.Sin(a) + (rng.Float64()-0.5)*0.05
	return x, y
}

func newWalker(rng *rand.Rand, room float64) walker {
	return walker{
		cx:        room/2 + (rng.Float64()-0.5)*room/5,
		cy:        room/2 + (rng.Float64()-0.5)*room/5,
		radius:    room/5 + rng.Float64()*room/10,
		phase:     rng.Float64() * 2 * math.Pi,
		speed:     0.2 + rng.Float64()*0.3,
		amplitude: 0.3 + rng.Float64()*0.5,
	}
}

// Generate builds a two-tag session. Both tags walk around the room and log
// their mutual distance every interval; the position log interleaves A and
// B rows per timestamp.
func Generate(opts GenerateOptions) *Session {
	if opts.Samples <= 0 {
		opts.Samples = 600
	}
	if opts.Interval <= 0 {
		opts.Interval = 0.1
	}
	if opts.RoomSize <= 0 {
		opts.RoomSize = 10
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	wa := newWalker(rng, opts.RoomSize)
	wb := newWalker(rng, opts.RoomSize)
	wb.speed = -wb.speed

	s := &Session{
		A:         make([]Reading, 0, opts.Samples),
		B:         make([]Reading, 0, opts.Samples),
		Positions: make([]Position, 0, 2*opts.Samples),
	}

	mismatch := make(map[int]bool, opts.Mismatches)
	if opts.Mismatches > 0 {
		for _, i := range rng.Perm(opts.Samples)[:min(opts.Mismatches, opts.Samples)] {
			mismatch[i] = true
		}
	}

	for i := 0; i < opts.Samples; i++ {
		// Round so timestamps are exact decimal strings on disk
		t := math.Round(float64(i)*opts.Interval*1000) / 1000

		ax, ay := wa.at(t, rng)
		bx, by := wb.at(t, rng)
		dist := math.Round(math.Hypot(ax-bx, ay-by)*100) / 100

		s.A = append(s.A, Reading{Time: t, ContactID: "B", Distance: dist})
		distB := dist
		if mismatch[i] {
			distB = math.Round((dist+0.25+rng.Float64())*100) / 100
		}
		s.B = append(s.B, Reading{Time: t, ContactID: "A", Distance: distB})

		idB := "B"
		if opts.DuplicateIDs {
			idB = "A"
		}
		s.Positions = append(s.Positions,
			Position{Time: t, TagID: "A", X: round2(ax), Y: round2(ay)},
			Position{Time: t, TagID: idB, X: round2(bx), Y: round2(by)},
		)
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
