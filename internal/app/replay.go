package app

import (
	"sort"

	"tag-contact.klederson.com/internal/config"
	"tag-contact.klederson.com/internal/tag"
)

// Replay walks a time cursor over the position log and keeps a short trail
// of each tag behind it.
type Replay struct {
	ids    []string
	times  []float64
	byTime map[float64][]tag.Position
	trails map[string]*Trail
	index  int
}

// NewReplay indexes positions of the given tag ids by timestamp. The cursor
// starts on the first timestamp.
func NewReplay(positions []tag.Position, ids ...string) *Replay {
	r := &Replay{
		ids:    ids,
		byTime: make(map[float64][]tag.Position),
		trails: make(map[string]*Trail, len(ids)),
	}
	for _, id := range ids {
		r.trails[id] = NewTrail(config.TrailLength)
	}
	for _, p := range positions {
		if _, ok := r.trails[p.TagID]; !ok {
			continue
		}
		if _, seen := r.byTime[p.Time]; !seen {
			r.times = append(r.times, p.Time)
		}
		r.byTime[p.Time] = append(r.byTime[p.Time], p)
	}
	sort.Float64s(r.times)
	r.Seek(0)
	return r
}

// Seek moves the cursor to timestamp i, clamped to the log, and rebuilds
// the trails.
func (r *Replay) Seek(i int) {
	if i > len(r.times)-1 {
		i = len(r.times) - 1
	}
	if i < 0 {
		i = 0
	}
	r.index = i

	for _, t := range r.trails {
		t.Reset()
	}
	if len(r.times) == 0 {
		return
	}
	start := i - config.TrailLength + 1
	if start < 0 {
		start = 0
	}
	for _, ts := range r.times[start : i+1] {
		for _, p := range r.byTime[ts] {
			r.trails[p.TagID].Push(p.Point())
		}
	}
}

// Advance moves the cursor n timestamps. It reports false once the cursor
// sits on the last timestamp.
func (r *Replay) Advance(n int) bool {
	r.Seek(r.index + n)
	return !r.AtEnd()
}

// AtEnd reports whether the cursor is on the last timestamp.
func (r *Replay) AtEnd() bool {
	return r.index >= len(r.times)-1
}

// Index returns the cursor position.
func (r *Replay) Index() int {
	return r.index
}

// Time returns the timestamp under the cursor.
func (r *Replay) Time() float64 {
	if len(r.times) == 0 {
		return 0
	}
	return r.times[r.index]
}

// End returns the last timestamp.
func (r *Replay) End() float64 {
	if len(r.times) == 0 {
		return 0
	}
	return r.times[len(r.times)-1]
}

// Trail returns the recent points of one tag, oldest first.
func (r *Replay) Trail(id string) *Trail {
	return r.trails[id]
}

// IDs returns the replayed tag ids.
func (r *Replay) IDs() []string {
	return r.ids
}
