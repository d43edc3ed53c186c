package analysis

import (
	"math"
	"sort"

	"tag-contact.klederson.com/internal/tag"
)

// Separation is the tracked distance between two tags at one timestamp.
type Separation struct {
	Time     float64
	Distance float64
}

// SeparationSummary condenses a separation series.
type SeparationSummary struct {
	Samples int
	Within  int
	Minimum float64
}

// PositionSeparation computes the distance between tags idA and idB at every
// timestamp where each has exactly one position. Output is ordered by time.
func PositionSeparation(positions []tag.Position, idA, idB string) []Separation {
	byTime := make(map[float64][]tag.Position)
	for _, p := range positions {
		if p.TagID == idA || p.TagID == idB {
			byTime[p.Time] = append(byTime[p.Time], p)
		}
	}

	var out []Separation
	for t, ps := range byTime {
		if len(ps) != 2 || ps[0].TagID == ps[1].TagID {
			continue
		}
		d := ps[0].Point().Sub(ps[1].Point()).Norm()
		out = append(out, Separation{Time: t, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// SummarizeSeparation counts samples within threshold and the closest
// approach. Minimum is NaN for an empty series.
func SummarizeSeparation(seps []Separation, threshold float64) SeparationSummary {
	s := SeparationSummary{Samples: len(seps), Minimum: math.NaN()}
	for i, sep := range seps {
		if sep.Distance <= threshold {
			s.Within++
		}
		if i == 0 || sep.Distance < s.Minimum {
			s.Minimum = sep.Distance
		}
	}
	return s
}
