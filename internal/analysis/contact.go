package analysis

import (
	"math"

	"tag-contact.klederson.com/internal/tag"
)

// ContactPoint is a within-threshold reading placed at its tag's position.
type ContactPoint struct {
	Reading  tag.Reading
	Position tag.Position
}

// ContactSummary is the outcome of AggregateContacts.
type ContactSummary struct {
	WithinA  int
	WithinB  int
	Duration float64
	PointsA  []ContactPoint
	PointsB  []ContactPoint
}

// FilterWithin keeps the readings at most threshold meters away.
func FilterWithin(readings []tag.Reading, threshold float64) []tag.Reading {
	var out []tag.Reading
	for _, r := range readings {
		if r.Distance <= threshold {
			out = append(out, r)
		}
	}
	return out
}

// JoinPositions pairs each reading with the positions of tagID that share its
// timestamp. Readings without a matching position are dropped.
func JoinPositions(readings []tag.Reading, positions []tag.Position, tagID string) []ContactPoint {
	index := make(map[float64][]tag.Position)
	for _, p := range positions {
		if p.TagID == tagID {
			index[p.Time] = append(index[p.Time], p)
		}
	}

	var out []ContactPoint
	for _, r := range readings {
		for _, p := range index[r.Time] {
			out = append(out, ContactPoint{Reading: r, Position: p})
		}
	}
	return out
}

// ContactDuration is the smaller of the two within-threshold counts times the
// sampling interval. Using the minimum avoids counting one-sided reads.
func ContactDuration(countA, countB int, interval float64) float64 {
	return float64(min(countA, countB)) * interval
}

// AggregateContacts filters both tags to the contact readings, places them
// on the position track of their own tag and totals the contact time.
func AggregateContacts(a, b []tag.Reading, positions []tag.Position, threshold, interval float64) ContactSummary {
	withinA := FilterWithin(a, threshold)
	withinB := FilterWithin(b, threshold)

	return ContactSummary{
		WithinA:  len(withinA),
		WithinB:  len(withinB),
		Duration: roundDuration(ContactDuration(len(withinA), len(withinB), interval)),
		PointsA:  JoinPositions(withinA, positions, "A"),
		PointsB:  JoinPositions(withinB, positions, "B"),
	}
}

// roundDuration strips float noise such as 0.30000000000000004.
func roundDuration(d float64) float64 {
	return math.Round(d*1e9) / 1e9
}
