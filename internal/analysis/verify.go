package analysis

import (
	"math"
	"sort"

	"tag-contact.klederson.com/internal/tag"
)

// Tolerances of IsClose.
const (
	RelTolerance = 1e-5
	AbsTolerance = 1e-8
)

// PairedReading is a tag A reading joined with a tag B reading at the same
// timestamp.
type PairedReading struct {
	Time      float64
	ContactA  string
	ContactB  string
	DistanceA float64
	DistanceB float64
}

// Within reports whether both tags measured at most threshold meters.
func (p PairedReading) Within(threshold float64) bool {
	return p.DistanceA <= threshold && p.DistanceB <= threshold
}

// DistanceReport is the outcome of VerifyDistances.
type DistanceReport struct {
	Paired     int
	Mismatches []PairedReading
	Windows    int
}

// IsClose compares two distances with a relative and an absolute tolerance.
// The relative term scales with b. NaN is never close to anything and an
// infinity is only close to the same infinity.
func IsClose(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= AbsTolerance+RelTolerance*math.Abs(b)
}

// JoinByTime inner-joins the two reading sets on timestamp. Every pair of
// rows sharing a timestamp yields one result; the output is ordered by time
// and keeps tag A's order within a timestamp.
func JoinByTime(a, b []tag.Reading) []PairedReading {
	index := make(map[float64][]tag.Reading, len(b))
	for _, r := range b {
		index[r.Time] = append(index[r.Time], r)
	}

	var out []PairedReading
	for _, ra := range a {
		for _, rb := range index[ra.Time] {
			out = append(out, PairedReading{
				Time:      ra.Time,
				ContactA:  ra.ContactID,
				ContactB:  rb.ContactID,
				DistanceA: ra.Distance,
				DistanceB: rb.Distance,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// CountWindows counts maximal runs of true values.
func CountWindows(flags []bool) int {
	windows := 0
	inContact := false
	for _, f := range flags {
		if f {
			if !inContact {
				windows++
				inContact = true
			}
		} else {
			inContact = false
		}
	}
	return windows
}

// WithinFlags marks each joined row where both distances are within threshold.
func WithinFlags(pairs []PairedReading, threshold float64) []bool {
	flags := make([]bool, len(pairs))
	for i, p := range pairs {
		flags[i] = p.Within(threshold)
	}
	return flags
}

// VerifyDistances joins tag A and tag B, lists rows whose distances
// disagree, and counts the uninterrupted contact windows.
func VerifyDistances(a, b []tag.Reading, threshold float64) DistanceReport {
	pairs := JoinByTime(a, b)

	var mismatches []PairedReading
	for _, p := range pairs {
		if !IsClose(p.DistanceA, p.DistanceB) {
			mismatches = append(mismatches, p)
		}
	}

	return DistanceReport{
		Paired:     len(pairs),
		Mismatches: mismatches,
		Windows:    CountWindows(WithinFlags(pairs, threshold)),
	}
}
