package analysis

import (
	"sort"

	"github.com/pkg/errors"

	"tag-contact.klederson.com/internal/tag"
)

// DetectMode selects how duplicate tag labels are found.
type DetectMode string

const (
	// DetectScan groups rows by timestamp and flags any id seen twice.
	DetectScan DetectMode = "scan"
	// DetectRatio flags the dataset when rows/distinct ids != distinct ids.
	// It only holds for two tags with balanced rows.
	DetectRatio DetectMode = "ratio"
)

// ParseDetectMode validates a mode name.
func ParseDetectMode(s string) (DetectMode, error) {
	switch DetectMode(s) {
	case DetectScan, DetectRatio:
		return DetectMode(s), nil
	}
	return "", errors.Errorf("unknown detect mode %q", s)
}

// Duplicate is one id recorded more than once at one timestamp.
type Duplicate struct {
	Time  float64
	TagID string
	Count int
}

// Correction describes what CorrectTagIDs changed.
type Correction struct {
	Detected   bool
	NewID      string
	Relabeled  int
	Duplicates []Duplicate
}

// UniqueTagIDs returns the distinct tag ids in order of first appearance.
func UniqueTagIDs(positions []tag.Position) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range positions {
		if !seen[p.TagID] {
			seen[p.TagID] = true
			ids = append(ids, p.TagID)
		}
	}
	return ids
}

// NextTagID returns the letter-sequence successor of the highest id in ids.
// Ids that are not letter sequences are ignored; with none left it returns A.
func NextTagID(ids []string) string {
	highest := -1
	for _, id := range ids {
		if i, ok := tag.Index(id); ok && i > highest {
			highest = i
		}
	}
	return tag.Name(highest + 1)
}

// FindDuplicates lists every (timestamp, id) pair that occurs more than once,
// ordered by time then id.
func FindDuplicates(positions []tag.Position) []Duplicate {
	type key struct {
		t  float64
		id string
	}
	counts := make(map[key]int)
	for _, p := range positions {
		counts[key{p.Time, p.TagID}]++
	}

	var dups []Duplicate
	for k, n := range counts {
		if n > 1 {
			dups = append(dups, Duplicate{Time: k.t, TagID: k.id, Count: n})
		}
	}
	sort.Slice(dups, func(i, j int) bool {
		if dups[i].Time != dups[j].Time {
			return dups[i].Time < dups[j].Time
		}
		return dups[i].TagID < dups[j].TagID
	})
	return dups
}

func ratioMismatch(positions []tag.Position) bool {
	unique := len(UniqueTagIDs(positions))
	if unique == 0 {
		return false
	}
	return unique != len(positions)/unique
}

// CorrectTagIDs relabels positions whose tag id collides with another row at
// the same timestamp. The input slice is left untouched; when nothing is
// detected the result holds the same rows.
//
// In scan mode the second and later occurrences of an id at one timestamp
// get the new id. In ratio mode every odd row index is relabeled.
func CorrectTagIDs(positions []tag.Position, mode DetectMode) ([]tag.Position, Correction) {
	out := make([]tag.Position, len(positions))
	copy(out, positions)

	var c Correction
	c.Duplicates = FindDuplicates(positions)

	switch mode {
	case DetectRatio:
		c.Detected = ratioMismatch(positions)
	default:
		c.Detected = len(c.Duplicates) > 0
	}
	if !c.Detected {
		return out, c
	}

	c.NewID = NextTagID(UniqueTagIDs(positions))

	if mode == DetectRatio {
		for i := 1; i < len(out); i += 2 {
			out[i].TagID = c.NewID
			c.Relabeled++
		}
		return out, c
	}

	type key struct {
		t  float64
		id string
	}
	seen := make(map[key]bool)
	for i, p := range positions {
		k := key{p.Time, p.TagID}
		if seen[k] {
			out[i].TagID = c.NewID
			c.Relabeled++
			continue
		}
		seen[k] = true
	}
	return out, c
}
