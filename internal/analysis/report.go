package analysis

import (
	"fmt"
	"io"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"tag-contact.klederson.com/internal/tag"
)

// Options carries the parameters of one analysis run.
type Options struct {
	Threshold float64
	Interval  float64
	Detect    DetectMode
}

// Report holds every result of a run.
type Report struct {
	Options     Options
	Connections ConnectionReport
	Correction  Correction
	Positions   []tag.Position // Corrected position log
	Distances   DistanceReport
	Contacts    ContactSummary
	Separation  SeparationSummary
}

// Run executes the checks in order: connections, tag id correction,
// distance verification, contact aggregation and the position separation.
func Run(s *tag.Session, opts Options) *Report {
	r := &Report{Options: opts}

	r.Connections = CheckConnections(s.A, s.B)
	log.WithFields(log.Fields{
		"tag_a": r.Connections.TagA,
		"tag_b": r.Connections.TagB,
	}).Info("contact ids checked")

	r.Positions, r.Correction = CorrectTagIDs(s.Positions, opts.Detect)
	if r.Correction.Detected {
		log.WithFields(log.Fields{
			"mode":       opts.Detect,
			"new_id":     r.Correction.NewID,
			"relabeled":  r.Correction.Relabeled,
			"duplicates": len(r.Correction.Duplicates),
		}).Warn("duplicate tag id detected at a single timepoint")
	}

	r.Distances = VerifyDistances(s.A, s.B, opts.Threshold)
	if n := len(r.Distances.Mismatches); n > 0 {
		log.WithField("rows", n).Warn("tag A and tag B distances disagree")
	}

	r.Contacts = AggregateContacts(s.A, s.B, r.Positions, opts.Threshold, opts.Interval)
	r.Separation = SummarizeSeparation(PositionSeparation(r.Positions, "A", "B"), opts.Threshold)

	log.WithFields(log.Fields{
		"windows":  r.Distances.Windows,
		"duration": r.Contacts.Duration,
	}).Info("contact analysis finished")
	return r
}

// WriteText prints the console report.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Contact IDs from Tag A: %s\n", formatIDs(r.Connections.TagA))
	fmt.Fprintf(&b, "Contact IDs from Tag B: %s\n", formatIDs(r.Connections.TagB))

	if r.Correction.Detected {
		fmt.Fprintf(&b, "Measurement Error: Duplicate TagID detected at single timepoint (%d rows relabeled to %s)\n",
			r.Correction.Relabeled, r.Correction.NewID)
	}

	if len(r.Distances.Mismatches) > 0 {
		b.WriteString("Mismatched distances between Tag A and Tag B files\n")
		fmt.Fprintf(&b, "%10s  %14s  %14s\n", tag.ColTime, "Distance [m]_A", "Distance [m]_B")
		for _, m := range r.Distances.Mismatches {
			fmt.Fprintf(&b, "%10g  %14g  %14g\n", m.Time, m.DistanceA, m.DistanceB)
		}
	} else {
		b.WriteString("All distances between Tag A and Tag B match.\n")
	}

	th := r.Options.Threshold
	fmt.Fprintf(&b, "Uninterrupted sessions between tag A and B within %g meters: %d\n", th, r.Distances.Windows)
	if r.Separation.Samples > 0 {
		fmt.Fprintf(&b, "Tracked samples within %g meters: %d of %d (closest %.2f m)\n",
			th, r.Separation.Within, r.Separation.Samples, r.Separation.Minimum)
	}
	fmt.Fprintf(&b, "Total contact duration within %g meters: %g\n", th, r.Contacts.Duration)

	_, err := io.WriteString(w, b.String())
	return err
}

func formatIDs(ids []string) string {
	return "[" + strings.Join(ids, " ") + "]"
}

type yamlMismatch struct {
	Time      float64 `yaml:"time"`
	DistanceA float64 `yaml:"distance_a"`
	DistanceB float64 `yaml:"distance_b"`
}

type yamlCorrection struct {
	Detected  bool   `yaml:"detected"`
	Mode      string `yaml:"mode"`
	NewID     string `yaml:"new_id,omitempty"`
	Relabeled int    `yaml:"relabeled"`
}

type yamlSeparation struct {
	Samples int      `yaml:"samples"`
	Within  int      `yaml:"within"`
	Minimum *float64 `yaml:"minimum,omitempty"`
}

type yamlReport struct {
	Threshold  float64             `yaml:"threshold"`
	Interval   float64             `yaml:"interval"`
	ContactIDs map[string][]string `yaml:"contact_ids"`
	Correction yamlCorrection      `yaml:"correction"`
	Paired     int                 `yaml:"paired_rows"`
	Mismatches []yamlMismatch      `yaml:"mismatches"`
	Windows    int                 `yaml:"windows"`
	WithinA    int                 `yaml:"within_a"`
	WithinB    int                 `yaml:"within_b"`
	Duration   float64             `yaml:"contact_duration"`
	Separation yamlSeparation      `yaml:"separation"`
}

// WriteYAML prints a machine readable summary.
func (r *Report) WriteYAML(w io.Writer) error {
	var y yamlReport
	y.Threshold = r.Options.Threshold
	y.Interval = r.Options.Interval
	y.ContactIDs = map[string][]string{
		tag.VarName("A"): r.Connections.TagA,
		tag.VarName("B"): r.Connections.TagB,
	}
	y.Correction.Detected = r.Correction.Detected
	y.Correction.Mode = string(r.Options.Detect)
	y.Correction.NewID = r.Correction.NewID
	y.Correction.Relabeled = r.Correction.Relabeled
	y.Paired = r.Distances.Paired
	y.Mismatches = []yamlMismatch{}
	for _, m := range r.Distances.Mismatches {
		y.Mismatches = append(y.Mismatches, yamlMismatch{Time: m.Time, DistanceA: m.DistanceA, DistanceB: m.DistanceB})
	}
	y.Windows = r.Distances.Windows
	y.WithinA = r.Contacts.WithinA
	y.WithinB = r.Contacts.WithinB
	y.Duration = r.Contacts.Duration
	y.Separation.Samples = r.Separation.Samples
	y.Separation.Within = r.Separation.Within
	if !math.IsNaN(r.Separation.Minimum) {
		m := r.Separation.Minimum
		y.Separation.Minimum = &m
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&y); err != nil {
		return err
	}
	return enc.Close()
}
