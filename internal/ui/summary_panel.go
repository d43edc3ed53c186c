package ui

import (
	"fmt"
	"strings"

	"tag-contact.klederson.com/internal/analysis"
)

// RenderSummaryPanel renders the analysis results with a scrollable
// mismatch list. The fixed header stays on top; only mismatch rows scroll.
func RenderSummaryPanel(r *analysis.Report, width, height, scroll int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2

	field := func(label, value string) string {
		return StyleLabel.Render(fmt.Sprintf(" %-11s", label)) + StyleValue.Render(value)
	}
	sep := StyleSeparator.Render(strings.Repeat("-", innerW))

	lines := []string{
		StylePanelTitle.Render("SUMMARY"),
		sep,
		field("Tag A sees", strings.Join(r.Connections.TagA, " ")),
		field("Tag B sees", strings.Join(r.Connections.TagB, " ")),
		field("Paired", fmt.Sprintf("%d rows", r.Distances.Paired)),
		field("Windows", fmt.Sprintf("%d", r.Distances.Windows)),
		field("Within A/B", fmt.Sprintf("%d / %d", r.Contacts.WithinA, r.Contacts.WithinB)),
		field("Contact", fmt.Sprintf("%gs", r.Contacts.Duration)),
	}
	if r.Separation.Samples > 0 {
		lines = append(lines, field("Tracked", fmt.Sprintf("%d/%d <= %gm", r.Separation.Within, r.Separation.Samples, r.Options.Threshold)))
	}

	if r.Correction.Detected {
		lines = append(lines, " "+StyleWarn.Render(fmt.Sprintf("Duplicate TagID: %d -> %s", r.Correction.Relabeled, r.Correction.NewID)))
	} else {
		lines = append(lines, " "+StyleOK.Render("Tag ids consistent"))
	}

	lines = append(lines, sep)
	mm := r.Distances.Mismatches
	if len(mm) == 0 {
		lines = append(lines, " "+StyleOK.Render("All distances match"))
	} else {
		lines = append(lines, " "+StyleError.Render(fmt.Sprintf("Mismatches [%d]", len(mm))))
		lines = append(lines, StyleLabel.Render(fmt.Sprintf(" %8s %7s %7s", "t [s]", "A [m]", "B [m]")))

		space := innerH - len(lines)
		if space < 1 {
			space = 1
		}
		if scroll > len(mm)-1 {
			scroll = len(mm) - 1
		}
		if scroll < 0 {
			scroll = 0
		}
		for i := scroll; i < len(mm) && i-scroll < space; i++ {
			m := mm[i]
			lines = append(lines, fmt.Sprintf(" %8.2f %7.2f %7.2f", m.Time, m.DistanceA, m.DistanceB))
		}
	}

	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for len(lines) < innerH {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; clamp overflow.
	out := strings.Split(rendered, "\n")
	if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}
