package plot

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r2"

	"tag-contact.klederson.com/internal/analysis"
	"tag-contact.klederson.com/internal/tag"
)

// Track colors for tag A and tag B.
var (
	ColorTagA = lipgloss.Color("#1F77B4")
	ColorTagB = lipgloss.Color("#FF7F0E")
)

// FromReport builds the figure of a finished analysis: the corrected tracks
// of A and B and the positions of tag A's contact readings.
func FromReport(r *analysis.Report, bounds r2.Rect) Scene {
	contacts := make([]r2.Point, len(r.Contacts.PointsA))
	for i, cp := range r.Contacts.PointsA {
		contacts[i] = cp.Position.Point()
	}

	return Scene{
		Bounds: bounds,
		Tracks: []Series{
			{Label: "Tag A", Points: tag.Points(tag.PositionsOf(r.Positions, "A")), Color: ColorTagA},
			{Label: "Tag B", Points: tag.Points(tag.PositionsOf(r.Positions, "B")), Color: ColorTagB},
		},
		Contacts: Series{
			Label:  fmt.Sprintf("Contact Points between tag A and B (within %gm)", r.Options.Threshold),
			Points: contacts,
		},
		ShowTracks:   true,
		ShowContacts: true,
	}
}
