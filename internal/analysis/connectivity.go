package analysis

import "tag-contact.klederson.com/internal/tag"

// ConnectionReport lists the contact ids seen by each tag.
type ConnectionReport struct {
	TagA []string
	TagB []string
}

// ContactIDs returns the distinct contact ids in order of first appearance.
func ContactIDs(readings []tag.Reading) []string {
	seen := make(map[string]bool)
	ids := []string{}
	for _, r := range readings {
		if !seen[r.ContactID] {
			seen[r.ContactID] = true
			ids = append(ids, r.ContactID)
		}
	}
	return ids
}

// CheckConnections reports which contacts each tag detected. Missing or
// unexpected ids are a first hint of a broken pairing.
func CheckConnections(a, b []tag.Reading) ConnectionReport {
	return ConnectionReport{
		TagA: ContactIDs(a),
		TagB: ContactIDs(b),
	}
}
