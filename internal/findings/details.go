package findings

import "github.com/devguard-ai/devguard/internal/models"

// DetailIndex maps a finding id to its expanded vulnerability record.
type DetailIndex map[string]models.VulnerabilityDetails

func NewDetailIndex(details []models.VulnerabilityDetails) DetailIndex {
	idx := make(DetailIndex, len(details))
	for _, d := range details {
		idx[d.ID] = d
	}
	return idx
}

// Lookup reports whether a detail record exists for id.
func (idx DetailIndex) Lookup(id string) (models.VulnerabilityDetails, bool) {
	d, ok := idx[id]
	return d, ok
}

// Missing returns the ids in files that have no detail record, in fixture order.
func (idx DetailIndex) Missing(files []models.FileWithFindings) []string {
	var missing []string
	for _, f := range files {
		for _, finding := range f.Findings {
			if _, ok := idx[finding.ID]; !ok {
				missing = append(missing, finding.ID)
			}
		}
	}
	return missing
}
