// Package findings groups findings by file, rolls up severity counts and holds
// the expand/collapse and detail selection state of the findings view.
package findings

import (
	"github.com/rs/zerolog"

	"github.com/devguard-ai/devguard/internal/models"
)

type Aggregator struct {
	files    []models.FileWithFindings
	details  DetailIndex
	expanded map[string]struct{}
	selected *models.VulnerabilityDetails
	logger   *zerolog.Logger
}

func New(files []models.FileWithFindings, details DetailIndex, logger *zerolog.Logger) *Aggregator {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if details == nil {
		details = DetailIndex{}
	}
	return &Aggregator{
		files:    files,
		details:  details,
		expanded: map[string]struct{}{},
		logger:   logger,
	}
}

// Files returns the files in fixture order.
func (a *Aggregator) Files() []models.FileWithFindings {
	return a.files
}

// Toggle flips whether path is expanded.
func (a *Aggregator) Toggle(path string) {
	if _, ok := a.expanded[path]; ok {
		delete(a.expanded, path)
		a.logger.Debug().Str("path", path).Msg("collapsed file")
		return
	}
	a.expanded[path] = struct{}{}
	a.logger.Debug().Str("path", path).Msg("expanded file")
}

func (a *Aggregator) IsExpanded(path string) bool {
	_, ok := a.expanded[path]
	return ok
}

// ExpandedPaths lists the expanded files that exist in the fixture, in fixture order.
func (a *Aggregator) ExpandedPaths() []string {
	var paths []string
	for _, f := range a.files {
		if a.IsExpanded(f.Path) {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

func CountSeverities(findings []models.Finding) models.SeverityCounts {
	var c models.SeverityCounts
	for _, f := range findings {
		switch f.Severity {
		case models.SeverityHigh:
			c.High++
		case models.SeverityMedium:
			c.Medium++
		case models.SeverityLow:
			c.Low++
		}
	}
	return c
}

// Totals sums the severity counts of every file.
func (a *Aggregator) Totals() models.SeverityCounts {
	var total models.SeverityCounts
	for _, f := range a.files {
		total = total.Add(CountSeverities(f.Findings))
	}
	return total
}

// Select opens the detail view for the finding id. A finding without a detail
// record leaves the view untouched and reports false.
func (a *Aggregator) Select(id, filePath string) bool {
	d, ok := a.details.Lookup(id)
	if !ok {
		return false
	}
	if d.FilePath == "" {
		d.FilePath = filePath
	}
	a.selected = &d
	a.logger.Debug().Str("finding", id).Str("file", d.FilePath).Msg("opened finding details")
	return true
}

func (a *Aggregator) Selected() (models.VulnerabilityDetails, bool) {
	if a.selected == nil {
		return models.VulnerabilityDetails{}, false
	}
	return *a.selected, true
}

func (a *Aggregator) DetailsOpen() bool {
	return a.selected != nil
}

func (a *Aggregator) CloseDetails() {
	a.selected = nil
}
