package notifications

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devguard-ai/devguard/internal/models"
)

const examplePRNumber = 123

// ExampleTimestamp is the fixed time shown in the documented payload.
var ExampleTimestamp = time.Date(2026, time.January, 8, 12, 0, 0, 0, time.UTC)

// BuildPayload assembles the body a webhook subscribed to event would receive.
// Severity events carry only the findings of that severity; scan_complete
// carries all of them.
func BuildPayload(event models.WebhookEvent, repository string, prNumber int, files []models.FileWithFindings, now time.Time) models.WebhookPayload {
	var all []models.Finding
	for _, f := range files {
		all = append(all, f.Findings...)
	}

	findings := all
	switch event {
	case models.EventHighSeverity:
		findings = filterBySeverity(all, models.SeverityHigh)
	case models.EventMediumSeverity:
		findings = filterBySeverity(all, models.SeverityMedium)
	case models.EventLowSeverity:
		findings = filterBySeverity(all, models.SeverityLow)
	}
	if findings == nil {
		findings = []models.Finding{}
	}

	return models.WebhookPayload{
		Event:      event,
		Repository: repository,
		PRNumber:   prNumber,
		Findings:   findings,
		Timestamp:  now.UTC(),
	}
}

// ExamplePayload is the documented sample for the given event.
func ExamplePayload(event models.WebhookEvent, repository string, files []models.FileWithFindings) models.WebhookPayload {
	return BuildPayload(event, repository, examplePRNumber, files, ExampleTimestamp)
}

func MarshalPayload(p models.WebhookPayload) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}
	return data, nil
}

func filterBySeverity(findings []models.Finding, severity models.Severity) []models.Finding {
	var filtered []models.Finding
	for _, f := range findings {
		if f.Severity == severity {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
