package models

import "time"

type WebhookEvent string

const (
	EventHighSeverity   WebhookEvent = "high_severity"
	EventMediumSeverity WebhookEvent = "medium_severity"
	EventLowSeverity    WebhookEvent = "low_severity"
	EventScanComplete   WebhookEvent = "scan_complete"
)

var WebhookEvents = []WebhookEvent{EventHighSeverity, EventMediumSeverity, EventLowSeverity, EventScanComplete}

func (e WebhookEvent) Valid() bool {
	for _, v := range WebhookEvents {
		if e == v {
			return true
		}
	}
	return false
}

// DefaultWebhookEvents are subscribed on every newly added webhook.
var DefaultWebhookEvents = []WebhookEvent{EventHighSeverity, EventScanComplete}

type Webhook struct {
	ID      string         `json:"id" yaml:"id"`
	URL     string         `json:"url" yaml:"url"`
	Enabled bool           `json:"enabled" yaml:"enabled"`
	Events  []WebhookEvent `json:"events" yaml:"events"`
}

type WebhookPayload struct {
	Event      WebhookEvent `json:"event"`
	Repository string       `json:"repository"`
	PRNumber   int          `json:"pr_number"`
	Findings   []Finding    `json:"findings"`
	Timestamp  time.Time    `json:"timestamp"`
}
