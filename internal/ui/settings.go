package ui

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/settings"
)

func onOff(v bool) string {
	if v {
		return pterm.FgGreen.Sprint("on")
	}
	return pterm.FgGray.Sprint("off")
}

func PrintNotificationSettings(p settings.NotificationPreferences) {
	pterm.DefaultSection.Println("Notification Preferences")
	data := [][]string{
		{"Setting", "Value"},
		{"High severity vulnerabilities", onOff(p.EmailOnHighSeverity)},
		{"Medium severity vulnerabilities", onOff(p.EmailOnMediumSeverity)},
		{"Low severity vulnerabilities", onOff(p.EmailOnLowSeverity)},
		{"Email digest", string(p.EmailDigest)},
		{"Slack notifications", onOff(p.SlackNotifications)},
		{"PR comments", onOff(p.PRComments)},
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func PrintScanFrequencySettings(p settings.ScanFrequencyPreferences) {
	pterm.DefaultSection.Println("Scan Frequency")
	data := [][]string{
		{"Setting", "Value"},
		{"Scan trigger", p.ScanTrigger.Label()},
		{"Scheduled scans", onOff(p.ScheduledScans)},
	}
	if p.ScheduledScans {
		data = append(data, []string{"Schedule", p.ScheduleFrequency.Label()})
	}
	data = append(data,
		[]string{"Scan on push", onOff(p.ScanOnPush)},
		[]string{"Scan dependencies", onOff(p.ScanDependencies)},
		[]string{"Deep scan mode " + pterm.FgMagenta.Sprint("[Pro]"), onOff(p.DeepScan)},
	)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func EventLabel(e models.WebhookEvent) string {
	return strings.ReplaceAll(string(e), "_", " ")
}

func PrintWebhooks(hooks []models.Webhook) {
	pterm.DefaultSection.Println("Webhook Configuration")
	if len(hooks) == 0 {
		pterm.Info.Println("No webhooks configured.")
		return
	}

	data := [][]string{{"ID", "URL", "Enabled", "Events"}}
	for _, h := range hooks {
		events := make([]string, 0, len(h.Events))
		for _, e := range h.Events {
			events = append(events, EventLabel(e))
		}
		data = append(data, []string{h.ID, h.URL, onOff(h.Enabled), strings.Join(events, ", ")})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
