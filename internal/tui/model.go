package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"

	"github.com/devguard-ai/devguard/internal/findings"
	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/notifications"
	"github.com/devguard-ai/devguard/internal/settings"
)

type SettingsTab int

const (
	TabNotifications SettingsTab = iota
	TabWebhooks
	TabScanFrequency
)

var settingsTabs = []SettingsTab{TabNotifications, TabWebhooks, TabScanFrequency}

func (t SettingsTab) String() string {
	switch t {
	case TabNotifications:
		return "Notifications"
	case TabWebhooks:
		return "Webhooks"
	case TabScanFrequency:
		return "Scan Frequency"
	}
	return "Unknown"
}

// row addresses one line of the findings list. finding is -1 for the file itself.
type row struct {
	file    int
	finding int
}

type Model struct {
	Shell  nav.Shell
	Width  int
	Height int

	// Dashboard
	Repos      []models.Repository
	RepoCursor int

	// Repository page
	Repo           models.Repository
	Scans          []models.Scan
	Trends         []models.TrendPoint
	Findings       *findings.Aggregator
	Cursor         int
	DetailViewport viewport.Model

	// Settings page
	Tab            SettingsTab
	SettingsCursor int
	Notifications  *settings.NotificationPanel
	Frequency      *settings.ScanFrequencyPanel
	Webhooks       *settings.WebhookPanel
	URLInput       textinput.Model
	Payload        string

	Toasts *notifications.Recorder

	logger *zerolog.Logger
}

func New(cat *fixtures.Catalog, shell nav.Shell, logger *zerolog.Logger) *Model {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	toasts := &notifications.Recorder{}

	input := textinput.New()
	input.Placeholder = "https://your-server.com/webhook"
	input.CharLimit = 200
	input.Width = 50
	input.Prompt = "› "

	vp := viewport.New(0, 0)
	vp.Style = detailStyle

	cursor := 0
	for i, r := range cat.Repositories {
		if r.FullName() == cat.Repository.FullName() {
			cursor = i
		}
	}

	return &Model{
		Shell:          shell,
		Repos:          cat.Repositories,
		RepoCursor:     cursor,
		Repo:           cat.Repository,
		Scans:          cat.Scans,
		Trends:         cat.Trends,
		Findings:       findings.New(cat.Files, findings.NewDetailIndex(cat.Details), logger),
		DetailViewport: vp,
		Notifications:  settings.NewNotificationPanel(toasts),
		Frequency:      settings.NewScanFrequencyPanel(toasts),
		Webhooks: settings.NewWebhookPanel(cat.Webhooks, toasts, logger).
			WithPayloadSource(cat.Repository.FullName(), cat.Files),
		URLInput: input,
		Toasts:   toasts,
		logger:   logger,
	}
}

func (m *Model) rows() []row {
	var rows []row
	for i, f := range m.Findings.Files() {
		rows = append(rows, row{file: i, finding: -1})
		if !m.Findings.IsExpanded(f.Path) {
			continue
		}
		for j := range f.Findings {
			rows = append(rows, row{file: i, finding: j})
		}
	}
	return rows
}

type notificationItem struct {
	field  settings.NotificationField
	digest bool
}

func notificationItems() []notificationItem {
	return []notificationItem{
		{field: settings.FieldEmailOnHighSeverity},
		{field: settings.FieldEmailOnMediumSeverity},
		{field: settings.FieldEmailOnLowSeverity},
		{digest: true},
		{field: settings.FieldSlackNotifications},
		{field: settings.FieldPRComments},
	}
}

type frequencyItem int

const (
	itemTrigger frequencyItem = iota
	itemScheduled
	itemScheduleFrequency
	itemScanOnPush
	itemScanDependencies
	itemDeepScan
)

// frequencyItems hides the schedule choice while scheduled scans are off.
func (m *Model) frequencyItems() []frequencyItem {
	items := []frequencyItem{itemTrigger, itemScheduled}
	if m.Frequency.Preferences().ScheduledScans {
		items = append(items, itemScheduleFrequency)
	}
	return append(items, itemScanOnPush, itemScanDependencies, itemDeepScan)
}

func (m *Model) settingsLen() int {
	switch m.Tab {
	case TabNotifications:
		return len(notificationItems())
	case TabWebhooks:
		return m.Webhooks.Len()
	case TabScanFrequency:
		return len(m.frequencyItems())
	}
	return 0
}
