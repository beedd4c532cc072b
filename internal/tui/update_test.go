package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/notifications"
)

func newTestModel(t *testing.T, page nav.Page) *Model {
	t.Helper()
	cat, err := fixtures.Default()
	require.NoError(t, err)
	m := New(cat, nav.Shell{Connected: true, Plan: models.PlanFree, Active: page}, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func TestViewBeforeWindowSize(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)
	m := New(cat, nav.Shell{}, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestPageSwitching(t *testing.T) {
	m := newTestModel(t, nav.PageDashboard)

	press(m, runes("3"))
	assert.Equal(t, nav.PageSettings, m.Shell.Active)

	press(m, runes("1"), enter)
	assert.Equal(t, nav.PageRepository, m.Shell.Active)
}

func TestOpenSelectedRepository(t *testing.T) {
	m := newTestModel(t, nav.PageDashboard)

	press(m, down, enter)
	assert.Equal(t, nav.PageRepository, m.Shell.Active)
	assert.Equal(t, "acme-corp/payments-api", m.Repo.FullName())
	assert.Contains(t, m.View(), "acme-corp/payments-api")

	press(m, runes("1"), tea.KeyMsg{Type: tea.KeyUp}, enter)
	assert.Equal(t, "acme-corp/web-app", m.Repo.FullName())
}

func TestToggleFileRow(t *testing.T) {
	m := newTestModel(t, nav.PageRepository)
	require.Len(t, m.rows(), 4)

	press(m, enter)
	assert.True(t, m.Findings.IsExpanded("src/api/auth.ts"))
	assert.Len(t, m.rows(), 6)
	assert.Contains(t, m.View(), "SQL Injection")

	press(m, enter)
	assert.False(t, m.Findings.IsExpanded("src/api/auth.ts"))
	assert.Len(t, m.rows(), 4)
}

func TestOpenAndCloseFindingDetails(t *testing.T) {
	m := newTestModel(t, nav.PageRepository)

	press(m, enter, down, enter)
	require.True(t, m.Findings.DetailsOpen())
	d, ok := m.Findings.Selected()
	require.True(t, ok)
	assert.Equal(t, "1", d.ID)
	assert.Equal(t, "src/api/auth.ts", d.FilePath)
	assert.Contains(t, m.View(), "Remediation")

	// q closes the pane instead of quitting.
	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd)
	assert.False(t, m.Findings.DetailsOpen())
	assert.True(t, m.Findings.IsExpanded("src/api/auth.ts"))
}

func TestFindingWithoutDetailsStaysClosed(t *testing.T) {
	m := newTestModel(t, nav.PageRepository)

	// Move to src/controllers/user.ts, expand it and pick its second finding.
	press(m, down, down, enter, down, down, enter)

	assert.True(t, m.Findings.IsExpanded("src/controllers/user.ts"))
	assert.False(t, m.Findings.DetailsOpen())
	_, ok := m.Findings.Selected()
	assert.False(t, ok)
}

func TestSettingsTabsWrap(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)

	press(m, tab)
	assert.Equal(t, TabWebhooks, m.Tab)
	press(m, tab, tab)
	assert.Equal(t, TabNotifications, m.Tab)
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabScanFrequency, m.Tab)
}

func TestNotificationToggleAndSave(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)

	press(m, down, enter)
	assert.True(t, m.Notifications.Preferences().EmailOnMediumSeverity)

	press(m, runes("s"))
	n, ok := m.Toasts.Last()
	require.True(t, ok)
	assert.Equal(t, "Settings saved", n.Title)

	// The next key press dismisses the toast.
	press(m, down)
	_, ok = m.Toasts.Last()
	assert.False(t, ok)
}

func TestScheduleItemFollowsScheduledScans(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)
	press(m, tab, tab)
	require.Equal(t, TabScanFrequency, m.Tab)
	assert.Len(t, m.frequencyItems(), 5)

	press(m, down, enter)
	assert.True(t, m.Frequency.Preferences().ScheduledScans)
	assert.Len(t, m.frequencyItems(), 6)
	assert.Contains(t, m.View(), "Schedule")
}

func TestAddWebhookThroughInput(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)
	press(m, tab, runes("a"))
	require.True(t, m.URLInput.Focused())

	m.URLInput.SetValue("not a url")
	press(m, enter)
	assert.True(t, m.URLInput.Focused())
	assert.Equal(t, 1, m.Webhooks.Len())
	n, ok := m.Toasts.Last()
	require.True(t, ok)
	assert.Equal(t, "Invalid URL", n.Title)
	assert.Equal(t, notifications.VariantDestructive, n.Variant)

	m.URLInput.SetValue("https://hooks.example.com/devguard")
	press(m, enter)
	assert.False(t, m.URLInput.Focused())
	assert.Empty(t, m.URLInput.Value())
	require.Equal(t, 2, m.Webhooks.Len())
	assert.Equal(t, 1, m.SettingsCursor)
	assert.Equal(t, "https://hooks.example.com/devguard", m.Webhooks.List()[1].URL)
}

func TestBlankWebhookInputBlurs(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)
	press(m, tab, runes("a"), enter)

	assert.False(t, m.URLInput.Focused())
	assert.Equal(t, 1, m.Webhooks.Len())
	_, ok := m.Toasts.Last()
	assert.False(t, ok)
}

func TestWebhookTestAndRemove(t *testing.T) {
	m := newTestModel(t, nav.PageSettings)
	press(m, tab, runes("x"))
	assert.Contains(t, m.Payload, `"pr_number": 123`)
	assert.Contains(t, m.View(), "Webhook payload")

	press(m, runes("d"))
	assert.Equal(t, 0, m.Webhooks.Len())
	assert.Empty(t, m.Payload)
	n, ok := m.Toasts.Last()
	require.True(t, ok)
	assert.Equal(t, "Webhook removed", n.Title)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nav.PageDashboard)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
