package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/notifications"
	"github.com/devguard-ai/devguard/internal/settings"
)

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Toasts.Clear()
		return m.updateKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.updateWindowSize(msg)
	}

	if m.URLInput.Focused() {
		var cmd tea.Cmd
		m.URLInput, cmd = m.URLInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	m.DetailViewport.Width = msg.Width - 4
	m.DetailViewport.Height = msg.Height - 8
	if m.DetailViewport.Height < 5 {
		m.DetailViewport.Height = 5
	}
	m.URLInput.Width = min(60, msg.Width-10)
	return m, nil
}

func (m *Model) updateKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The URL field swallows every key until it is submitted or blurred.
	if m.URLInput.Focused() {
		return m.updateURLInput(msg)
	}

	if m.Shell.Active == nav.PageRepository && m.Findings.DetailsOpen() {
		return m.updateDetailView(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.switchPage(nav.PageDashboard)
		return m, nil
	case "2":
		m.switchPage(nav.PageRepository)
		return m, nil
	case "3":
		m.switchPage(nav.PageSettings)
		return m, nil
	}

	switch m.Shell.Active {
	case nav.PageDashboard:
		return m.updateDashboard(msg)
	case nav.PageRepository:
		return m.updateRepository(msg)
	case nav.PageSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m *Model) switchPage(p nav.Page) {
	m.Shell.Active = p
	m.logger.Debug().Str("page", p.String()).Msg("switched page")
}

func moveCursor(cursor, n int, key string) int {
	switch key {
	case "up", "k":
		if cursor > 0 {
			cursor--
		}
	case "down", "j":
		if cursor < n-1 {
			cursor++
		}
	case "home", "g":
		cursor = 0
	case "end", "G":
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if m.RepoCursor < len(m.Repos) {
			m.Repo = m.Repos[m.RepoCursor]
		}
		m.switchPage(nav.PageRepository)
		return m, nil
	}
	m.RepoCursor = moveCursor(m.RepoCursor, len(m.Repos), msg.String())
	return m, nil
}

func (m *Model) updateRepository(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	switch msg.String() {
	case "enter", " ":
		if m.Cursor < 0 || m.Cursor >= len(rows) {
			return m, nil
		}
		r := rows[m.Cursor]
		file := m.Findings.Files()[r.file]
		if r.finding < 0 {
			m.Findings.Toggle(file.Path)
			return m, nil
		}
		if m.Findings.Select(file.Findings[r.finding].ID, file.Path) {
			if d, ok := m.Findings.Selected(); ok {
				m.DetailViewport.SetContent(formatFindingDetails(d))
				m.DetailViewport.GotoTop()
			}
		}
		return m, nil
	}
	m.Cursor = moveCursor(m.Cursor, len(rows), msg.String())
	return m, nil
}

func (m *Model) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.Type == tea.KeyEsc {
		m.Findings.CloseDetails()
		return m, nil
	}
	var cmd tea.Cmd
	m.DetailViewport, cmd = m.DetailViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "right", "l":
		m.selectTab(1)
		return m, nil
	case "shift+tab", "left", "h":
		m.selectTab(len(settingsTabs) - 1)
		return m, nil
	}

	switch m.Tab {
	case TabNotifications:
		return m.updateNotificationsTab(msg)
	case TabWebhooks:
		return m.updateWebhooksTab(msg)
	case TabScanFrequency:
		return m.updateFrequencyTab(msg)
	}
	return m, nil
}

func (m *Model) selectTab(step int) {
	m.Tab = settingsTabs[(int(m.Tab)+step)%len(settingsTabs)]
	m.SettingsCursor = 0
	m.Payload = ""
}

func (m *Model) updateNotificationsTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := notificationItems()
	switch msg.String() {
	case "enter", " ":
		item := items[m.SettingsCursor]
		if item.digest {
			m.Notifications.CycleDigest()
			return m, nil
		}
		m.logError(m.Notifications.Toggle(item.field))
		return m, nil
	case "s":
		m.Notifications.Save()
		return m, nil
	}
	m.SettingsCursor = moveCursor(m.SettingsCursor, len(items), msg.String())
	return m, nil
}

func (m *Model) updateFrequencyTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.frequencyItems()
	switch msg.String() {
	case "enter", " ":
		switch items[m.SettingsCursor] {
		case itemTrigger:
			m.Frequency.CycleTrigger()
		case itemScheduled:
			m.logError(m.Frequency.Toggle(settings.FieldScheduledScans))
		case itemScheduleFrequency:
			m.Frequency.CycleScheduleFrequency()
		case itemScanOnPush:
			m.logError(m.Frequency.Toggle(settings.FieldScanOnPush))
		case itemScanDependencies:
			m.logError(m.Frequency.Toggle(settings.FieldScanDependencies))
		case itemDeepScan:
			m.logError(m.Frequency.Toggle(settings.FieldDeepScan))
		}
		m.SettingsCursor = min(m.SettingsCursor, len(m.frequencyItems())-1)
		return m, nil
	case "s":
		m.Frequency.Save()
		return m, nil
	}
	m.SettingsCursor = moveCursor(m.SettingsCursor, len(items), msg.String())
	return m, nil
}

func (m *Model) updateWebhooksTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "a" || msg.String() == "i" {
		m.Payload = ""
		return m, tea.Batch(m.URLInput.Focus(), textinput.Blink)
	}

	hooks := m.Webhooks.List()
	if len(hooks) == 0 {
		return m, nil
	}
	selected := hooks[min(m.SettingsCursor, len(hooks)-1)]

	switch msg.String() {
	case "enter", " ", "t":
		m.logError(m.Webhooks.Toggle(selected.ID))
		return m, nil
	case "d", "delete", "backspace":
		m.logError(m.Webhooks.Remove(selected.ID))
		m.Payload = ""
		if m.SettingsCursor >= m.Webhooks.Len() && m.SettingsCursor > 0 {
			m.SettingsCursor--
		}
		return m, nil
	case "x":
		payload, err := m.Webhooks.Test(selected.ID)
		if err != nil {
			m.logError(err)
			return m, nil
		}
		data, err := notifications.MarshalPayload(payload)
		if err != nil {
			m.logError(err)
			return m, nil
		}
		m.Payload = string(data)
		return m, nil
	}
	m.SettingsCursor = moveCursor(m.SettingsCursor, len(hooks), msg.String())
	return m, nil
}

func (m *Model) updateURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.URLInput.Blur()
		return m, nil
	case tea.KeyEnter:
		_, err := m.Webhooks.Add(m.URLInput.Value())
		switch {
		case err == nil:
			m.URLInput.SetValue("")
			m.URLInput.Blur()
			m.SettingsCursor = m.Webhooks.Len() - 1
		case errors.Is(err, settings.ErrEmptyURL):
			m.URLInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.URLInput, cmd = m.URLInput.Update(msg)
	return m, cmd
}

func (m *Model) logError(err error) {
	if err != nil {
		m.logger.Warn().Err(err).Msg("settings action failed")
	}
}
