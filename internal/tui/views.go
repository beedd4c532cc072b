package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devguard-ai/devguard/internal/findings"
	"github.com/devguard-ai/devguard/internal/history"
	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/nav"
	"github.com/devguard-ai/devguard/internal/settings"
	"github.com/devguard-ai/devguard/internal/ui"
)

func (m *Model) View() string {
	if m.Width == 0 {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(renderShell(m.Shell))
	s.WriteString("\n\n")

	switch m.Shell.Active {
	case nav.PageDashboard:
		s.WriteString(renderDashboard(m))
	case nav.PageRepository:
		if d, ok := m.Findings.Selected(); ok {
			s.WriteString(titleStyle.Render(d.Type))
			s.WriteString("\n")
			s.WriteString(m.DetailViewport.View())
		} else {
			s.WriteString(renderRepository(m))
		}
	case nav.PageSettings:
		s.WriteString(renderSettings(m))
	}

	s.WriteString("\n\n")
	s.WriteString(renderFooter(m))

	return docStyle.Render(s.String())
}

func renderShell(shell nav.Shell) string {
	var tabs []string
	for i, t := range shell.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if t.Active {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, mutedStyle.Render(label))
	}

	conn := successStyle.Render("● " + shell.ConnectionLabel())
	if !shell.Connected {
		conn = errorStyle.Render("○ " + shell.ConnectionLabel())
	}

	plan := mutedStyle.Render(shell.PlanLabel())
	if !shell.ShowUpgrade() {
		plan = proStyle.Render(shell.PlanLabel())
	}

	parts := []string{titleStyle.Render(nav.ProductName), strings.Join(tabs, "   "), "GitHub " + conn, plan}
	if shell.ShowUpgrade() {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("⚡ Upgrade to Pro"))
	}
	return strings.Join(parts, "  │  ")
}

func renderBadges(c models.SeverityCounts) string {
	var parts []string
	for _, sev := range models.Severities {
		if n := c.Get(sev); n > 0 {
			parts = append(parts, badgeStyle(sev).Render(strconv.Itoa(n)))
		}
	}
	return strings.Join(parts, " ")
}

func renderDashboard(m *Model) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Dashboard"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("Monitor your code security across all repositories"))
	s.WriteString("\n")

	s.WriteString(sectionStyle.Render("Repositories"))
	s.WriteString("\n")
	for i, r := range m.Repos {
		line := fmt.Sprintf("%-28s %-12s %s", r.FullName(), r.Language, mutedStyle.Render("scanned "+r.LastScan))
		if i == m.RepoCursor {
			line = cursorStyle.Render(fmt.Sprintf("%-28s %-12s scanned %s", r.FullName(), r.Language, r.LastScan))
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString(sectionStyle.Render("Recent Activity"))
	s.WriteString("\n")
	s.WriteString(renderScanHistory(m.Scans))
	return s.String()
}

func renderRepository(m *Model) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(m.Repo.FullName()))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(fmt.Sprintf("Last scanned %s · %d total scans", m.Repo.LastScan, m.Repo.TotalScans)))
	s.WriteString("\n")
	if totals := m.Findings.Totals(); totals.Total() > 0 {
		s.WriteString("Current issues: " + renderBadges(totals))
		s.WriteString("\n")
	}

	s.WriteString(sectionStyle.Render("Vulnerability Trends"))
	s.WriteString("\n")
	s.WriteString(renderTrends(m.Trends))

	s.WriteString(sectionStyle.Render("Scan History"))
	s.WriteString("\n")
	s.WriteString(renderScanHistory(m.Scans))

	s.WriteString(sectionStyle.Render("Per-File Findings"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(fmt.Sprintf("%d files with issues", len(m.Findings.Files()))))
	s.WriteString("\n")
	s.WriteString(renderFindings(m))
	return s.String()
}

func renderTrends(points []models.TrendPoint) string {
	var s strings.Builder
	peak := history.Peak(points)
	for _, p := range points {
		c := p.Counts()
		s.WriteString(fmt.Sprintf("%-8s %s %s\n",
			p.Label,
			lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Render(ui.TrendBar(c.Total(), peak, 24)),
			mutedStyle.Render(fmt.Sprintf("%d (H%d M%d L%d)", c.Total(), c.High, c.Medium, c.Low)),
		))
	}
	if sum, ok := history.Summarize(points); ok {
		style := mutedStyle
		switch sum.Total.Direction {
		case history.Down:
			style = successStyle
		case history.Up:
			style = errorStyle
		}
		s.WriteString(style.Render(fmt.Sprintf("%s %+d findings (%+.2f%%)", sum.Total.Direction, sum.Total.Delta, sum.Total.Percent)))
		s.WriteString("\n")
	}
	return s.String()
}

func renderScanHistory(scans []models.Scan) string {
	var s strings.Builder
	for _, r := range history.Rows(scans) {
		counts := renderBadges(r.Scan.Findings)
		if r.Clean {
			counts = mutedStyle.Render("Clean")
		}
		s.WriteString(fmt.Sprintf("%s %s %s  %s  %s\n",
			toneStyle(r.Indicator.Tone).Render(r.Indicator.Symbol),
			r.Scan.CommitHash,
			mutedStyle.Render("on "+r.Scan.Branch),
			mutedStyle.Render(r.Scan.Timestamp+" · "+r.Scan.Duration),
			counts,
		))
	}
	return s.String()
}

func renderFindings(m *Model) string {
	var s strings.Builder
	files := m.Findings.Files()
	for i, r := range m.rows() {
		f := files[r.file]
		var line string
		if r.finding < 0 {
			marker := "▸"
			if m.Findings.IsExpanded(f.Path) {
				marker = "▾"
			}
			line = fmt.Sprintf("%s %s  %s", marker, f.Path, renderBadges(findings.CountSeverities(f.Findings)))
		} else {
			finding := f.Findings[r.finding]
			line = fmt.Sprintf("    %s %s %s  %s",
				severityStyle(finding.Severity).Render("▲"),
				finding.Type,
				mutedStyle.Render(fmt.Sprintf("Line %d", finding.Line)),
				mutedStyle.Render(finding.Message),
			)
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = cursorStyle.Render("›") + " "
		}
		s.WriteString(prefix + line)
		s.WriteString("\n")
	}
	return s.String()
}

func renderSettings(m *Model) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Settings"))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render("Configure your " + nav.ProductName + " preferences"))
	s.WriteString("\n\n")

	var tabs []string
	for _, t := range settingsTabs {
		if t == m.Tab {
			tabs = append(tabs, activeTabStyle.Render(t.String()))
			continue
		}
		tabs = append(tabs, mutedStyle.Render(t.String()))
	}
	s.WriteString(strings.Join(tabs, "   "))
	s.WriteString("\n\n")

	switch m.Tab {
	case TabNotifications:
		s.WriteString(renderNotificationsTab(m))
	case TabWebhooks:
		s.WriteString(renderWebhooksTab(m))
	case TabScanFrequency:
		s.WriteString(renderFrequencyTab(m))
	}
	return s.String()
}

func switchLabel(on bool) string {
	if on {
		return successStyle.Render("[on] ")
	}
	return mutedStyle.Render("[off]")
}

func settingLine(selected bool, value, label string) string {
	prefix := "  "
	if selected {
		prefix = cursorStyle.Render("›") + " "
	}
	return prefix + value + " " + label + "\n"
}

var notificationLabels = map[settings.NotificationField]string{
	settings.FieldEmailOnHighSeverity:   "High severity vulnerabilities",
	settings.FieldEmailOnMediumSeverity: "Medium severity vulnerabilities",
	settings.FieldEmailOnLowSeverity:    "Low severity vulnerabilities",
	settings.FieldSlackNotifications:    "Slack notifications",
	settings.FieldPRComments:            "PR comments",
}

func renderNotificationsTab(m *Model) string {
	var s strings.Builder
	prefs := m.Notifications.Preferences()
	s.WriteString(sectionStyle.Render("Notification Preferences"))
	s.WriteString("\n")
	for i, item := range notificationItems() {
		if item.digest {
			s.WriteString(settingLine(i == m.SettingsCursor, fmt.Sprintf("[%s]", prefs.EmailDigest), "Email digest frequency"))
			continue
		}
		s.WriteString(settingLine(i == m.SettingsCursor, switchLabel(prefs.Enabled(item.field)), notificationLabels[item.field]))
	}
	return s.String()
}

func renderFrequencyTab(m *Model) string {
	var s strings.Builder
	prefs := m.Frequency.Preferences()
	s.WriteString(sectionStyle.Render("Scan Frequency"))
	s.WriteString("\n")
	for i, item := range m.frequencyItems() {
		sel := i == m.SettingsCursor
		switch item {
		case itemTrigger:
			s.WriteString(settingLine(sel, fmt.Sprintf("[%s]", prefs.ScanTrigger.Label()), "Scan trigger"))
		case itemScheduled:
			s.WriteString(settingLine(sel, switchLabel(prefs.ScheduledScans), "Enable scheduled scans"))
		case itemScheduleFrequency:
			s.WriteString(settingLine(sel, fmt.Sprintf("  [%s]", prefs.ScheduleFrequency.Label()), "Schedule"))
		case itemScanOnPush:
			s.WriteString(settingLine(sel, switchLabel(prefs.ScanOnPush), "Scan on push"))
		case itemScanDependencies:
			s.WriteString(settingLine(sel, switchLabel(prefs.ScanDependencies), "Scan dependencies"))
		case itemDeepScan:
			s.WriteString(settingLine(sel, switchLabel(prefs.DeepScan), "Deep scan mode "+proStyle.Render("Pro")))
		}
	}
	return s.String()
}

func renderWebhooksTab(m *Model) string {
	var s strings.Builder
	s.WriteString(sectionStyle.Render("Add new webhook"))
	s.WriteString("\n")
	s.WriteString(m.URLInput.View())
	s.WriteString("\n")

	hooks := m.Webhooks.List()
	if len(hooks) > 0 {
		s.WriteString(sectionStyle.Render("Active webhooks"))
		s.WriteString("\n")
	}
	for i, h := range hooks {
		events := make([]string, 0, len(h.Events))
		for _, e := range h.Events {
			events = append(events, ui.EventLabel(e))
		}
		s.WriteString(settingLine(i == m.SettingsCursor, switchLabel(h.Enabled), h.URL+"  "+mutedStyle.Render(strings.Join(events, ", "))))
	}

	if m.Payload != "" {
		s.WriteString(sectionStyle.Render("Webhook payload"))
		s.WriteString("\n")
		s.WriteString(mutedStyle.Render(m.Payload))
		s.WriteString("\n")
	}
	return s.String()
}

func renderFooter(m *Model) string {
	var s strings.Builder
	if n, ok := m.Toasts.Last(); ok {
		style := successStyle
		if n.IsError() {
			style = errorStyle
		}
		s.WriteString(style.Render(n.Title))
		s.WriteString(" " + n.Description)
		s.WriteString("\n")
	}
	s.WriteString(mutedStyle.Render(helpText(m)))
	return s.String()
}

func helpText(m *Model) string {
	switch {
	case m.URLInput.Focused():
		return "enter add • esc cancel"
	case m.Shell.Active == nav.PageRepository && m.Findings.DetailsOpen():
		return "↑/↓ scroll • esc close"
	case m.Shell.Active == nav.PageRepository:
		return "↑/↓ move • enter expand/open • 1-3 pages • q quit"
	case m.Shell.Active == nav.PageSettings && m.Tab == TabWebhooks:
		return "a add • t toggle • d remove • x test • tab next • q quit"
	case m.Shell.Active == nav.PageSettings:
		return "↑/↓ move • enter change • s save • tab next • q quit"
	}
	return "↑/↓ move • enter open • 1-3 pages • q quit"
}
