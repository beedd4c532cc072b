package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/devguard-ai/devguard/internal/history"
	"github.com/devguard-ai/devguard/internal/models"
)

var (
	subtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#777777"}
	special = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	mutedStyle = lipgloss.NewStyle().Foreground(subtle)

	activeTabStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(special).Bold(true)

	proStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			PaddingRight(2)

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)

func severityStyle(s models.Severity) lipgloss.Style {
	switch s {
	case models.SeverityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case models.SeverityMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	}
}

func badgeStyle(s models.Severity) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0"))
	switch s {
	case models.SeverityHigh:
		return base.Background(lipgloss.Color("196"))
	case models.SeverityMedium:
		return base.Background(lipgloss.Color("214"))
	default:
		return base.Background(lipgloss.Color("39"))
	}
}

func toneStyle(t history.Tone) lipgloss.Style {
	switch t {
	case history.TonePositive:
		return lipgloss.NewStyle().Foreground(special)
	case history.ToneNegative:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	}
}
