package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devguard-ai/devguard/internal/models"
	"github.com/devguard-ai/devguard/internal/ui"
)

func formatFindingDetails(d models.VulnerabilityDetails) string {
	var s strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240"))
	valStyle := lipgloss.NewStyle().PaddingLeft(2)

	s.WriteString(severityStyle(d.Severity).Bold(true).Render(fmt.Sprintf("[%s] %s", strings.ToUpper(string(d.Severity)), d.Type)))
	s.WriteString("\n")
	s.WriteString(mutedStyle.Render(fmt.Sprintf("%s:%d", d.FilePath, d.Line)))
	s.WriteString("\n\n")
	s.WriteString(valStyle.Render(d.Message))
	s.WriteString("\n\n")

	s.WriteString(headerStyle.Render("Vulnerable code:"))
	s.WriteString("\n")
	s.WriteString(formatSnippet(d))
	s.WriteString("\n\n")

	s.WriteString(headerStyle.Render("Remediation:"))
	s.WriteString("\n")
	s.WriteString(valStyle.Render(d.Remediation.Description))
	s.WriteString("\n")

	if d.Remediation.FixedCode != "" {
		s.WriteString("\n")
		s.WriteString(headerStyle.Render("Suggested fix:"))
		s.WriteString("\n")
		fixed := ui.Highlight(strings.TrimSuffix(d.Remediation.FixedCode, "\n"), d.FilePath)
		for _, line := range strings.Split(fixed, "\n") {
			s.WriteString("  " + line + "\n")
		}
	}

	if len(d.Remediation.References) > 0 {
		s.WriteString("\n")
		s.WriteString(headerStyle.Render("References:"))
		s.WriteString("\n")
		for _, ref := range d.Remediation.References {
			s.WriteString(valStyle.Render("• " + ref))
			s.WriteString("\n")
		}
	}

	return s.String()
}

func formatSnippet(d models.VulnerabilityDetails) string {
	snippet := d.CodeSnippet
	code := ui.Highlight(strings.Join(snippet.Lines, "\n"), d.FilePath)

	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for i, l := range lines {
		n := snippet.StartLine + i
		gutter := mutedStyle.Render(fmt.Sprintf("%4d │ ", n))
		if n == snippet.HighlightLine {
			gutter = errorStyle.Render(fmt.Sprintf("%4d ▶ ", n))
		}
		out = append(out, gutter+l)
	}
	return strings.Join(out, "\n")
}
