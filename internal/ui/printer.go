package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/devguard-ai/devguard/internal/findings"
	"github.com/devguard-ai/devguard/internal/history"
	"github.com/devguard-ai/devguard/internal/models"
)

func SeverityLabel(s models.Severity) string {
	switch s {
	case models.SeverityHigh:
		return pterm.FgRed.Sprint("HIGH")
	case models.SeverityMedium:
		return pterm.FgYellow.Sprint("MEDIUM")
	default:
		return pterm.FgBlue.Sprint("LOW")
	}
}

// Badges renders one count badge per severity, hiding zero counts.
func Badges(c models.SeverityCounts) string {
	var parts []string
	if c.High > 0 {
		parts = append(parts, pterm.NewStyle(pterm.BgRed, pterm.FgWhite).Sprint(" "+strconv.Itoa(c.High)+" "))
	}
	if c.Medium > 0 {
		parts = append(parts, pterm.NewStyle(pterm.BgYellow, pterm.FgBlack).Sprint(" "+strconv.Itoa(c.Medium)+" "))
	}
	if c.Low > 0 {
		parts = append(parts, pterm.NewStyle(pterm.BgBlue, pterm.FgWhite).Sprint(" "+strconv.Itoa(c.Low)+" "))
	}
	return strings.Join(parts, " ")
}

func PrintRepositoryHeader(repo models.Repository, current models.SeverityCounts) {
	pterm.DefaultSection.Println(repo.FullName())
	pterm.Println(pterm.FgGray.Sprintf("Last scanned %s · %d total scans", repo.LastScan, repo.TotalScans))

	var issues []string
	if current.High > 0 {
		issues = append(issues, pterm.FgRed.Sprintf("%d High", current.High))
	}
	if current.Medium > 0 {
		issues = append(issues, pterm.FgYellow.Sprintf("%d Med", current.Medium))
	}
	if current.Low > 0 {
		issues = append(issues, pterm.FgBlue.Sprintf("%d Low", current.Low))
	}
	if len(issues) > 0 {
		pterm.Println("Current issues: " + strings.Join(issues, "  "))
	}
	pterm.Println()
}

func PrintRepositories(repos []models.Repository) {
	data := [][]string{{"Repository", "Language", "Branch", "Last Scan", "Scans"}}
	for _, r := range repos {
		data = append(data, []string{
			pterm.FgCyan.Sprint(r.FullName()),
			r.Language,
			r.Branch,
			r.LastScan,
			strconv.Itoa(r.TotalScans),
		})
	}
	pterm.DefaultSection.Println("Repositories")
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// FileLines renders the per-file findings list: one line per file and, under
// each expanded file, one line per finding.
func FileLines(agg *findings.Aggregator) []string {
	var lines []string
	for _, f := range agg.Files() {
		marker := "▸"
		if agg.IsExpanded(f.Path) {
			marker = "▾"
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", marker, f.Path, Badges(findings.CountSeverities(f.Findings))))

		if !agg.IsExpanded(f.Path) {
			continue
		}
		for _, finding := range f.Findings {
			lines = append(lines, fmt.Sprintf("    %s %s %s  %s",
				SeverityLabel(finding.Severity),
				pterm.Bold.Sprint(finding.Type),
				pterm.FgGray.Sprintf("Line %d", finding.Line),
				finding.Message,
			))
		}
	}
	return lines
}

func PrintFileFindings(agg *findings.Aggregator) {
	pterm.DefaultSection.Println("Per-File Findings")
	pterm.Println(pterm.FgGray.Sprintf("%d files with issues", len(agg.Files())))
	for _, line := range FileLines(agg) {
		pterm.Println(line)
	}
}

// SnippetLines numbers the snippet lines and marks the highlighted one.
func SnippetLines(d models.VulnerabilityDetails) []string {
	snippet := d.CodeSnippet
	code := Highlight(strings.Join(snippet.Lines, "\n"), d.FilePath)
	rendered := strings.Split(code, "\n")

	lines := make([]string, 0, len(rendered))
	for i, l := range rendered {
		n := snippet.StartLine + i
		gutter := fmt.Sprintf("%4d │ ", n)
		if n == snippet.HighlightLine {
			gutter = pterm.FgRed.Sprintf("%4d ▶ ", n)
		}
		lines = append(lines, gutter+l)
	}
	return lines
}

func PrintFindingDetails(d models.VulnerabilityDetails) {
	pterm.DefaultSection.Printfln("%s  %s", SeverityLabel(d.Severity), d.Type)
	pterm.Println(pterm.FgGray.Sprintf("%s:%d", d.FilePath, d.Line))
	pterm.Println(d.Message)
	pterm.Println()

	pterm.DefaultBox.WithTitle("Vulnerable code").Println(strings.Join(SnippetLines(d), "\n"))
	pterm.Println()

	pterm.DefaultSection.WithLevel(2).Println("Remediation")
	pterm.Println(d.Remediation.Description)
	if d.Remediation.FixedCode != "" {
		pterm.DefaultBox.WithTitle("Suggested fix").Println(Highlight(strings.TrimSuffix(d.Remediation.FixedCode, "\n"), d.FilePath))
	}
	if len(d.Remediation.References) > 0 {
		items := make([]pterm.BulletListItem, 0, len(d.Remediation.References))
		for _, ref := range d.Remediation.References {
			items = append(items, pterm.BulletListItem{Level: 0, Text: ref})
		}
		_ = pterm.DefaultBulletList.WithItems(items).Render()
	}
}

func statusLabel(ind history.Indicator) string {
	text := ind.Symbol + " " + ind.Label
	switch ind.Tone {
	case history.TonePositive:
		return pterm.FgGreen.Sprint(text)
	case history.ToneNegative:
		return pterm.FgRed.Sprint(text)
	default:
		return pterm.FgCyan.Sprint(text)
	}
}

func PrintScanHistory(scans []models.Scan) {
	data := [][]string{{"Status", "Commit", "Branch", "When", "Duration", "Findings"}}
	for _, row := range history.Rows(scans) {
		counts := Badges(row.Scan.Findings)
		if row.Clean {
			counts = pterm.FgGray.Sprint("Clean")
		}
		data = append(data, []string{
			statusLabel(row.Indicator),
			row.Scan.CommitHash,
			"on " + row.Scan.Branch,
			row.Scan.Timestamp,
			row.Scan.Duration,
			counts,
		})
	}
	pterm.DefaultSection.Println("Scan History")
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// TrendBar scales total against peak into a bar of at most width cells.
func TrendBar(total, peak, width int) string {
	if peak <= 0 || total <= 0 {
		return ""
	}
	n := total * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func PrintTrends(points []models.TrendPoint) {
	pterm.DefaultSection.Println("Vulnerability Trends")
	peak := history.Peak(points)

	data := [][]string{{"Week", "High", "Medium", "Low", "Total", ""}}
	for _, p := range points {
		c := p.Counts()
		data = append(data, []string{
			p.Label,
			strconv.Itoa(c.High),
			strconv.Itoa(c.Medium),
			strconv.Itoa(c.Low),
			strconv.Itoa(c.Total()),
			pterm.FgCyan.Sprint(TrendBar(c.Total(), peak, 30)),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if s, ok := history.Summarize(points); ok {
		pterm.Println(TrendSummary(s))
	}
}

func TrendSummary(s history.Summary) string {
	arrow := "→"
	switch s.Total.Direction {
	case history.Up:
		arrow = pterm.FgRed.Sprint("↑")
	case history.Down:
		arrow = pterm.FgGreen.Sprint("↓")
	}
	return fmt.Sprintf("%s %d → %d open findings (%+.2f%%)", arrow, s.Total.From, s.Total.To, s.Total.Percent)
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
