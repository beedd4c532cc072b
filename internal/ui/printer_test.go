package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/findings"
	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/history"
	"github.com/devguard-ai/devguard/internal/models"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func TestBadgesHideZero(t *testing.T) {
	assert.Equal(t, "", Badges(models.SeverityCounts{}))
	assert.Equal(t, " 2 ", Badges(models.SeverityCounts{Low: 2}))
	assert.Equal(t, " 1   1 ", Badges(models.SeverityCounts{High: 1, Medium: 1}))
}

func TestFileLinesFollowExpansion(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)
	agg := findings.New(cat.Files, findings.NewDetailIndex(cat.Details), nil)

	assert.Len(t, FileLines(agg), 4)

	agg.Toggle("src/controllers/user.ts")
	lines := FileLines(agg)
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[2], "▾ src/controllers/user.ts"))
	assert.Contains(t, lines[3], "Line 103")
	assert.Contains(t, lines[4], "Sensitive data logged without masking")
}

func TestSnippetLinesMarkHighlight(t *testing.T) {
	d := models.VulnerabilityDetails{
		FilePath: "notes.unknown-ext",
		CodeSnippet: models.CodeSnippet{
			StartLine:     10,
			HighlightLine: 11,
			Lines:         []string{"a", "b", "c"},
		},
	}

	lines := SnippetLines(d)
	require.Len(t, lines, 3)
	assert.Equal(t, "  10 │ a", lines[0])
	assert.Equal(t, "  11 ▶ b", lines[1])
}

func TestTrendBar(t *testing.T) {
	assert.Equal(t, "", TrendBar(0, 10, 20))
	assert.Equal(t, "", TrendBar(5, 0, 20))
	assert.Equal(t, strings.Repeat("█", 20), TrendBar(10, 10, 20))
	assert.Equal(t, "█", TrendBar(1, 100, 20))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, models.SeverityCounts{High: 1}))
	assert.JSONEq(t, `{"high":1,"medium":0,"low":0}`, buf.String())
}

func TestHighlightUnknownFileUnchanged(t *testing.T) {
	assert.Equal(t, "plain text", Highlight("plain text", "file.nosuchlang"))
}

func TestTrendSummary(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)
	s, ok := history.Summarize(cat.Trends)
	require.True(t, ok)

	assert.Equal(t, "↓ 25 → 6 open findings (-76.00%)", TrendSummary(s))
}
