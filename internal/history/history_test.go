package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/models"
)

func TestStatusIndicator(t *testing.T) {
	tests := []struct {
		status models.ScanStatus
		tone   Tone
	}{
		{models.ScanSuccess, TonePositive},
		{models.ScanFailed, ToneNegative},
		{models.ScanRunning, TonePending},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.tone, StatusIndicator(tt.status).Tone)
		})
	}
}

func TestRowsKeepOrder(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)

	rows := Rows(cat.Scans)
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.Equal(t, cat.Scans[i].ID, r.Scan.ID)
	}
	assert.Equal(t, ToneNegative, rows[2].Indicator.Tone)
	assert.False(t, rows[0].Clean)
	assert.False(t, rows[3].Clean)
}

func TestIsClean(t *testing.T) {
	assert.True(t, IsClean(models.Scan{}))
	assert.False(t, IsClean(models.Scan{Findings: models.SeverityCounts{Low: 1}}))
}

func TestSummarizeDirections(t *testing.T) {
	tests := []struct {
		name    string
		from    models.TrendPoint
		to      models.TrendPoint
		dir     Direction
		delta   int
		percent float64
	}{
		{"fewer", models.TrendPoint{High: 5, Medium: 8, Low: 12}, models.TrendPoint{High: 2, Medium: 2, Low: 2}, Down, -19, -76},
		{"more", models.TrendPoint{Low: 1}, models.TrendPoint{Low: 3}, Up, 2, 200},
		{"same", models.TrendPoint{High: 4}, models.TrendPoint{Medium: 4}, Flat, 0, 0},
		{"from_zero", models.TrendPoint{}, models.TrendPoint{High: 4}, Up, 4, 0},
		{"third", models.TrendPoint{Low: 3}, models.TrendPoint{Low: 2}, Down, -1, -33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Summarize([]models.TrendPoint{tt.from, tt.to})
			require.True(t, ok)
			assert.Equal(t, tt.dir, s.Total.Direction)
			assert.Equal(t, tt.delta, s.Total.Delta)
			assert.Equal(t, tt.percent, s.Total.Percent)
		})
	}
}

func TestSummarize(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)

	s, ok := Summarize(cat.Trends)
	require.True(t, ok)
	assert.Equal(t, Down, s.Total.Direction)
	assert.Equal(t, 25, s.Total.From)
	assert.Equal(t, 6, s.Total.To)
	assert.Equal(t, Trend{From: 5, To: 2, Delta: -3, Percent: -60, Direction: Down}, s.High)
	assert.Equal(t, -6, s.Medium.Delta)
	assert.Equal(t, -10, s.Low.Delta)

	_, ok = Summarize(cat.Trends[:1])
	assert.False(t, ok)
}

func TestPeak(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)

	assert.Equal(t, 25, Peak(cat.Trends))
	assert.Equal(t, 0, Peak(nil))
}
