package notifications

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/fixtures"
	"github.com/devguard-ai/devguard/internal/models"
)

func TestBuildPayloadFiltersBySeverity(t *testing.T) {
	cat, err := fixtures.Default()
	require.NoError(t, err)

	tests := []struct {
		event models.WebhookEvent
		ids   []string
	}{
		{models.EventHighSeverity, []string{"1", "6"}},
		{models.EventMediumSeverity, []string{"2", "3"}},
		{models.EventLowSeverity, []string{"4", "5"}},
		{models.EventScanComplete, []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.event), func(t *testing.T) {
			p := ExamplePayload(tt.event, "acme-corp/web-app", cat.Files)
			var ids []string
			for _, f := range p.Findings {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, 123, p.PRNumber)
		})
	}
}

func TestMarshalPayloadShape(t *testing.T) {
	p := ExamplePayload(models.EventHighSeverity, "org/repo", nil)
	data, err := MarshalPayload(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "high_severity", raw["event"])
	assert.Equal(t, "org/repo", raw["repository"])
	assert.Equal(t, float64(123), raw["pr_number"])
	assert.Equal(t, []any{}, raw["findings"])
	assert.Equal(t, "2026-01-08T12:00:00Z", raw["timestamp"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notice{Title: "a"})
	r.Notify(Notice{Title: "b", Variant: VariantDestructive})

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.Title)
	assert.True(t, last.IsError())
	assert.Len(t, r.All(), 2)

	r.Clear()
	assert.Empty(t, r.All())
}
