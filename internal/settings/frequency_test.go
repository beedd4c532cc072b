package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/notifications"
)

func TestScanFrequencyDefaults(t *testing.T) {
	p := NewScanFrequencyPanel(nil).Preferences()

	assert.Equal(t, TriggerOnPR, p.ScanTrigger)
	assert.False(t, p.ScheduledScans)
	assert.Equal(t, ScheduleDaily, p.ScheduleFrequency)
	assert.True(t, p.ScanOnPush)
	assert.True(t, p.ScanDependencies)
	assert.False(t, p.DeepScan)
}

func TestScanTrigger(t *testing.T) {
	p := NewScanFrequencyPanel(nil)

	require.NoError(t, p.SetTrigger(TriggerManual))
	assert.Equal(t, TriggerManual, p.Preferences().ScanTrigger)
	assert.ErrorIs(t, p.SetTrigger("nightly"), ErrInvalidValue)

	p.CycleTrigger()
	assert.Equal(t, TriggerOnPR, p.Preferences().ScanTrigger)
	p.CycleTrigger()
	assert.Equal(t, TriggerOnPush, p.Preferences().ScanTrigger)
}

func TestScheduleFrequency(t *testing.T) {
	p := NewScanFrequencyPanel(nil)

	require.NoError(t, p.SetScheduleFrequency(ScheduleWeekly))
	assert.Equal(t, ScheduleWeekly, p.Preferences().ScheduleFrequency)
	assert.ErrorIs(t, p.SetScheduleFrequency("monthly"), ErrInvalidValue)

	p.CycleScheduleFrequency()
	assert.Equal(t, ScheduleDaily, p.Preferences().ScheduleFrequency)
}

func TestScanFieldToggle(t *testing.T) {
	p := NewScanFrequencyPanel(nil)

	require.NoError(t, p.Toggle(FieldScheduledScans))
	assert.True(t, p.Preferences().ScheduledScans)
	require.NoError(t, p.Toggle(FieldDeepScan))
	assert.True(t, p.Preferences().Enabled(FieldDeepScan))

	assert.ErrorIs(t, p.Toggle("scanTrigger"), ErrUnknownField)
}

func TestScanFrequencySave(t *testing.T) {
	var rec notifications.Recorder
	NewScanFrequencyPanel(&rec).Save()

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Your scan frequency preferences have been updated.", last.Description)
}
