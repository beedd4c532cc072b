package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/notifications"
)

func TestNotificationDefaults(t *testing.T) {
	p := NewNotificationPanel(nil).Preferences()

	assert.True(t, p.EmailOnHighSeverity)
	assert.False(t, p.EmailOnMediumSeverity)
	assert.False(t, p.EmailOnLowSeverity)
	assert.Equal(t, DigestDaily, p.EmailDigest)
	assert.True(t, p.SlackNotifications)
	assert.True(t, p.PRComments)
}

func TestNotificationToggle(t *testing.T) {
	for _, f := range NotificationFields {
		t.Run(string(f), func(t *testing.T) {
			p := NewNotificationPanel(nil)
			before := p.Preferences()

			require.NoError(t, p.Toggle(f))
			assert.Equal(t, !before.Enabled(f), p.Preferences().Enabled(f))

			require.NoError(t, p.Toggle(f))
			assert.Equal(t, before, p.Preferences())
		})
	}
}

func TestNotificationToggleUnknown(t *testing.T) {
	p := NewNotificationPanel(nil)
	assert.ErrorIs(t, p.Toggle("emailDigest"), ErrUnknownField)
}

func TestNotificationDigest(t *testing.T) {
	p := NewNotificationPanel(nil)

	require.NoError(t, p.SetDigest(DigestWeekly))
	assert.Equal(t, DigestWeekly, p.Preferences().EmailDigest)

	assert.ErrorIs(t, p.SetDigest("hourly"), ErrInvalidValue)
	assert.Equal(t, DigestWeekly, p.Preferences().EmailDigest)

	p.CycleDigest()
	assert.Equal(t, DigestNever, p.Preferences().EmailDigest)
	p.CycleDigest()
	assert.Equal(t, DigestDaily, p.Preferences().EmailDigest)
}

func TestNotificationSave(t *testing.T) {
	var rec notifications.Recorder
	p := NewNotificationPanel(&rec)
	before := p.Preferences()

	p.Save()

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Settings saved", last.Title)
	assert.False(t, last.IsError())
	assert.Equal(t, before, p.Preferences())
}
