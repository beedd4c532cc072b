package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devguard-ai/devguard/internal/models"
)

func TestShellLabels(t *testing.T) {
	tests := []struct {
		name       string
		shell      Shell
		connection string
		plan       string
		upgrade    bool
	}{
		{"free_connected", Shell{Connected: true, Plan: models.PlanFree}, "Connected", "FREE", true},
		{"pro_disconnected", Shell{Plan: models.PlanPro}, "Disconnected", "PRO", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.connection, tt.shell.ConnectionLabel())
			assert.Equal(t, tt.plan, tt.shell.PlanLabel())
			assert.Equal(t, tt.upgrade, tt.shell.ShowUpgrade())
		})
	}
}

func TestTabsMarkActive(t *testing.T) {
	tabs := Shell{Active: PageSettings}.Tabs()

	assert.Len(t, tabs, 3)
	for _, tab := range tabs {
		assert.Equal(t, tab.Page == PageSettings, tab.Active, tab.Label)
	}
}
