package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devguard-ai/devguard/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, models.PlanFree, cfg.Plan)
	assert.True(t, cfg.Connected)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `plan: pro
connected: false
output_format: json
fixtures_dir: ./fixtures
log:
  level: debug
  file: devguard.log
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, models.PlanPro, cfg.Plan)
	assert.False(t, cfg.Connected)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "./fixtures", cfg.FixturesDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "devguard.log", cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad_output", func(c *Config) { c.OutputFormat = "csv" }, true},
		{"bad_plan", func(c *Config) { c.Plan = "enterprise" }, true},
		{"bad_level", func(c *Config) { c.Log.Level = "verbose" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.wantErr {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
