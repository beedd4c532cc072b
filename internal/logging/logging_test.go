package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		level string
		want  zerolog.Level
	}{
		{"default", false, "", zerolog.InfoLevel},
		{"warn", false, "warn", zerolog.WarnLevel},
		{"debug_flag_wins", true, "error", zerolog.DebugLevel},
		{"unparseable", false, "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Init(tt.debug, tt.level, false, &bytes.Buffer{})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestInitWrites(t *testing.T) {
	var buf bytes.Buffer
	l := Init(false, "info", false, &buf)

	l.Debug().Msg("hidden")
	l.Info().Str("path", "src/api/auth.ts").Msg("expanded file")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "expanded file")
	assert.Contains(t, buf.String(), "path=src/api/auth.ts")
}

func TestOpenFileEmptyDiscards(t *testing.T) {
	w, err := OpenFile("")
	assert.NoError(t, err)
	_, err = w.Write([]byte("x"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestConsoleWriterColour(t *testing.T) {
	assert.False(t, consoleWriter(false, os.Stderr).NoColor)
	assert.True(t, consoleWriter(true, os.Stderr).NoColor)
	assert.True(t, consoleWriter(false, os.Stdout).NoColor)
	assert.True(t, consoleWriter(false, &bytes.Buffer{}).NoColor)
}
