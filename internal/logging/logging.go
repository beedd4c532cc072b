package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Logger = zerolog.Nop()

// Init configures the package logger. debug forces the debug level over level.
// Colour is only used on stderr and never when noColor is set.
func Init(debug bool, level string, noColor bool, out io.Writer) *zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	Logger = zerolog.New(consoleWriter(noColor, out)).Level(lvl).With().Timestamp().Logger()
	return &Logger
}

func consoleWriter(noColor bool, out io.Writer) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	if f, ok := out.(*os.File); noColor || !ok || f != os.Stderr {
		w.NoColor = true
	}
	return w
}

// OpenFile returns a writer for path, or io.Discard when path is empty.
func OpenFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
