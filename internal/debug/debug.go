package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
	logger            = newLogger(os.Stderr, false)
)

func newLogger(w io.Writer, disableColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    disableColor,
		TimeFormat: timeFormat,
	}
	return zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	logger = newLogger(out, noColor)
}

// SetOutput redirects debug output. Passing nil restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
	logger = newLogger(out, noColor)
}

func current() (zerolog.Logger, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, enabled
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug().Msg(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	l, on := current()
	if !on {
		return
	}
	l.Debug().Msg("=== " + section + " ===")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug().Interface("value", value).Msg(key)
}

// DebugFields prints a message with structured fields attached.
func DebugFields(msg string, fields map[string]interface{}) {
	l, on := current()
	if !on {
		return
	}
	l.Debug().Fields(fields).Msg(msg)
}
