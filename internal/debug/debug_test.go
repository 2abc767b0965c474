package debug

import (
	"bytes"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetNoColor(true)
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
	})
	return &buf
}

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.Contains(output, "DBG") {
		t.Errorf("Output should contain DBG level, got: %s", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}
	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(false)

	Debug("this should not appear")
	DebugSection("nor this")
	DebugValue("key", "value")

	if buf.Len() != 0 {
		t.Errorf("Debug output should be empty when disabled, got: %s", buf.String())
	}
}

func TestDebugSection(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(true)

	DebugSection("copy")

	if !strings.Contains(buf.String(), "=== copy ===") {
		t.Errorf("Output should contain section header, got: %s", buf.String())
	}
}

func TestDebugValue(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(true)

	DebugValue("plugin", "MyPlugin")

	output := buf.String()
	if !strings.Contains(output, "plugin") || !strings.Contains(output, "MyPlugin") {
		t.Errorf("Output should contain key and value, got: %s", output)
	}
}

func TestDebugFields(t *testing.T) {
	buf := captureOutput(t)
	SetDebug(true)

	DebugFields("selected", map[string]interface{}{"count": 3})

	output := buf.String()
	if !strings.Contains(output, "selected") || !strings.Contains(output, "count=3") {
		t.Errorf("Output should contain message and field, got: %s", output)
	}
}
