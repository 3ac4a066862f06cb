package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.sink.now = func() time.Time {
		return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	}
	return l, &buf
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"WARNING", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo}, // Default
		{"", LogLevelInfo},        // Default
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLogLevel(tt.input), "ParseLogLevel(%q)", tt.input)
	}
}

func TestLogger_Format(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.Info("hello %s", "world")

	assert.Equal(t, "2024-05-06T07:08:09.000 [INFO] test: hello world\n", buf.String())
}

func TestLogger_Fields(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.WithComponent("history").WithFields(map[string]any{"undo": 3, "redo": 1}).Debug("undo")

	assert.True(t, strings.HasSuffix(buf.String(), "undo {component=history, redo=1, undo=3}\n"), buf.String())
}

func TestLogger_Level(t *testing.T) {
	l, buf := newBufferLogger(LogLevelWarn)

	l.Debug("d")
	l.Info("i")
	assert.Empty(t, buf.String())

	l.Warn("w")
	l.Error("e")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WARN]")
	assert.Contains(t, lines[1], "[ERROR]")
}

func TestLogger_DerivedSharesLevel(t *testing.T) {
	l, buf := newBufferLogger(LogLevelError)
	child := l.WithComponent("config")

	l.SetLevel(LogLevelDebug)
	child.Debug("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, LogLevelDebug, child.Level())
}

func TestLogger_DisableEnable(t *testing.T) {
	l, buf := newBufferLogger(LogLevelDebug)

	l.Disable()
	l.Error("hidden")
	assert.Empty(t, buf.String())

	l.Enable()
	l.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_SetOutput(t *testing.T) {
	l, first := newBufferLogger(LogLevelDebug)
	var second bytes.Buffer

	l.SetOutput(&second)
	l.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestNullLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger.WithComponent("x").Error("nothing")
	})
}

func TestComponentError(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		err  *ComponentError
		want string
	}{
		{NewComponentError("config", "load", base), "config: load: boom"},
		{NewComponentError("config", "load", nil), "config: load"},
		{NewComponentError("backend", "", base), "backend: boom"},
		{NewComponentError("backend", "", nil), "backend"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}

	assert.ErrorIs(t, NewComponentError("config", "load", base), base)

	var nilErr *ComponentError
	assert.Equal(t, "", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
