package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerTo(&buf, LevelWarn)

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn %d", 1)
	logger.Error("kept error")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[WARN] kept warn 1")
	assert.Contains(t, out, "[ERROR] kept error")
	assert.Contains(t, out, "[agentgraph]")
}

func TestStdLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerTo(&buf, LevelOff)

	logger.Error("silenced")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	logger.Debug("audible")
	assert.Contains(t, buf.String(), "audible")
}

func TestDefaultLoggerSwap(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewStdLoggerTo(&buf, LevelDebug))

	Debug("through default %s", "logger")
	assert.Contains(t, buf.String(), "through default logger")

	t.Run("nil restores a standard logger", func(t *testing.T) {
		SetDefault(nil)
		assert.NotNil(t, Default())
		assert.IsType(t, &StdLogger{}, Default())
	})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "OFF", LevelOff.String())
	assert.Equal(t, "UNKNOWN(42)", Level(42).String())
}

func TestNoOpLoggerSatisfiesInterface(t *testing.T) {
	var logger Logger = NoOpLogger{}
	logger.Debug("ignored")
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
}
