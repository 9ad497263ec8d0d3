package log

import (
	"github.com/kataras/golog"
)

// GologLogger adapts a kataras/golog logger to the Logger interface, so
// applications already using golog can route library output through it.
// Level filtering is left to golog itself.
type GologLogger struct {
	logger *golog.Logger
}

var _ Logger = (*GologLogger)(nil)
var _ Leveler = (*GologLogger)(nil)

// NewGologLogger wraps an existing golog logger. A nil argument wraps the
// golog default logger.
func NewGologLogger(logger *golog.Logger) *GologLogger {
	if logger == nil {
		logger = golog.Default
	}
	return &GologLogger{logger: logger}
}

// Debug logs debug messages.
func (l *GologLogger) Debug(format string, v ...any) {
	l.logger.Debugf(format, v...)
}

// Info logs informational messages.
func (l *GologLogger) Info(format string, v ...any) {
	l.logger.Infof(format, v...)
}

// Warn logs warning messages.
func (l *GologLogger) Warn(format string, v ...any) {
	l.logger.Warnf(format, v...)
}

// Error logs error messages.
func (l *GologLogger) Error(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

// SetLevel translates a Level to the matching golog level name.
func (l *GologLogger) SetLevel(level Level) {
	name := "info"
	switch level {
	case LevelDebug:
		name = "debug"
	case LevelInfo:
		name = "info"
	case LevelWarn:
		name = "warn"
	case LevelError:
		name = "error"
	case LevelOff:
		name = "disable"
	}
	l.logger.SetLevel(name)
}
