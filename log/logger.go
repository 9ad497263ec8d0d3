package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync"
)

// Level represents logging severity.
type Level int

const (
	// LevelDebug for detailed tracing of agent and store internals.
	LevelDebug Level = iota
	// LevelInfo for general progress messages.
	LevelInfo
	// LevelWarn for recoverable problems.
	LevelWarn
	// LevelError for failures.
	LevelError
	// LevelOff disables all output.
	LevelOff
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(l))
	}
}

// Logger is implemented by anything the library can log through.
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}

// Leveler is implemented by loggers whose verbosity can be changed after
// construction.
type Leveler interface {
	SetLevel(level Level)
}

// StdLogger writes through the standard library logger behind a level gate.
type StdLogger struct {
	mu    sync.Mutex
	level Level
	out   *stdlog.Logger
}

// NewStdLogger creates a logger writing to stderr at the given level.
func NewStdLogger(level Level) *StdLogger {
	return NewStdLoggerTo(os.Stderr, level)
}

// NewStdLoggerTo creates a logger with a custom output, mostly used by
// tests.
func NewStdLoggerTo(out io.Writer, level Level) *StdLogger {
	return &StdLogger{
		level: level,
		out:   stdlog.New(out, "[agentgraph] ", stdlog.LstdFlags),
	}
}

// SetLevel changes the minimum level that gets written.
func (l *StdLogger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

func (l *StdLogger) logf(level Level, tag, format string, v ...any) {
	l.mu.Lock()
	min := l.level
	l.mu.Unlock()
	if level < min {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

// Debug logs debug messages.
func (l *StdLogger) Debug(format string, v ...any) { l.logf(LevelDebug, "[DEBUG]", format, v...) }

// Info logs informational messages.
func (l *StdLogger) Info(format string, v ...any) { l.logf(LevelInfo, "[INFO]", format, v...) }

// Warn logs warning messages.
func (l *StdLogger) Warn(format string, v ...any) { l.logf(LevelWarn, "[WARN]", format, v...) }

// Error logs error messages.
func (l *StdLogger) Error(format string, v ...any) { l.logf(LevelError, "[ERROR]", format, v...) }

// NoOpLogger discards everything. Hand it to a component to silence it.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = NewStdLogger(LevelInfo)
)

// Default returns the package-level logger used by components that were
// not given their own.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger so logging can be enabled
// globally without threading logger objects around. Nil restores the
// standard logger.
func SetDefault(logger Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if logger == nil {
		logger = NewStdLogger(LevelInfo)
	}
	defaultLogger = logger
}

// SetLevel adjusts the package-level logger's verbosity when it supports
// that.
func SetLevel(level Level) {
	if lv, ok := Default().(Leveler); ok {
		lv.SetLevel(level)
	}
}

// Debug logs a debug message using the package-level logger.
func Debug(format string, v ...any) { Default().Debug(format, v...) }

// Info logs an informational message using the package-level logger.
func Info(format string, v ...any) { Default().Info(format, v...) }

// Warn logs a warning message using the package-level logger.
func Warn(format string, v ...any) { Default().Warn(format, v...) }

// Error logs an error message using the package-level logger.
func Error(format string, v ...any) { Default().Error(format, v...) }
