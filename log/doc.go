// Package log provides the leveled logging contract used across the
// agentgraph library.
//
// Components never write to the terminal directly; they log through the
// Logger interface so applications decide where output goes and how much
// of it they want.
//
// # Log Levels
//
// Five levels, in increasing severity:
//
//   - LevelDebug: detailed tracing of agent steps and store calls
//   - LevelInfo: general progress messages
//   - LevelWarn: recoverable problems
//   - LevelError: failures
//   - LevelOff: disables all output
//
// # Basic Usage
//
//	logger := log.NewStdLogger(log.LevelInfo)
//	logger.Info("graph loaded with %d facts", n)
//	logger.Debug("filtered out below Info")
//
// Tests and applications that need a different destination pass a writer:
//
//	logger := log.NewStdLoggerTo(file, log.LevelDebug)
//
// # Package-Level Logger
//
// Components that are not handed a Logger fall back to the package-level
// default, which can be swapped once at startup:
//
//	log.SetDefault(log.NewStdLogger(log.LevelDebug))
//	log.Info("visible everywhere now")
//
// Use log.NoOpLogger{} or log.SetLevel(log.LevelOff) to silence the
// library entirely.
//
// # golog Integration
//
// Applications already using github.com/kataras/golog can route library
// output through it:
//
//	glogger := golog.New()
//	glogger.SetPrefix("[myapp] ")
//	log.SetDefault(log.NewGologLogger(glogger))
//
// The adapter forwards level changes to golog, so log.SetLevel keeps
// working.
//
// # Thread Safety
//
// StdLogger and the package-level accessors are safe for concurrent use.
// Custom Logger implementations are expected to handle their own
// synchronization.
package log
