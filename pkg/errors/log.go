package errors

import (
	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes through a charm logger.
type LogHandler struct {
	// Logger receives the records. Nil uses log.Default().
	Logger *log.Logger
	// Verbose attaches stack traces to every record.
	Verbose bool
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return log.Default()
}

// HandleError logs a WeftError at error level.
func (h *LogHandler) HandleError(err *WeftError) {
	if err == nil {
		return
	}
	keyvals := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		keyvals = append(keyvals, "stack", err.StackTrace)
	}
	h.logger().Error("weft error", keyvals...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	keyvals := []any{"value", err.Value}
	if err.Op != "" {
		keyvals = append([]any{"op", err.Op}, keyvals...)
	}
	if h.Verbose && err.StackTrace != "" {
		keyvals = append(keyvals, "stack", err.StackTrace)
	}
	h.logger().Error("weft panic", keyvals...)
}

// HandleBuildError logs a BuildError at error level.
func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	keyvals := []any{"view", err.View, "phase", err.Phase}
	if err.Recovered != nil {
		keyvals = append(keyvals, "recovered", err.Recovered)
	}
	if err.Err != nil {
		keyvals = append(keyvals, "err", err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		keyvals = append(keyvals, "stack", err.StackTrace)
	}
	h.logger().Error("weft build error", keyvals...)
}
