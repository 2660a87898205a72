package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/cperrin88/mkdirtools/pkg/errutils"
)

var (
	// testOutput is used to capture log output during tests
	testOutput   io.Writer
	testOutputMu sync.Mutex
)

// Fields is a type alias for log fields to make the API cleaner
type Fields map[string]interface{}

// ErrorKey is the field whose value is appended to the message as
// ": <error text>".
const ErrorKey = "error"

var (
	logger  *slog.Logger
	program = "mkdir"
)

// SetTestOutput sets the output writer for testing purposes
func SetTestOutput(w io.Writer) {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = w
}

// UnsetTestOutput resets the test output to nil
func UnsetTestOutput() {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	testOutput = nil
}

func getOutput() io.Writer {
	testOutputMu.Lock()
	defer testOutputMu.Unlock()
	if testOutput != nil {
		return testOutput
	}
	return os.Stderr
}

// InitLogger initializes the global logger. Diagnostics are written to
// stderr as "<prog>: <message>" lines, the way Unix tools report.
func InitLogger(prog string, logLevel string) {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // fallback to info level
	}

	if prog != "" {
		program = prog
	}
	logger = slog.New(newDiagHandler(getOutput(), program, level))
}

// GetLogger returns the configured logger instance.
func GetLogger() *slog.Logger {
	if logger == nil {
		// Initialize with default settings if not already initialized
		InitLogger(program, "info")
	}
	return logger
}

// Program returns the program name diagnostics are prefixed with.
func Program() string {
	return program
}

// Info logs an info message.
func Info(msg string, fields ...Fields) {
	GetLogger().Info(msg, mergeFields(fields...)...)
}

// Debug logs a debug message (only shown when debug level is enabled).
func Debug(msg string, fields ...Fields) {
	GetLogger().Debug(msg, mergeFields(fields...)...)
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	GetLogger().Debug(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(msg string, fields ...Fields) {
	GetLogger().Warn(msg, mergeFields(fields...)...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...interface{}) {
	GetLogger().Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message.
func Error(msg string, fields ...Fields) {
	GetLogger().Error(msg, mergeFields(fields...)...)
}

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) {
	GetLogger().Error(fmt.Sprintf(format, args...))
}

// mergeFields merges multiple field maps into one slice of key-value pairs for slog.
// Keys are sorted so debug output is stable.
func mergeFields(fields ...Fields) []interface{} {
	merged := Fields{}
	for _, field := range fields {
		for k, v := range field {
			merged[k] = v
		}
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]interface{}, 0, len(merged)*2)
	for _, k := range keys {
		result = append(result, k, merged[k])
	}
	return result
}

// diagHandler renders records as "<prog>: <msg>[: <error>]". At debug level
// every other attribute is appended as key=value.
type diagHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	prog  string
	level slog.Leveler
	attrs []slog.Attr
}

func newDiagHandler(out io.Writer, prog string, level slog.Leveler) *diagHandler {
	return &diagHandler{mu: &sync.Mutex{}, out: out, prog: prog, level: level}
}

func (h *diagHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *diagHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.prog)
	b.WriteString(": ")
	b.WriteString(r.Message)

	verbose := h.level.Level() <= slog.LevelDebug
	var extra []string
	emit := func(a slog.Attr) bool {
		if a.Key == ErrorKey {
			if err, ok := a.Value.Any().(error); ok {
				b.WriteString(": ")
				b.WriteString(errutils.Strerror(err))
			} else {
				b.WriteString(": ")
				b.WriteString(a.Value.String())
			}
			return true
		}
		if verbose {
			extra = append(extra, a.Key+"="+a.Value.String())
		}
		return true
	}
	for _, a := range h.attrs {
		emit(a)
	}
	r.Attrs(emit)

	if len(extra) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(extra, " "))
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *diagHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), attrs...)
	return &clone
}

// WithGroup is a no-op: diagnostics are flat.
func (h *diagHandler) WithGroup(string) slog.Handler {
	return h
}
