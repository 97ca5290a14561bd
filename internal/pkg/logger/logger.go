// Package logger provides a global, Sugared Zap logger. It supports
// configuring log level and output through functional options, emits JSON
// logs to stderr by default, and lets callers attach key/value pairs to a
// context so every line logged for a run carries them.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It is initialized once by Init.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// fieldsKey is the context key under which attached fields are stored.
type fieldsKey struct{}

// config holds configuration options for the logger.
type config struct {
	level  string    // the minimum log level (debug, info, warn, error)
	output io.Writer // destination of encoded entries
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
// Example levels: "debug", "info", "warn", "error".
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects encoded log entries to w. Default: os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. By default, it logs JSON to stderr at
// the "info" level, keeping stdout free for command output. Calling Init
// multiple times has no effect after the first successful initialization.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(cfg.output),
			level,
		)

		logger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// WithFields returns a copy of ctx carrying keysAndValues. Fields already on
// ctx are kept and the new ones appended.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	existing, _ := ctx.Value(fieldsKey{}).([]any)

	fields := make([]any, 0, len(existing)+len(keysAndValues))
	fields = append(fields, existing...)
	fields = append(fields, keysAndValues...)

	return context.WithValue(ctx, fieldsKey{}, fields)
}

// withContext merges the fields attached to ctx in front of keysAndValues.
func withContext(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	fields, _ := ctx.Value(fieldsKey{}).([]any)
	if len(fields) == 0 {
		return keysAndValues
	}

	return append(append(make([]any, 0, len(fields)+len(keysAndValues)), fields...), keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withContext(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withContext(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withContext(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withContext(ctx, keysAndValues)...)
}
