package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey struct{}

var (
	//nolint:gochecknoglobals // Process-wide logger shared by every package.
	globalLogger *zap.SugaredLogger
	//nolint:gochecknoglobals // Guards globalLogger.
	globalMutex sync.RWMutex
	//nolint:gochecknoglobals // Atomic level of the default logger, adjustable at runtime.
	defaultLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

//nolint:gochecknoinits // The logger must be usable before any command runs.
func init() {
	globalLogger = New(defaultLevel)
}

// New creates a sugared console logger writing to stderr.
// A nil level falls back to the shared atomic level.
func New(level zapcore.LevelEnabler) *zap.SugaredLogger {
	if level == nil {
		level = defaultLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core).Sugar()
}

// ParseLogLevel converts a textual level into a zap level.
// The second value is false when the text is not a known level, in which case InfoLevel is returned.
func ParseLogLevel(text string) (zapcore.Level, bool) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(text)))
	if err != nil || strings.TrimSpace(text) == "" {
		return zapcore.InfoLevel, false
	}

	return level, true
}

// Level returns the current level of the default logger.
func Level() zapcore.Level {
	return defaultLevel.Level()
}

// SetLevel changes the level of the default logger.
func SetLevel(level zapcore.Level) {
	defaultLevel.SetLevel(level)
}

// IsDebugLevel reports whether debug messages are emitted.
func IsDebugLevel() bool {
	return defaultLevel.Enabled(zapcore.DebugLevel)
}

// Logger returns the process-wide logger.
func Logger() *zap.SugaredLogger {
	globalMutex.RLock()
	defer globalMutex.RUnlock()

	return globalLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(l *zap.SugaredLogger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	globalLogger = l
}

// ToContext returns a copy of ctx carrying l.
func ToContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or the process-wide logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zap.SugaredLogger); ok && l != nil {
			return l
		}
	}

	return Logger()
}

// WithKV returns a context whose logger adds the given key-value pairs to every entry.
func WithKV(ctx context.Context, keysAndValues ...any) context.Context {
	return ToContext(ctx, FromContext(ctx).With(keysAndValues...))
}

// Debug logs a message at debug level.
func Debug(ctx context.Context, args ...any) {
	FromContext(ctx).Debug(args...)
}

// Debugf logs a formatted message at debug level.
func Debugf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Debugf(format, args...)
}

// DebugKV logs a message with key-value pairs at debug level.
func DebugKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Debugw(message, keysAndValues...)
}

// Info logs a message at info level.
func Info(ctx context.Context, args ...any) {
	FromContext(ctx).Info(args...)
}

// Infof logs a formatted message at info level.
func Infof(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Infof(format, args...)
}

// InfoKV logs a message with key-value pairs at info level.
func InfoKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Infow(message, keysAndValues...)
}

// Warn logs a message at warn level.
func Warn(ctx context.Context, args ...any) {
	FromContext(ctx).Warn(args...)
}

// Warnf logs a formatted message at warn level.
func Warnf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Warnf(format, args...)
}

// WarnKV logs a message with key-value pairs at warn level.
func WarnKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Warnw(message, keysAndValues...)
}

// Error logs a message at error level.
func Error(ctx context.Context, args ...any) {
	FromContext(ctx).Error(args...)
}

// Errorf logs a formatted message at error level.
func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Errorf(format, args...)
}

// ErrorKV logs a message with key-value pairs at error level.
func ErrorKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Errorw(message, keysAndValues...)
}

// Fatal logs a message at fatal level and exits.
func Fatal(ctx context.Context, args ...any) {
	FromContext(ctx).Fatal(args...)
}

// Fatalf logs a formatted message at fatal level and exits.
func Fatalf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Fatalf(format, args...)
}

// FatalKV logs a message with key-value pairs at fatal level and exits.
func FatalKV(ctx context.Context, message string, keysAndValues ...any) {
	FromContext(ctx).Fatalw(message, keysAndValues...)
}
