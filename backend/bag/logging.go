package bag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger used by all packages of this module. Replace it with
// SetLogger to redirect the output.
var Logger *zap.SugaredLogger

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	Logger = l.Sugar()
}

// SetLogger replaces the global logger. A nil logger discards all messages.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	Logger = l
}

// Level type
type Level uint32

// SetLogLevel sets the logging level of the default logger.
func SetLogLevel(lvl Level) {
	switch lvl {
	case PanicLevel:
		level.SetLevel(zapcore.PanicLevel)
	case FatalLevel:
		level.SetLevel(zapcore.FatalLevel)
	case ErrorLevel:
		level.SetLevel(zapcore.ErrorLevel)
	case WarnLevel:
		level.SetLevel(zapcore.WarnLevel)
	case InfoLevel:
		level.SetLevel(zapcore.InfoLevel)
	case DebugLevel, TraceLevel:
		// zap has no trace level
		level.SetLevel(zapcore.DebugLevel)
	}
}

// ParseLevel returns the Level for a name such as "warn" or "debug".
func ParseLevel(name string) (Level, bool) {
	switch name {
	case "panic":
		return PanicLevel, true
	case "fatal":
		return FatalLevel, true
	case "error":
		return ErrorLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "info":
		return InfoLevel, true
	case "debug":
		return DebugLevel, true
	case "trace":
		return TraceLevel, true
	}
	return InfoLevel, false
}

const (
	// PanicLevel level, highest level of severity. Logs and then calls panic with the
	// message passed to Debug, Info, ...
	PanicLevel Level = iota
	// FatalLevel level. Logs and then calls `os.Exit(1)`.
	FatalLevel
	// ErrorLevel level. Logs. Used for errors that should definitely be noted.
	ErrorLevel
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries about what's going on inside the
	// application.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose logging.
	DebugLevel
	// TraceLevel level. Same as DebugLevel.
	TraceLevel
)
