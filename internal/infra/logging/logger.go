// Where: internal/infra/logging/logger.go
// What: Leveled structured logger backed by zap.
// Why: Give diagnostics a stderr channel that never mixes with command output.
package logging

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	Level  int8
	Format string
)

const (
	// Zap accepts levels outside its named constants; Discard and Trace sit
	// just past Fatal and just below Debug.
	DiscardLevel Level = Level(zapcore.FatalLevel + 1)
	ErrorLevel   Level = Level(zapcore.ErrorLevel)
	WarnLevel    Level = Level(zapcore.WarnLevel)
	InfoLevel    Level = Level(zapcore.InfoLevel)
	DebugLevel   Level = Level(zapcore.DebugLevel)
	TraceLevel   Level = DebugLevel - 1

	// DefaultLevel keeps a successful run silent on stderr.
	DefaultLevel Level = ErrorLevel

	ConsoleFormat Format = "console"
	JSONFormat    Format = "json"
	DefaultFormat Format = ConsoleFormat
)

// Logger is a thin wrapper around zap.SugaredLogger with key/value helpers.
type Logger struct {
	logger *zap.SugaredLogger
}

// NewDiscardLogger returns a Logger that drops everything. Useful in tests.
func NewDiscardLogger() *Logger {
	return &Logger{logger: zap.NewNop().Sugar()}
}

// NewLogger returns a Logger writing entries at or above level to out.
func NewLogger(out io.Writer, level Level, format Format) (*Logger, error) {
	if level == DiscardLevel || out == nil {
		return NewDiscardLogger(), nil
	}
	if level < TraceLevel || level > ErrorLevel {
		return nil, fmt.Errorf("invalid log level: %d", level)
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		zapcore.RFC3339TimeEncoder(t.UTC(), enc)
	}
	encoderConfig.EncodeLevel = traceEncoder

	var encoder zapcore.Encoder
	switch format {
	case JSONFormat:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(out)),
		zap.NewAtomicLevelAt(zapcore.Level(level)),
	)
	return Wrap(zap.New(core)), nil
}

func traceEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if level == zapcore.Level(TraceLevel) {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(level, enc)
}

// Wrap returns a Logger around an existing zap.Logger.
func Wrap(zapLogger *zap.Logger) *Logger {
	return &Logger{
		logger: zapLogger.Sugar().WithOptions(zap.AddCallerSkip(1)),
	}
}

// WithValues adds key/value pairs to every entry of the returned logger.
func (l *Logger) WithValues(keysAndValues ...any) *Logger {
	return &Logger{logger: l.logger.With(keysAndValues...)}
}

func (l *Logger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(fmt.Sprintf("%s: %v", msg, err), keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Trace(msg string, keysAndValues ...any) {
	l.logger.With(keysAndValues...).Log(zapcore.Level(TraceLevel), msg)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.logger.Sync()
}
