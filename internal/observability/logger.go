package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs.
var Logger = zap.NewNop()

var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// InitLogger builds the production JSON logger writing to stderr at the given
// level ("debug", "info", "warn", "error").
func InitLogger(level string) error {
	if err := SetLogLevel(level); err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = logLevel

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = logger

	return nil
}

// SetLogLevel changes the level of the logger built by InitLogger without
// rebuilding it.
func SetLogLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logLevel.SetLevel(lvl)
	return nil
}

// LogLevel reports the current level.
func LogLevel() zapcore.Level {
	return logLevel.Level()
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is also attached as zap.Any("context", ctx). The otelzap bridge
// picks up any field whose value implements context.Context and passes it to
// log.Logger.Emit, so the exported OTLP record carries the native TraceID and
// SpanID. Without it the bridge emits with context.Background() and the record
// only has the string attributes, which Loki stores as metadata rather than
// something Tempo can correlate on.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		// Human-readable fields for stdout JSON and ad-hoc log grepping.
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
