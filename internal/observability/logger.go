// Package observability builds the zap logger used throughout cipherpair and
// provides run identifiers and the tracer for pipeline spans.
package observability

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

// NewLogger constructs a zap logger. format is "console" (human readable,
// the default) or "json"; level is any zap level name.
func NewLogger(level, format string) (*zap.Logger, error) {
	atom := zap.NewAtomicLevel()
	if err := atom.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil || strings.TrimSpace(level) == "" {
		// Fallback to default level when unset or invalid.
		_ = atom.UnmarshalText([]byte(defaultLogLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "message",
		TimeKey:       "timestamp",
		LevelKey:      "severity",
		NameKey:       "logger",
		EncodeTime:    zapcore.RFC3339TimeEncoder,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: "stacktrace",
	}

	encoding := "console"
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		encoding = "json"
	default:
		return nil, fmt.Errorf("unknown log format: %s", format)
	}

	cfg := zap.Config{
		Level:             atom,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// NewRunID returns a sortable unique identifier for one pipeline run
func NewRunID() string {
	return ulid.Make().String()
}

// Tracer returns the named tracer from the global provider; spans are no-ops
// unless an SDK provider is registered
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
