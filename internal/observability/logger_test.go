package observability

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{"defaults", "", "", zapcore.InfoLevel, false},
		{"debug console", "debug", "console", zapcore.DebugLevel, false},
		{"warn json", "WARN", "json", zapcore.WarnLevel, false},
		{"invalid level falls back", "chatty", "json", zapcore.InfoLevel, false},
		{"unknown format", "info", "xml", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !logger.Core().Enabled(tt.wantLevel) {
				t.Errorf("level %s not enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("level %s should be disabled", tt.wantLevel-1)
			}
		})
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if len(a) != 26 {
		t.Errorf("run ID %q should be 26 characters", a)
	}
	if a == b {
		t.Error("run IDs should be unique")
	}
}

func TestTracer(t *testing.T) {
	if Tracer("test") == nil {
		t.Error("Tracer returned nil")
	}
}
