package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		enabled zapcore.Level
	}{
		{"debug", "json", zapcore.DebugLevel},
		{"info", "console", zapcore.InfoLevel},
		{"warn", "json", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		log, err := New(tt.level, tt.format)
		if err != nil {
			t.Fatalf("New(%q, %q) retornou erro: %v", tt.level, tt.format, err)
		}
		if !log.Core().Enabled(tt.enabled) {
			t.Errorf("nível %s deveria estar habilitado", tt.enabled)
		}
		if tt.enabled > zapcore.DebugLevel && log.Core().Enabled(tt.enabled-1) {
			t.Errorf("nível abaixo de %s não deveria estar habilitado", tt.enabled)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("verboso", "json"); err == nil {
		t.Error("esperado erro para nível inválido")
	}
}
