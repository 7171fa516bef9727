package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWithComponentTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	logger := WithComponent(base, "storage")
	logger.Info("backend ready")

	if got := buf.String(); !strings.Contains(got, "component=storage") {
		t.Errorf("record missing component attribute: %s", got)
	}
}

func TestWithComponentNilBase(t *testing.T) {
	if WithComponent(nil, "storage") == nil {
		t.Error("nil base should fall back to the default logger")
	}
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.value)
		if got := levelFromEnv(); got != tt.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
