package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"DBG", slog.LevelDebug, true},
		{"", slog.LevelInfo, true},
		{"wrn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		level, ok := LevelFromString(tt.in)
		if level != tt.level || ok != tt.ok {
			t.Errorf("LevelFromString(%q) = %v, %v; want %v, %v", tt.in, level, ok, tt.level, tt.ok)
		}
	}
}

func TestInitLogger(t *testing.T) {
	saved := slog.Default()
	t.Cleanup(func() { slog.SetDefault(saved) })

	path := filepath.Join(t.TempDir(), "state", "tabref.log")
	closeLog, err := InitLogger(path, "warn")
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	slog.Info("hidden")
	slog.Warn("shown", "key", "value")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "key=value") {
		t.Errorf("Unexpected log content: %s", data)
	}
}
