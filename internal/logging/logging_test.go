package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	path := filepath.Join(t.TempDir(), "logs", "kanban.log")
	closer, err := Init(Options{Level: "warn", File: path})
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	slog.Info("hidden")
	slog.Warn("visible", "column_id", "c1")
	log.Print("from std log")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(content, "visible") || !strings.Contains(content, "column_id=c1") {
		t.Errorf("warn record missing: %q", content)
	}
	if !strings.Contains(content, "from std log") {
		t.Error("std log output not redirected")
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if _, err := Init(Options{Level: "chatty", File: "-"}); err == nil {
		t.Fatal("Init() should fail on an unknown level")
	}
}
