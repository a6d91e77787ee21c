package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  log.Level
	}{
		{"debug", "debug", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"warning", "warning", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"case and space", "  ERROR ", log.ErrorLevel},
		{"unknown defaults to info", "unknown", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, Options{Level: log.WarnLevel, Prefix: Prefix})

	logger.Info("hidden")
	logger.Warn("could not save tasks", "err", "quota exceeded")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("expected info to be filtered, got %q", output)
	}
	if !strings.Contains(output, "could not save tasks") || !strings.Contains(output, "quota exceeded") {
		t.Errorf("expected warning with fields, got %q", output)
	}
	if !strings.Contains(output, Prefix) {
		t.Errorf("expected prefix %q, got %q", Prefix, output)
	}
}

func TestOpenFileAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := OpenFile(dir, log.InfoLevel)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("first")
	closer.Close()

	logger, closer, err = OpenFile(dir, log.InfoLevel)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	logger.Info("second")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("expected both entries, got %q", data)
	}
}
