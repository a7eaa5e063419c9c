package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"warn", LogLevelWarn},
		{"Warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "barcode"})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn %d", 1)
	logger.Error("error")

	output := buf.String()
	for _, absent := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(output, absent) {
			t.Errorf("expected %s to be filtered out", absent)
		}
	}
	if !strings.Contains(output, "[WARN] barcode: warn 1") {
		t.Errorf("missing warn line: %s", output)
	}
	if !strings.Contains(output, "[ERROR] barcode: error") {
		t.Errorf("missing error line: %s", output)
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"b": 2, "a": "x"}).WithComponent("save").Info("done")

	if !strings.HasSuffix(buf.String(), "done {a=x, b=2, component=save}\n") {
		t.Errorf("unexpected line: %q", buf.String())
	}
}

func TestLogger_SetLevelSharedWithDerived(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})
	child := root.WithField("session", "s1")

	child.Info("hidden")
	root.SetLevel(LogLevelDebug)
	child.Debug("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("info should be filtered before SetLevel")
	}
	if !strings.Contains(output, "shown {session=s1}") {
		t.Errorf("derived logger did not pick up new level: %q", output)
	}
	if child.Level() != LogLevelDebug {
		t.Errorf("Level() = %v", child.Level())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.SetLevel(LogLevelDebug)
	NullLogger.WithField("k", "v").Error("nothing")
	if NullLogger.Level() != LogLevelError {
		t.Errorf("NullLogger level = %v", NullLogger.Level())
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "barcode.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f})
	logger.Info("first")
	f.Close()

	f, err = OpenLogFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f}).Info("second")
	f.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file should be appended to, got %q", data)
	}
}
