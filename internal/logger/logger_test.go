package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "sim.log")

	// 1MB is the smallest size lumberjack accepts.
	l, err := New("debug", FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		l.Sugar().Infof("tick %d: %s", i, payload)
	}
	_ = l.Sync()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	rotated := 0
	for _, f := range files {
		if f.Name() == "sim.log" || !strings.HasPrefix(f.Name(), "sim") {
			continue
		}
		rotated++
		// sim-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.Contains(f.Name(), "-20") {
			t.Errorf("rotated file %s has no timestamp", f.Name())
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files in %v", files)
	}
}

func TestLogLevels(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(dir, tt.level+".log")
			l, err := New(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")
			l.Error("error message")
			_ = l.Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			for _, exp := range tt.expected {
				if !strings.Contains(string(content), exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(string(content), exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := New("verbose", FileConfig{}, false); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNamedBeforeInitIsSilent(t *testing.T) {
	SetLogger(nil)
	l := Named("ik")
	// Must not panic and must not write anywhere.
	l.Info("crouch")
	Info("info before init")
}

func TestSetLoggerRoutesNamedLoggers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Named("locomotion").Debug("gravity", zap.Float32("vertical_velocity", -0.5))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].LoggerName != "locomotion" {
		t.Errorf("logger name = %q, want locomotion", entries[0].LoggerName)
	}
	if entries[0].Message != "gravity" {
		t.Errorf("message = %q, want gravity", entries[0].Message)
	}
}
