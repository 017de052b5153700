package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log, err := New("info", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Info("hello", String("source", "codeforces"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), "codeforces") {
		t.Errorf("log file missing field, got: %s", data)
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log, err := New("warn", path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	log.Debugf("noise %d", 1)
	log.Infof("noise %d", 2)
	log.Warnf("signal %d", 3)
	_ = log.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "noise") {
		t.Errorf("log file should not contain debug/info output, got: %s", data)
	}
	if !strings.Contains(string(data), "signal") {
		t.Errorf("log file missing warn output, got: %s", data)
	}
}

func TestNew_OffIsNop(t *testing.T) {
	log, err := New("off", filepath.Join(t.TempDir(), "unused.log"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Must not panic or create files.
	log.Error("dropped")
	if err := log.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestNew_EmptyPathIsNop(t *testing.T) {
	log, err := New("info", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Info("dropped")
}
