package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "visionboard.log")
	logger, err := New(path, "debug")
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("adding goal")
	logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"adding goal"`) {
		t.Fatalf("log line missing: %s", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visionboard.log")
	logger, err := New(path, "warn")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "quiet") {
		t.Fatal("info line should be filtered at warn level")
	}
	if !strings.Contains(string(data), "loud") {
		t.Fatal("warn line should be written")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "x.log"), "chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
