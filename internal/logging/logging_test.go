package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLogFiles(t *testing.T) map[string]string {
	t.Helper()
	dir := t.TempDir()
	return map[string]string{
		CategoryApp:    filepath.Join(dir, "app.log"),
		CategoryDict:   filepath.Join(dir, "dictionary.log"),
		CategoryUpdate: filepath.Join(dir, "update.log"),
		CategoryConfig: filepath.Join(dir, "config.log"),
	}
}

func TestNew(t *testing.T) {
	files := testLogFiles(t)

	l, err := New(files, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer l.Close()

	l.Update.Info("checking for updates", "version", "1.0.0")

	data, err := os.ReadFile(files[CategoryUpdate])
	if err != nil {
		t.Fatalf("Failed to read update log: %v", err)
	}

	line := string(data)
	if !strings.Contains(line, "checking for updates") {
		t.Errorf("Expected log line with message, got %q", line)
	}
	if !strings.Contains(line, "update") {
		t.Errorf("Expected log line with category prefix, got %q", line)
	}
}

func TestNew_MissingCategory(t *testing.T) {
	files := testLogFiles(t)
	delete(files, CategoryConfig)

	if _, err := New(files, false); err == nil {
		t.Error("Expected error for missing category, got nil")
	}
}

func TestNew_DebugLevel(t *testing.T) {
	files := testLogFiles(t)

	l, err := New(files, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer l.Close()

	l.Dict.Debug("fetching definitions", "word", "ephemeral")

	data, err := os.ReadFile(files[CategoryDict])
	if err != nil {
		t.Fatalf("Failed to read dictionary log: %v", err)
	}

	if !strings.Contains(string(data), "fetching definitions") {
		t.Errorf("Expected debug line in dictionary log, got %q", string(data))
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	// Must be safe to use and close.
	l.App.Info("ignored")
	l.Close()
}
