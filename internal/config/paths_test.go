package config

import (
	"testing"

	"github.com/spf13/afero"
)

func TestEnsureStructure(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := NewPaths(fs, "/runtime/LexiDict")

	if err := paths.EnsureStructure(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, dir := range []string{paths.DataDir(), paths.LogsDir(), paths.DictionariesDir()} {
		ok, err := afero.DirExists(fs, dir)
		if err != nil {
			t.Fatalf("Failed to stat %s: %v", dir, err)
		}
		if !ok {
			t.Errorf("Expected directory %s to exist", dir)
		}
	}

	// Cache is seeded as an empty JSON document
	data, err := afero.ReadFile(fs, paths.CacheFile())
	if err != nil {
		t.Fatalf("Failed to read cache file: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty cache seed, got %q", string(data))
	}

	// Log files are touched
	for category, path := range paths.LogFiles() {
		ok, err := afero.Exists(fs, path)
		if err != nil {
			t.Fatalf("Failed to stat %s log: %v", category, err)
		}
		if !ok {
			t.Errorf("Expected %s log file %s to exist", category, path)
		}
	}
}

func TestEnsureStructure_KeepsExistingCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	paths := NewPaths(fs, "/runtime/LexiDict")

	if err := paths.EnsureStructure(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	seeded := []byte(`{"hello":[{"definition":"a greeting","examples":[]}]}`)
	if err := afero.WriteFile(fs, paths.CacheFile(), seeded, 0o644); err != nil {
		t.Fatalf("Failed to write cache: %v", err)
	}

	// A second call must not overwrite existing data
	if err := paths.EnsureStructure(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := afero.ReadFile(fs, paths.CacheFile())
	if err != nil {
		t.Fatalf("Failed to read cache file: %v", err)
	}
	if string(data) != string(seeded) {
		t.Errorf("Expected cache to be preserved, got %q", string(data))
	}
}
