package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"
)

//go:embed fixtures
var fixturesFS embed.FS

// Fixtures lists the fixture names, one per rule file format.
var Fixtures = []string{"config", "rules.toml", "rules.yaml"}

// LoadFixture returns the raw contents of a fixture.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// WriteFixture copies a fixture into a fresh temp dir and returns its path.
func WriteFixture(t *testing.T, name string) string {
	t.Helper()

	data, err := LoadFixture(name)
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	return WriteFile(t, name, string(data))
}

// WriteFile writes content to name inside a fresh temp dir and returns
// its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
