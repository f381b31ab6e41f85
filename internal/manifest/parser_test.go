package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParse_Fields(t *testing.T) {
	m, err := Parse(testPath("valid-asset.yaml"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := &ComponentManifest{
		Type:       "raw-asset",
		Name:       "daily_revenue",
		Version:    "0.1.0",
		Attributes: map[string]interface{}{"path": "daily_revenue.py"},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if m.Path() != "daily_revenue.py" {
		t.Errorf("Path() = %q, want %q", m.Path(), "daily_revenue.py")
	}
}

func TestParse_NoAttributes(t *testing.T) {
	m, err := Parse(testPath("valid-minimal.yaml"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Path() != "" {
		t.Errorf("Path() = %q, want empty", m.Path())
	}
}

func TestParse_NotFound(t *testing.T) {
	if _, err := Parse(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	in := &ComponentManifest{
		Type:        "raw-sensor",
		Name:        "new_files",
		Version:     "0.1.0",
		Description: "Watches the landing bucket",
		Attributes:  map[string]interface{}{"path": "new_files.py"},
	}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "component.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	out, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("marshaled manifest is invalid: %v", result.Issues)
	}
}
