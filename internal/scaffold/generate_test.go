package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/manifest"
)

func TestNewScaffoldData(t *testing.T) {
	d := NewScaffoldData(component.RawAsset, "daily_revenue")
	want := &ScaffoldData{
		Type:     component.RawAsset,
		Name:     "daily_revenue",
		Version:  "0.1.0",
		FileName: "daily_revenue.py",
	}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("NewScaffoldData() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateAsset(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "daily_revenue")

	data := NewScaffoldData(component.RawAsset, "daily_revenue")
	result, err := Generate(AssetScaffolder{}, data, outDir, GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	assertFiles(t, result, []string{"daily_revenue.py", "component.yaml"})

	source := readGenerated(t, outDir, "daily_revenue.py")
	if source != (AssetScaffolder{}).Text("daily_revenue") {
		t.Errorf("generated source differs from scaffolder text:\n%s", source)
	}

	manifestContent := readGenerated(t, outDir, "component.yaml")
	assertContains(t, manifestContent, "type: raw-asset")
	assertContains(t, manifestContent, "name: daily_revenue")
	assertContains(t, manifestContent, "path: daily_revenue.py")

	m, err := manifest.Parse(filepath.Join(outDir, ManifestFileName))
	if err != nil {
		t.Fatalf("manifest.Parse() error: %v", err)
	}
	if m.Path() != data.FileName {
		t.Errorf("manifest path = %q, want %q", m.Path(), data.FileName)
	}

	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestGenerate_EveryShim(t *testing.T) {
	for kind, s := range allScaffolders() {
		t.Run(kind, func(t *testing.T) {
			outDir := filepath.Join(t.TempDir(), "probe")
			result, err := Generate(s, NewScaffoldData(component.Type("raw-"+strings.ReplaceAll(kind, "_", "-")), "probe"), outDir, GenerateOptions{})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			if len(result.Warnings) > 0 {
				t.Errorf("unexpected warnings: %v", result.Warnings)
			}
		})
	}
}

func TestGenerateNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	data := NewScaffoldData(component.RawJob, "nightly")
	_, err := Generate(JobScaffolder{}, data, dir, GenerateOptions{})
	if err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
	if !errors.Is(err, ErrDirNotEmpty) {
		t.Errorf("error should wrap ErrDirNotEmpty, got: %v", err)
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error should mention non-empty dir, got: %v", err)
	}
}

func TestGenerateForce(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nightly.py"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	data := NewScaffoldData(component.RawJob, "nightly")
	if _, err := Generate(JobScaffolder{}, data, dir, GenerateOptions{Force: true}); err != nil {
		t.Fatalf("Generate() with Force error: %v", err)
	}

	source := readGenerated(t, dir, "nightly.py")
	assertContains(t, source, "# def nightly(")
}

func TestGenerate_InvalidNameWarns(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")

	data := NewScaffoldData(component.RawAsset, "daily-revenue")
	result, err := Generate(AssetScaffolder{}, data, outDir, GenerateOptions{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected a manifest warning for a non-identifier name")
	}
	assertContains(t, readGenerated(t, outDir, "daily-revenue.py"), "# def daily-revenue(")
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertFiles(t *testing.T, result *Result, expected []string) {
	t.Helper()
	if diff := cmp.Diff(expected, result.Files); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
