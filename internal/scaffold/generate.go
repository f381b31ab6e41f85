package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/manifest"
)

// ManifestFileName is the instance manifest written next to the generated source.
const ManifestFileName = "component.yaml"

// ErrDirNotEmpty is returned when Generate would write into a populated directory.
var ErrDirNotEmpty = errors.New("output directory is not empty")

// ScaffoldData holds everything Generate needs to lay out one component.
type ScaffoldData struct {
	Type     component.Type // e.g., "raw-asset"
	Name     string         // e.g., "daily_revenue"
	Version  string         // Semver of the generated manifest
	FileName string         // Derived: <name>.py
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// GenerateOptions tunes Generate.
type GenerateOptions struct {
	// Force allows writing into a directory that already has files in it.
	// Files with the same names are overwritten.
	Force bool
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
func NewScaffoldData(t component.Type, name string) *ScaffoldData {
	return &ScaffoldData{
		Type:     t,
		Name:     name,
		Version:  "0.1.0",
		FileName: name + ".py",
	}
}

// Manifest returns the component.yaml contents describing this instance.
func (d *ScaffoldData) Manifest() *manifest.ComponentManifest {
	return &manifest.ComponentManifest{
		Type:    d.Type.String(),
		Name:    d.Name,
		Version: d.Version,
		Attributes: map[string]interface{}{
			"path": d.FileName,
		},
	}
}

// Generate writes the text produced by s for data.Name into outputDir along
// with a component.yaml manifest. Manifest schema problems are reported as
// warnings; only filesystem and encoding failures are errors.
func Generate(s Scaffolder, data *ScaffoldData, outputDir string, opts GenerateOptions) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Check for existing files to prevent accidental overwrites.
	if !opts.Force {
		existingEntries, err := os.ReadDir(outputDir)
		if err == nil && len(existingEntries) > 0 {
			return nil, fmt.Errorf("%w: %s; remove existing files first", ErrDirNotEmpty, outputDir)
		}
	}

	manifestBytes, err := manifest.Marshal(data.Manifest())
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ManifestFileName, err)
	}

	result := &Result{
		OutputDir: outputDir,
	}

	outputs := []struct {
		name    string
		content []byte
	}{
		{data.FileName, []byte(s.Text(data.Name))},
		{ManifestFileName, manifestBytes},
	}
	for _, out := range outputs {
		outPath := filepath.Join(outputDir, out.name)
		if err := os.WriteFile(outPath, out.content, 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, out.name)
	}

	valResult, valErr := manifest.Validate(manifestBytes)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate manifest: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}
