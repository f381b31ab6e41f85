package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Marshal encodes a manifest as YAML.
func Marshal(m *ComponentManifest) ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return data, nil
}

// Unmarshal decodes YAML manifest bytes. It does not validate them.
func Unmarshal(data []byte) (*ComponentManifest, error) {
	var m ComponentManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshaling manifest: %w", err)
	}
	return &m, nil
}

// Parse reads and decodes the manifest at path.
func Parse(path string) (*ComponentManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
