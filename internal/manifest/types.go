package manifest

// ComponentManifest describes one scaffolded component instance.
type ComponentManifest struct {
	Type        string                 `yaml:"type" json:"type"`
	Name        string                 `yaml:"name" json:"name"`
	Version     string                 `yaml:"version" json:"version"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
	Attributes  map[string]interface{} `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// Path returns the attributes.path entry, or an empty string when absent.
func (m *ComponentManifest) Path() string {
	p, _ := m.Attributes["path"].(string)
	return p
}
