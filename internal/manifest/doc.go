// Package manifest handles the component.yaml instance manifest written next to
// every scaffolded component. It encodes and parses manifests and validates
// them against the embedded JSON Schema, with an additional semver check of
// the version field.
package manifest
