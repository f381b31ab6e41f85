// Package component defines the markers that identify each kind of pluggable
// pipeline component pipekit knows how to scaffold. A marker carries no state
// beyond its identity; the registry package binds scaffolders to markers.
package component
