// Package scaffold turns a requested artifact name into the boilerplate text
// for a new pipeline component. Scaffolders are pure: they never touch the
// filesystem. Generate is the writer used by the "pipekit scaffold" command; it
// places the text and a component.yaml manifest into a new component directory.
package scaffold
