// Package registry binds scaffolders to component types. The generator asks
// the registry "what produces a component of type T" and receives a fresh
// Scaffolder from the factory bound to T.
//
// Bindings are made during an explicit startup step (RegisterBuiltins) and
// are read-only afterwards. Tests build their own Registry with New instead
// of touching the process-wide Default.
package registry
