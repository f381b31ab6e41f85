package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pipekit-labs/pipekit/internal/component"
	"github.com/pipekit-labs/pipekit/internal/logging"
	"github.com/pipekit-labs/pipekit/internal/scaffold"
)

// ErrUnknownType is returned by Resolve when no scaffolder is bound to the
// requested component type.
var ErrUnknownType = errors.New("unknown component type")

// Factory builds the Scaffolder for a component type.
type Factory func() scaffold.Scaffolder

// Registry maps component types to scaffolder factories. At most one factory
// is bound per type; a later Register for the same type replaces the earlier
// one. Lookups are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings map[component.Type]Factory
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		bindings: make(map[component.Type]Factory),
	}
}

// Register binds t to f and returns t. Re-registering t silently replaces the
// previous binding.
func (r *Registry) Register(t component.Type, f Factory) component.Type {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logging.New("registry")
	if _, exists := r.bindings[t]; exists {
		log.Debug().Str("type", t.String()).Msg("Replacing scaffolder binding.")
	} else {
		log.Debug().Str("type", t.String()).Msg("Registering scaffolder.")
	}
	r.bindings[t] = f
	return t
}

// Lookup returns a Scaffolder built by the factory bound to t. It reports
// false when t is unbound or its factory is nil or returns nil.
func (r *Registry) Lookup(t component.Type) (scaffold.Scaffolder, bool) {
	r.mu.RLock()
	f, ok := r.bindings[t]
	r.mu.RUnlock()

	if !ok || f == nil {
		return nil, false
	}
	s := f()
	if s == nil {
		return nil, false
	}
	return s, true
}

// Resolve looks up a component type by its user-facing name. The error wraps
// ErrUnknownType and lists the known types.
func (r *Registry) Resolve(name string) (component.Type, scaffold.Scaffolder, error) {
	t := component.Type(name)
	s, ok := r.Lookup(t)
	if !ok {
		known := make([]string, 0, r.Len())
		for _, k := range r.Types() {
			known = append(known, k.String())
		}
		return "", nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownType, name, strings.Join(known, ", "))
	}
	return t, s, nil
}

// Types returns the bound component types in sorted order.
func (r *Registry) Types() []component.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]component.Type, 0, len(r.bindings))
	for t := range r.bindings {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Len returns the number of bound component types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}
