package extension

import (
	"sync"

	"github.com/veritest/veritest/errors"
)

// Registry is an ordered collection of parameter resolvers. Registries are
// hierarchical: a child sees its parent's resolvers first, then its own,
// which preserves "first registered, first diagnosed" ordering across
// nesting levels.
//
// Registry is thread-safe.
type Registry struct {
	parent    *Registry
	resolvers []Resolver
	names     map[string]bool
	mu        sync.RWMutex
}

// NewRegistry creates an empty root registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

// NewChild creates a registry layered over parent. Resolvers registered on
// the child shadow nothing: the parent's resolvers stay visible and keep
// their ordering.
func (r *Registry) NewChild() *Registry {
	return &Registry{parent: r, names: make(map[string]bool)}
}

// Register appends a resolver. Registering two resolvers of the same
// implementation type in one registry is rejected: it could only produce
// competing-resolver failures at resolution time.
func (r *Registry) Register(res Resolver) error {
	if res == nil {
		return errors.InvalidInput(errors.PhaseRegistration, "resolver cannot be nil")
	}
	name := NameOf(res)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.names[name] {
		return errors.Registration(name,
			errors.InvalidInput(errors.PhaseRegistration, "already registered"))
	}
	r.names[name] = true
	r.resolvers = append(r.resolvers, res)
	return nil
}

// Resolvers returns an ordered snapshot: parent resolvers first, then this
// registry's, in registration order.
func (r *Registry) Resolvers() []Resolver {
	var out []Resolver
	if r.parent != nil {
		out = r.parent.Resolvers()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(out, r.resolvers...)
}
