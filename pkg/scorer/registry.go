package scorer

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the available scoring policies.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]Policy
}

// NewRegistry creates an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// DefaultRegistry returns a registry holding the built-in policies.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(Heuristic{})
	_ = r.Register(Reference{})
	return r
}

// Register adds a policy to the registry.
// Returns an error if a policy with the same name is already registered.
func (r *Registry) Register(p Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	if _, exists := r.policies[name]; exists {
		return fmt.Errorf("scorer: policy %q is already registered", name)
	}
	r.policies[name] = p
	return nil
}

// Get returns a policy by name. Returns nil if not found.
func (r *Registry) Get(name string) Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.policies[name]
}

// Lookup returns a policy by name, or an error naming the known policies.
func (r *Registry) Lookup(name string) (Policy, error) {
	if p := r.Get(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("scorer: unknown policy %q (known: %v)", name, r.List())
}

// List returns the names of all registered policies, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.policies))
	for name := range r.policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
