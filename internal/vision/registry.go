package vision

import (
	"fmt"
	"sort"
)

// Registry maps provider identifiers to the queriers configured at startup.
// It is built once in main and read-only afterwards.
type Registry struct {
	queriers map[string]Querier
}

func NewRegistry() *Registry {
	return &Registry{queriers: make(map[string]Querier)}
}

func (r *Registry) Register(name string, q Querier) {
	r.queriers[name] = q
}

// Get returns the querier for a provider identifier. Unknown or unconfigured
// providers are an error; the caller surfaces it as a provider failure.
func (r *Registry) Get(name string) (Querier, error) {
	q, ok := r.queriers[name]
	if !ok {
		return nil, fmt.Errorf("unknown or unconfigured provider %q", name)
	}
	return q, nil
}

// Providers returns the configured provider identifiers, sorted.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.queriers))
	for name := range r.queriers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
