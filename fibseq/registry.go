package fibseq

import (
	"fmt"
	"sort"
)

// Registry maps provider names to implementations so the caller can pick
// them from configuration.
type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// Register adds p under p.Name(), replacing any provider with the same name.
func (r *Registry) Register(p Provider) {
	r.providers[p.Name()] = p
}

func (r *Registry) Lookup(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (available: %v)", name, r.Names())
	}
	return p, nil
}

// Names lists the registered providers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves names in order, failing on the first unknown one.
func (r *Registry) Select(names []string) ([]Provider, error) {
	selected := make([]Provider, 0, len(names))
	for _, name := range names {
		p, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}
	return selected, nil
}
