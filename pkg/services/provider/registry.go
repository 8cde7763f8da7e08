package provider

import (
	"fmt"
	"sync"
)

// Registry maps agent function names to providers.
type Registry interface {
	// Register adds a provider under its function name.
	Register(p *Provider) error
	// Get returns the provider registered for the function.
	Get(function string) (*Provider, error)
	// Functions returns the registered function names.
	Functions() []string
}

type registry struct {
	mu        sync.RWMutex
	providers map[string]*Provider
}

func NewRegistry(providers ...*Provider) (Registry, error) {
	r := &registry{providers: make(map[string]*Provider)}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(p *Provider) error {
	if p == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	if p.Function() == "" {
		return fmt.Errorf("provider function name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.providers[p.Function()]; exists {
		return fmt.Errorf("function %q is already registered", p.Function())
	}
	r.providers[p.Function()] = p
	return nil
}

func (r *registry) Get(function string) (*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[function]
	if !ok {
		return nil, fmt.Errorf("function %q is not registered", function)
	}
	return p, nil
}

func (r *registry) Functions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	functions := make([]string, 0, len(r.providers))
	for function := range r.providers {
		functions = append(functions, function)
	}
	return functions
}
