package sequence

import (
	"fmt"
	"sort"
)

// GeneratorFactory provides named access to the registered generator
// implementations. Consumers select generators by their registry key
// ("iterative", "doubling") or iterate over all of them for comparison runs.
type GeneratorFactory interface {
	// Get returns the generator registered under the given key.
	Get(name string) (Generator, error)
	// List returns the sorted registry keys.
	List() []string
	// GetAll returns all registered generators, ordered by registry key.
	GetAll() []Generator
}

// defaultFactory is the standard registry-backed factory.
type defaultFactory struct {
	registry map[string]Generator
}

// NewDefaultFactory creates a factory with the built-in generators
// pre-registered.
func NewDefaultFactory() GeneratorFactory {
	return &defaultFactory{
		registry: map[string]Generator{
			"iterative": &IterativeGenerator{},
			"doubling":  &DoublingGenerator{},
		},
	}
}

// Get returns the generator registered under the given key.
func (f *defaultFactory) Get(name string) (Generator, error) {
	gen, ok := f.registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator %q (available: %v)", name, f.List())
	}
	return gen, nil
}

// List returns the sorted registry keys.
func (f *defaultFactory) List() []string {
	keys := make([]string, 0, len(f.registry))
	for k := range f.registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns all registered generators, ordered by registry key.
func (f *defaultFactory) GetAll() []Generator {
	keys := f.List()
	gens := make([]Generator, 0, len(keys))
	for _, k := range keys {
		gens = append(gens, f.registry[k])
	}
	return gens
}
