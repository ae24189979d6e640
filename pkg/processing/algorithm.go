package processing

import (
	"fmt"
	"sync"
)

// Algorithm exposes the descriptor catalog of one geoprocessing algorithm.
type Algorithm interface {
	// Name returns the unique algorithm identifier.
	Name() string

	// Description returns a human readable description.
	Description() string

	// ParameterDefinitions returns the parameter descriptors in
	// declaration order.
	ParameterDefinitions() []*ParameterDef

	// ParameterDefinition returns the parameter descriptor with the given
	// name, or nil.
	ParameterDefinition(name string) *ParameterDef

	// OutputDefinitions returns the output descriptors in declaration
	// order.
	OutputDefinitions() []*OutputDef
}

// Registry stores registered algorithms.
type Registry struct {
	algorithms map[string]Algorithm
	mu         sync.RWMutex
}

// globalRegistry is the global algorithm registry
var globalRegistry = &Registry{
	algorithms: make(map[string]Algorithm),
}

// GlobalRegistry returns the global algorithm registry
func GlobalRegistry() *Registry {
	return globalRegistry
}

// Register registers an algorithm globally
func Register(alg Algorithm) {
	globalRegistry.Register(alg)
}

// Find retrieves an algorithm by name from the global registry
func Find(name string) (Algorithm, error) {
	return globalRegistry.Find(name)
}

// Register registers an algorithm in this registry
func (r *Registry) Register(alg Algorithm) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Allow re-registration (useful for testing)
	r.algorithms[alg.Name()] = alg
}

// Reset clears all registered algorithms (for testing)
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms = make(map[string]Algorithm)
}

// Find retrieves an algorithm by name
func (r *Registry) Find(name string) (Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	alg, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("algorithm '%s' not found", name)
	}

	return alg, nil
}

// List returns all registered algorithms
func (r *Registry) List() []Algorithm {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Algorithm, 0, len(r.algorithms))
	for _, alg := range r.algorithms {
		result = append(result, alg)
	}

	return result
}
