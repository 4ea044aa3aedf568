package convert

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// Factory builds one concrete UI element of type E from a resolved key, the
// descriptor props (passed through unchanged), and the already-converted
// children in original order.
type Factory[E any] func(key string, props descriptor.Props, children []E) E

// Map is the component map: component identifier to concrete element
// factory. It is owned by the toolkit binding layer, not the engine, and is
// mutable at runtime; the converter consults it on every call, so hot
// registrations become visible on the next conversion.
//
// Re-registering an identifier replaces the previous factory.
type Map[E any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[E]
}

// NewMap creates an empty component map.
func NewMap[E any]() *Map[E] {
	return &Map[E]{factories: make(map[string]Factory[E])}
}

// Register associates a factory with the identifier, replacing any
// previous registration.
func (m *Map[E]) Register(id string, factory Factory[E]) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("convert: component id is required")
	}
	if factory == nil {
		return fmt.Errorf("convert: factory for %q is nil", id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories[id] = factory
	return nil
}

// RegisterMany performs bulk registration, stopping at the first failure.
func (m *Map[E]) RegisterMany(factories map[string]Factory[E]) error {
	for id, factory := range factories {
		if err := m.Register(id, factory); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister panics on registration failure. Useful for default
// component-set wiring.
func (m *Map[E]) MustRegister(id string, factory Factory[E]) {
	if err := m.Register(id, factory); err != nil {
		panic(err)
	}
}

// Get retrieves the factory for an identifier.
func (m *Map[E]) Get(id string) (Factory[E], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	factory, ok := m.factories[id]
	return factory, ok
}

// Names returns the sorted registered identifiers.
func (m *Map[E]) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.factories))
	for id := range m.factories {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// Clear resets the map to empty. Intended for test isolation.
func (m *Map[E]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories = make(map[string]Factory[E])
}
