package render

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Entry is a resolved registry slot: the renderer plus its optional native
// fast path, detected once at registration time.
type Entry struct {
	Renderer Renderer
	// Native is non-nil only when the renderer implements NativeRenderer.
	Native NativeFunc
}

// Registry owns the type-to-renderer mapping for a single category. It is
// created empty and never auto-populates; no category registry coordinates
// with another, so name collisions across categories have no meaning.
//
// Registration replaces silently: last writer wins. Hot-reload and themed
// overrides depend on re-registration, so duplicates are not an error.
// Reads are concurrent; writes are expected to be infrequent.
type Registry struct {
	mu       sync.RWMutex
	category Category
	entries  map[string]Entry
	lazy     map[string]Factory
}

// NewRegistry creates an empty registry for the given category.
func NewRegistry(category Category) *Registry {
	return &Registry{
		category: category,
		entries:  make(map[string]Entry),
		lazy:     make(map[string]Factory),
	}
}

// Category reports which render kind this registry serves.
func (r *Registry) Category() Category {
	return r.category
}

// Register stores the renderer under typ, replacing any previous
// registration for the same type. The native capability is resolved here,
// not per call.
func (r *Registry) Register(typ string, renderer Renderer) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return fmt.Errorf("render: %s renderer type is required", r.category)
	}
	if renderer == nil {
		return fmt.Errorf("render: %s renderer %q is nil", r.category, typ)
	}

	entry := Entry{Renderer: renderer}
	if native, ok := renderer.(NativeRenderer); ok {
		entry.Native = native.RenderNative
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[typ] = entry
	delete(r.lazy, typ)
	return nil
}

// RegisterLazy stores a factory that is invoked on first load. The
// resolved renderer is memoized back into the registry, so the loader
// itself stays cache-free.
func (r *Registry) RegisterLazy(typ string, factory Factory) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return fmt.Errorf("render: %s renderer type is required", r.category)
	}
	if factory == nil {
		return fmt.Errorf("render: %s renderer factory %q is nil", r.category, typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lazy[typ] = factory
	delete(r.entries, typ)
	return nil
}

// Get retrieves a concretely registered entry. Lazy registrations are not
// resolved here; use a Loader for that.
func (r *Registry) Get(typ string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[typ]
	return entry, ok
}

// Has reports whether typ is registered, concretely or lazily.
func (r *Registry) Has(typ string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.entries[typ]; ok {
		return true
	}
	_, ok := r.lazy[typ]
	return ok
}

// Types returns the sorted set of registered type keys, including lazy
// registrations that have not resolved yet.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.entries)+len(r.lazy))
	for typ := range r.entries {
		types = append(types, typ)
	}
	for typ := range r.lazy {
		if _, ok := r.entries[typ]; !ok {
			types = append(types, typ)
		}
	}
	sort.Strings(types)
	return types
}

// Len counts registered types, lazy included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries) + len(r.lazy)
}

// Clear resets the registry to empty. Intended for test isolation, not
// general runtime use.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]Entry)
	r.lazy = make(map[string]Factory)
}

// resolve returns the entry for typ, invoking and memoizing a lazy factory
// when needed. The factory runs outside the lock; two racing callers may
// both invoke it and the last writer wins, matching the registry's general
// replacement semantics.
func (r *Registry) resolve(ctx context.Context, typ string) (Entry, bool, error) {
	r.mu.RLock()
	entry, ok := r.entries[typ]
	factory, lazy := r.lazy[typ]
	r.mu.RUnlock()

	if ok {
		return entry, true, nil
	}
	if !lazy {
		return Entry{}, false, nil
	}

	renderer, err := factory(ctx)
	if err != nil {
		return Entry{}, false, fmt.Errorf("render: resolve lazy %s renderer %q: %w", r.category, typ, err)
	}
	if renderer == nil {
		return Entry{}, false, fmt.Errorf("render: lazy %s renderer factory %q returned nil", r.category, typ)
	}

	if err := r.Register(typ, renderer); err != nil {
		return Entry{}, false, err
	}
	entry, ok = r.Get(typ)
	return entry, ok, nil
}
