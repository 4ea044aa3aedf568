package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
)

// Engine is the render façade: it owns one registry per category and
// exposes the per-category render entry points. Engines start empty; an
// engine resolves nothing until callers register renderers explicitly, and
// each engine instance owns its own registries (no ambient shared state).
//
// The engine stays toolkit-agnostic: it returns descriptor trees and never
// materializes UI elements. That is the converter's job.
type Engine struct {
	registries [categoryCount]*Registry
	loaders    [categoryCount]*Loader
}

// CategoryStats summarises a registry for diagnostics.
type CategoryStats struct {
	Count int
	Types []string
}

// NewEngine constructs an engine with empty registries for every category.
func NewEngine() *Engine {
	e := &Engine{}
	for _, c := range Categories() {
		registry := NewRegistry(c)
		loader, _ := NewLoader(registry)
		e.registries[c] = registry
		e.loaders[c] = loader
	}
	return e
}

// Registry exposes the registry for a category, mainly for introspection
// and test isolation (Clear).
func (e *Engine) Registry(c Category) *Registry {
	if !c.Valid() {
		return nil
	}
	return e.registries[c]
}

// RegisterRenderer inspects the renderer's declared category and type and
// inserts it into the matching registry, so callers need not know which
// registry to touch.
func (e *Engine) RegisterRenderer(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	c := renderer.Category()
	if !c.Valid() {
		return fmt.Errorf("render: renderer %q declares invalid category %s", renderer.Type(), c)
	}
	return e.registries[c].Register(renderer.Type(), renderer)
}

// MustRegisterRenderer panics on registration failure. Useful for init-time
// wiring of built-in sets.
func (e *Engine) MustRegisterRenderer(renderer Renderer) {
	if err := e.RegisterRenderer(renderer); err != nil {
		panic(err)
	}
}

// RegisterRenderers registers a batch, stopping at the first failure.
func (e *Engine) RegisterRenderers(renderers ...Renderer) error {
	for _, renderer := range renderers {
		if err := e.RegisterRenderer(renderer); err != nil {
			return err
		}
	}
	return nil
}

// RegisterLazy stores a deferred renderer factory under (category, typ).
func (e *Engine) RegisterLazy(c Category, typ string, factory Factory) error {
	if !c.Valid() {
		return fmt.Errorf("render: invalid category %s", c)
	}
	return e.registries[c].RegisterLazy(typ, factory)
}

// Render resolves and invokes the renderer for (c, def.Type). Resolution
// misses surface as *NotFoundError; renderer errors propagate unmodified,
// with no wrapping, so callers can tell domain failures from resolution
// failures by error identity.
func (e *Engine) Render(ctx context.Context, c Category, def model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("render: invalid category %s", c)
	}
	entry, err := e.loaders[c].Load(ctx, def)
	if err != nil {
		return nil, err
	}
	return entry.Renderer.Render(ctx, def, value, rctx)
}

// RenderView renders a view definition with its backing data.
func (e *Engine) RenderView(ctx context.Context, def model.Definition, data any, rctx model.RenderContext) (*descriptor.Node, error) {
	return e.Render(ctx, CategoryView, def, data, rctx)
}

// RenderGroup renders a group definition with its backing data.
func (e *Engine) RenderGroup(ctx context.Context, def model.Definition, data any, rctx model.RenderContext) (*descriptor.Node, error) {
	return e.Render(ctx, CategoryGroup, def, data, rctx)
}

// RenderField renders a field definition with its current value.
func (e *Engine) RenderField(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error) {
	return e.Render(ctx, CategoryField, def, value, rctx)
}

// RenderData renders a primitive data value.
func (e *Engine) RenderData(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error) {
	return e.Render(ctx, CategoryData, def, value, rctx)
}

// RenderAction renders an action control.
func (e *Engine) RenderAction(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error) {
	return e.Render(ctx, CategoryAction, def, value, rctx)
}

// RenderNative invokes the renderer's native fast path when it declared
// one. ok is false when the renderer resolves but carries no native
// capability; resolution misses still return an error.
func (e *Engine) RenderNative(ctx context.Context, c Category, def model.Definition, value any, rctx model.RenderContext) (element any, ok bool, err error) {
	if !c.Valid() {
		return nil, false, fmt.Errorf("render: invalid category %s", c)
	}
	entry, err := e.loaders[c].Load(ctx, def)
	if err != nil {
		return nil, false, err
	}
	if entry.Native == nil {
		return nil, false, nil
	}
	element, err = entry.Native(ctx, def, value, rctx)
	return element, err == nil, err
}

// AvailableTypes proxies to the category registry's type listing.
func (e *Engine) AvailableTypes(c Category) []string {
	if !c.Valid() {
		return nil
	}
	return e.registries[c].Types()
}

// Stats reports counts and registered types per category, keyed by the
// category name for diagnostics output.
func (e *Engine) Stats() map[string]CategoryStats {
	stats := make(map[string]CategoryStats, categoryCount)
	for _, c := range Categories() {
		registry := e.registries[c]
		stats[c.String()] = CategoryStats{
			Count: registry.Len(),
			Types: registry.Types(),
		}
	}
	return stats
}
