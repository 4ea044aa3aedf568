package viewkit

import (
	"github.com/goliatone/go-viewkit/pkg/convert"
	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
	"github.com/goliatone/go-viewkit/pkg/renderers/action"
	"github.com/goliatone/go-viewkit/pkg/renderers/data"
	"github.com/goliatone/go-viewkit/pkg/renderers/layout"
)

// Aliases exported via the root package for convenience.
type (
	// Engine is the render façade holding one registry per category.
	Engine = render.Engine
	// Definition is the declarative render input.
	Definition = model.Definition
	// RenderContext is the caller environment forwarded to renderers.
	RenderContext = model.RenderContext
	// Node is a render descriptor tree node.
	Node = descriptor.Node
	// Props is the descriptor property bag.
	Props = descriptor.Props
	// Category is a render kind: view, group, field, data, or action.
	Category = render.Category
	// Renderer is the renderer registration contract.
	Renderer = render.Renderer
)

// Category values re-exported for callers wiring renderers.
const (
	CategoryView   = render.CategoryView
	CategoryGroup  = render.CategoryGroup
	CategoryField  = render.CategoryField
	CategoryData   = render.CategoryData
	CategoryAction = render.CategoryAction
)

// ErrRendererNotFound re-exports the resolution-miss sentinel.
var ErrRendererNotFound = render.ErrRendererNotFound

// NewEngine constructs an empty engine: nothing resolves until renderers
// are registered. There is no ambient default instance; every engine is
// built explicitly.
func NewEngine() *render.Engine {
	return render.NewEngine()
}

// RegisterBuiltins wires the reference renderer set into the engine: the
// primitive data renderers, the primitive action renderers, and the
// structural view/group/field renderers that recurse through the engine.
func RegisterBuiltins(engine *render.Engine) error {
	if err := engine.RegisterRenderers(data.Renderers()...); err != nil {
		return err
	}
	if err := engine.RegisterRenderers(action.Renderers()...); err != nil {
		return err
	}
	structural, err := layout.Renderers(engine)
	if err != nil {
		return err
	}
	return engine.RegisterRenderers(structural...)
}

// NewEngineWithBuiltins is the one-call setup: a fresh engine with the
// full built-in renderer set registered.
func NewEngineWithBuiltins() (*render.Engine, error) {
	engine := render.NewEngine()
	if err := RegisterBuiltins(engine); err != nil {
		return nil, err
	}
	return engine, nil
}

// NewComponentMap constructs an empty component map for the element type
// the integration layer produces.
func NewComponentMap[E any]() *convert.Map[E] {
	return convert.NewMap[E]()
}
