package render

import (
	"context"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
)

// Renderer turns a definition plus runtime value and context into a render
// descriptor tree. Implementations declare the (category, type) pair they
// serve; the pair is the registration key, so a data/"string" renderer and
// an action/"string" renderer are distinct registrations.
type Renderer interface {
	Category() Category
	Type() string
	Render(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error)
}

// NativeFunc is the optional fast path: it produces a concrete UI element
// directly, bypassing descriptor conversion. The element type is owned by
// the binding layer, so the pipeline carries it opaquely.
type NativeFunc func(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (any, error)

// NativeRenderer marks a renderer that also offers the native fast path.
// The capability is detected once at registration and stored on the
// registry entry, not probed per call.
type NativeRenderer interface {
	Renderer
	RenderNative(ctx context.Context, def model.Definition, value any, rctx model.RenderContext) (any, error)
}

// Factory lazily produces a renderer. Registered via RegisterLazy, it is
// invoked under the caller's context on first load, covering deferred
// renderer bundles without a separate future type.
type Factory func(ctx context.Context) (Renderer, error)
