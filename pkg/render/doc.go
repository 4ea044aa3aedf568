// Package render implements the layered render-resolution pipeline core:
// the closed category set, the renderer contract with its optional native
// fast path, per-category registries, the loader that owns the not-found
// failure, and the engine façade that ties them together.
//
// The error split is load-bearing: resolution failures (ErrRendererNotFound)
// always propagate to the caller of a render entry point, while renderer
// execution errors pass through unmodified. Presentation-layer degradation
// lives in the converter, not here.
package render
