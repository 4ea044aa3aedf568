// Package action holds the built-in renderers for primitive action
// controls. Each descriptor names the corresponding control component and
// carries the invocation handler, display label, and flags verbatim from
// the definition.
package action
