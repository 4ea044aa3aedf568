// Package html binds the descriptor converter to a minimal HTML element
// model: a default component map for the identifiers the built-in
// renderers emit, sanitized icon markup, theme-token-aware fallback
// chrome, and template-driven custom components.
package html
