// Package convert turns render descriptor trees into concrete UI elements.
// The element type is a type parameter supplied by the toolkit binding, so
// the same conversion algorithm (depth-first, pre-order key assignment,
// fail-soft component resolution) serves every binding.
package convert
