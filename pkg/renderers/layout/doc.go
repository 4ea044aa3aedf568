// Package layout provides the structural built-in renderers: detail views,
// field groups, and labeled fields that delegate their values to the data
// renderer set through the owning engine.
package layout
