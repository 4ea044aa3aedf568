// Package model declares the definition and render-context contracts shared
// between the schema layer, the render engine, and renderer implementations.
package model
