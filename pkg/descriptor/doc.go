// Package descriptor defines the intermediate render descriptor tree
// produced by renderers and consumed by descriptor converters. Nodes are
// pure values with no behavior beyond structural equality and a structural
// JSON encoding.
package descriptor
