package convert

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// Binding supplies the three element shapes the converter cannot build
// through the component map: literal text leaves, the empty placeholder for
// absent nodes, and the fail-soft fallback for unresolved components.
type Binding[E any] interface {
	// Text wraps a literal text leaf.
	Text(s string) E
	// Empty is returned for absent/nil nodes; it must render to nothing.
	Empty() E
	// Fallback renders a visible, error-styled placeholder naming the
	// unresolved component identifier.
	Fallback(component, key string) E
}

// Option customises a converter.
type Option[E any] func(*Converter[E])

// WithLogger overrides the diagnostics logger used for unresolved
// component reports.
func WithLogger[E any](logger *log.Logger) Option[E] {
	return func(c *Converter[E]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Converter materializes render descriptor trees into concrete UI elements
// of type E, using a component map owned by the binding layer.
//
// A missing component never aborts the tree: the node degrades to the
// binding's fallback element plus a debug log line, and sibling conversion
// continues. Resolution is consult-on-call: the map is read at each
// conversion, never snapshotted at construction.
type Converter[E any] struct {
	components *Map[E]
	binding    Binding[E]
	logger     *log.Logger
}

// New wires a converter to its component map and binding.
func New[E any](components *Map[E], binding Binding[E], options ...Option[E]) (*Converter[E], error) {
	if components == nil {
		return nil, errors.New("convert: component map is required")
	}
	if binding == nil {
		return nil, errors.New("convert: binding is required")
	}

	c := &Converter[E]{
		components: components,
		binding:    binding,
		logger:     log.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Convert transforms one descriptor tree. A nil node yields the binding's
// empty placeholder; it never fails. Children convert depth-first in their
// original order, each under a deterministic synthesized key when the
// descriptor omits one.
func (c *Converter[E]) Convert(node *descriptor.Node) E {
	return c.convertNode(node, resolveKey(node, "", 0))
}

// ConvertMany applies Convert to a top-level ordered sequence, returning a
// same-length, order-preserving slice. Top-level items without an explicit
// key receive "batch-N".
func (c *Converter[E]) ConvertMany(nodes []*descriptor.Node) []E {
	out := make([]E, len(nodes))
	for i, node := range nodes {
		key := ""
		if node != nil && node.Key != "" {
			key = node.Key
		} else {
			key = fmt.Sprintf("batch-%d", i)
		}
		out[i] = c.convertNode(node, key)
	}
	return out
}

func (c *Converter[E]) convertNode(node *descriptor.Node, key string) E {
	if node == nil {
		return c.binding.Empty()
	}

	factory, ok := c.resolveFactory(node)
	if !ok {
		c.logger.Debug("component not registered, rendering fallback",
			"component", node.Component, "key", key)
		return c.binding.Fallback(node.Component, key)
	}

	children := make([]E, len(node.Children))
	for i, child := range node.Children {
		if child.Node == nil {
			children[i] = c.binding.Text(child.Text)
			continue
		}
		children[i] = c.convertNode(child.Node, resolveKey(child.Node, key, i))
	}
	return factory(key, node.Props, children)
}

// resolveFactory honours the direct-handle descriptor variant before
// consulting the component map. A direct handle of the wrong factory type
// falls through to the map, then to the fallback path.
func (c *Converter[E]) resolveFactory(node *descriptor.Node) (Factory[E], bool) {
	if node.Direct != nil {
		if factory, ok := node.Direct.(Factory[E]); ok {
			return factory, true
		}
		if factory, ok := node.Direct.(func(string, descriptor.Props, []E) E); ok {
			return factory, true
		}
	}
	return c.components.Get(node.Component)
}

// resolveKey returns the node's explicit key, or synthesizes one from the
// parent key and sibling position. Synthesis is purely positional, so an
// unchanged tree produces identical keys on every conversion.
func resolveKey(node *descriptor.Node, parentKey string, index int) string {
	if node != nil && node.Key != "" {
		return node.Key
	}
	if parentKey == "" {
		return fmt.Sprintf("%d", index)
	}
	return fmt.Sprintf("%s-child-%d", parentKey, index)
}
