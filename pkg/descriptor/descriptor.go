package descriptor

import (
	"encoding/json"
	"reflect"
)

// Props holds the property bag attached to a descriptor node. Keys are
// unique; map ordering carries no meaning. Values are normally serializable
// scalars or nested structures, though handler-style function values are
// tolerated and simply skipped during JSON marshalling.
type Props map[string]any

// Node is one node of a render descriptor tree: a toolkit-independent
// description of a component, its properties, and its ordered children.
//
// A Node is a pure value. It holds no reference back to the definition or
// renderer that produced it, so converting the same node twice yields
// structurally equal output.
type Node struct {
	// Component names the concrete UI component implementation the
	// converter resolves against its component map.
	Component string

	// Direct optionally carries a concrete component handle. When set, the
	// converter uses it instead of resolving Component, provided the handle
	// matches the binding's factory type. A mismatched handle degrades to
	// the same fallback path as an unknown Component id.
	Direct any

	// Props are forwarded unchanged to the resolved component factory.
	Props Props

	// Children render in sequence order; order MUST be preserved by every
	// consumer.
	Children []Child

	// Key is an optional stable identity token used for list reconciliation.
	// Empty means absent; the converter synthesizes a positional key.
	Key string
}

// Child is either a nested descriptor node or a literal text leaf. A nil
// Node marks the text variant.
type Child struct {
	Node *Node
	Text string
}

// New builds a descriptor node for the named component.
func New(component string, props Props, children ...Child) *Node {
	return &Node{
		Component: component,
		Props:     props,
		Children:  children,
	}
}

// Text wraps a literal string as a child leaf.
func Text(s string) Child {
	return Child{Text: s}
}

// Nested wraps a node as a child.
func Nested(n *Node) Child {
	return Child{Node: n}
}

// WithKey returns the node with its identity token set. It mutates and
// returns the receiver to keep builder chains readable.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// Equal reports structural equality between two nodes. Function-valued
// props compare by identity, so a node always equals itself and a rebuilt
// tree sharing the same handler values compares equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Component != other.Component || n.Key != other.Key {
		return false
	}
	if !equalValue(n.Direct, other.Direct) {
		return false
	}
	if len(n.Props) != len(other.Props) {
		return false
	}
	for key, value := range n.Props {
		theirs, ok := other.Props[key]
		if !ok || !equalValue(value, theirs) {
			return false
		}
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, child := range n.Children {
		theirs := other.Children[i]
		if child.Node == nil || theirs.Node == nil {
			if child.Node != nil || theirs.Node != nil || child.Text != theirs.Text {
				return false
			}
			continue
		}
		if !child.Node.Equal(theirs.Node) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.Func || bv.Kind() == reflect.Func {
		return av.Kind() == bv.Kind() && av.Pointer() == bv.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// MarshalJSON emits the structural portion of the node. Direct handles and
// function-valued props are omitted; everything else round-trips.
func (n *Node) MarshalJSON() ([]byte, error) {
	type wire struct {
		Component string  `json:"component"`
		Props     Props   `json:"props,omitempty"`
		Children  []Child `json:"children,omitempty"`
		Key       string  `json:"key,omitempty"`
	}
	out := wire{
		Component: n.Component,
		Children:  n.Children,
		Key:       n.Key,
	}
	if len(n.Props) > 0 {
		props := make(Props, len(n.Props))
		for key, value := range n.Props {
			if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
				continue
			}
			props[key] = value
		}
		if len(props) > 0 {
			out.Props = props
		}
	}
	return json.Marshal(out)
}

// MarshalJSON encodes text leaves as bare strings and nested nodes as
// objects, matching the children sequence contract.
func (c Child) MarshalJSON() ([]byte, error) {
	if c.Node == nil {
		return json.Marshal(c.Text)
	}
	return json.Marshal(c.Node)
}
