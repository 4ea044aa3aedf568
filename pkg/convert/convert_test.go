package convert

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// testElement is a minimal concrete element for exercising the converter
// without a real toolkit binding.
type testElement struct {
	Kind     string
	Key      string
	Text     string
	Props    map[string]any
	Children []*testElement
}

type testBinding struct{}

func (testBinding) Text(s string) *testElement { return &testElement{Kind: "#text", Text: s} }
func (testBinding) Empty() *testElement        { return &testElement{Kind: "#empty"} }

func (testBinding) Fallback(component, key string) *testElement {
	return &testElement{
		Kind: "#fallback",
		Key:  key,
		Text: fmt.Sprintf("Unknown component: %s", component),
	}
}

func elementFactory(kind string) Factory[*testElement] {
	return func(key string, props descriptor.Props, children []*testElement) *testElement {
		return &testElement{Kind: kind, Key: key, Props: props, Children: children}
	}
}

func newTestConverter(t *testing.T) (*Converter[*testElement], *Map[*testElement]) {
	t.Helper()
	components := NewMap[*testElement]()
	components.MustRegister("div", elementFactory("div"))
	components.MustRegister("span", elementFactory("span"))

	converter, err := New[*testElement](components, testBinding{},
		WithLogger[*testElement](log.New(io.Discard)))
	if err != nil {
		t.Fatalf("new converter: %v", err)
	}
	return converter, components
}

func sampleTree() *descriptor.Node {
	return descriptor.New("div",
		descriptor.Props{"class": "card"},
		descriptor.Text("lead"),
		descriptor.Nested(descriptor.New("span", descriptor.Props{"class": "a"}, descriptor.Text("one"))),
		descriptor.Nested(descriptor.New("span", descriptor.Props{"class": "b"}, descriptor.Text("two")).WithKey("explicit")),
	).WithKey("root")
}

func TestConvert_Idempotent(t *testing.T) {
	converter, _ := newTestConverter(t)

	first := converter.Convert(sampleTree())
	second := converter.Convert(sampleTree())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("conversion must be idempotent (-first +second):\n%s", diff)
	}
}

func TestConvert_KeySynthesisDeterministic(t *testing.T) {
	converter, _ := newTestConverter(t)

	out := converter.Convert(sampleTree())
	if out.Key != "root" {
		t.Fatalf("explicit root key preserved, got %q", out.Key)
	}
	// Children: index 0 text leaf, index 1 synthesized, index 2 explicit.
	if got := out.Children[1].Key; got != "root-child-1" {
		t.Fatalf("synthesized child key: want root-child-1, got %q", got)
	}
	if got := out.Children[2].Key; got != "explicit" {
		t.Fatalf("explicit child key preserved, got %q", got)
	}

	again := converter.Convert(sampleTree())
	if again.Children[1].Key != out.Children[1].Key {
		t.Fatalf("synthesized keys must be stable across conversions")
	}
}

func TestConvert_RootWithoutKeyIsPositional(t *testing.T) {
	converter, _ := newTestConverter(t)
	out := converter.Convert(descriptor.New("div", nil))
	if out.Key != "0" {
		t.Fatalf("keyless root gets positional key, got %q", out.Key)
	}
}

func TestConvert_NilNodeNeverThrows(t *testing.T) {
	converter, _ := newTestConverter(t)
	out := converter.Convert(nil)
	if out.Kind != "#empty" {
		t.Fatalf("nil node renders the empty placeholder, got %+v", out)
	}
}

func TestConvert_FallbackDoesNotAffectSiblings(t *testing.T) {
	converter, _ := newTestConverter(t)

	tree := descriptor.New("div", nil,
		descriptor.Nested(descriptor.New("missing-widget", nil)),
		descriptor.Nested(descriptor.New("span", nil, descriptor.Text("still here"))),
	).WithKey("root")

	out := converter.Convert(tree)
	fallback := out.Children[0]
	if fallback.Kind != "#fallback" {
		t.Fatalf("unresolved component must degrade, got %+v", fallback)
	}
	if !strings.Contains(fallback.Text, "missing-widget") {
		t.Fatalf("fallback must carry the literal identifier, got %q", fallback.Text)
	}
	sibling := out.Children[1]
	if sibling.Kind != "span" || sibling.Children[0].Text != "still here" {
		t.Fatalf("sibling conversion must be unaffected, got %+v", sibling)
	}
}

func TestConvert_PropsPassThroughUnchanged(t *testing.T) {
	converter, _ := newTestConverter(t)
	handler := func() {}
	tree := descriptor.New("span", descriptor.Props{"onClick": handler, "label": "go"})

	out := converter.Convert(tree)
	if got := out.Props["label"]; got != "go" {
		t.Fatalf("scalar prop lost: %v", got)
	}
	if out.Props["onClick"] == nil {
		t.Fatalf("handler prop must pass through to the factory")
	}
}

func TestConvert_DirectHandle(t *testing.T) {
	converter, _ := newTestConverter(t)

	node := descriptor.New("", nil, descriptor.Text("direct"))
	node.Direct = Factory[*testElement](elementFactory("custom"))

	out := converter.Convert(node)
	if out.Kind != "custom" {
		t.Fatalf("direct handle should bypass the component map, got %+v", out)
	}

	// Wrong-typed handles degrade exactly like unknown identifiers.
	bad := descriptor.New("nope", nil)
	bad.Direct = 42
	if got := converter.Convert(bad); got.Kind != "#fallback" {
		t.Fatalf("mismatched direct handle must fall back, got %+v", got)
	}
}

func TestConvertMany_OrderAndBatchKeys(t *testing.T) {
	converter, _ := newTestConverter(t)

	nodes := []*descriptor.Node{
		descriptor.New("span", nil, descriptor.Text("first")),
		nil,
		descriptor.New("span", nil, descriptor.Text("third")).WithKey("named"),
	}

	out := converter.ConvertMany(nodes)
	if len(out) != len(nodes) {
		t.Fatalf("convertMany must be same-length, got %d", len(out))
	}
	if out[0].Key != "batch-0" {
		t.Fatalf("keyless top-level item gets batch key, got %q", out[0].Key)
	}
	if out[1].Kind != "#empty" {
		t.Fatalf("nil item renders empty placeholder, got %+v", out[1])
	}
	if out[2].Key != "named" {
		t.Fatalf("explicit top-level key preserved, got %q", out[2].Key)
	}
	if out[0].Children[0].Text != "first" || out[2].Children[0].Text != "third" {
		t.Fatalf("output order must match input order")
	}
}

func TestConvert_HotRegistrationVisibleNextCall(t *testing.T) {
	converter, components := newTestConverter(t)

	node := descriptor.New("late", nil)
	if got := converter.Convert(node); got.Kind != "#fallback" {
		t.Fatalf("expected fallback before registration, got %+v", got)
	}

	components.MustRegister("late", elementFactory("late"))
	if got := converter.Convert(node); got.Kind != "late" {
		t.Fatalf("registration between calls must be visible, got %+v", got)
	}
}

func TestMap_Operations(t *testing.T) {
	m := NewMap[*testElement]()
	if err := m.Register("", elementFactory("x")); err == nil {
		t.Fatalf("expected error for empty id")
	}
	if err := m.Register("x", nil); err == nil {
		t.Fatalf("expected error for nil factory")
	}

	m.MustRegister("b", elementFactory("b"))
	m.MustRegister("a", elementFactory("a"))
	if diff := cmp.Diff([]string{"a", "b"}, m.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	// Replacement: last writer wins.
	m.MustRegister("a", elementFactory("a2"))
	factory, ok := m.Get("a")
	if !ok || factory("k", nil, nil).Kind != "a2" {
		t.Fatalf("expected replacement registration to win")
	}

	m.Clear()
	if len(m.Names()) != 0 {
		t.Fatalf("clear must empty the map")
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New[*testElement](nil, testBinding{}); err == nil {
		t.Fatalf("expected error for nil map")
	}
	if _, err := New[*testElement](NewMap[*testElement](), nil); err == nil {
		t.Fatalf("expected error for nil binding")
	}
}
