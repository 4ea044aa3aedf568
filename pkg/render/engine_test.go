package render

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
)

func TestEngine_RegisterRendererRoutesByCategory(t *testing.T) {
	engine := NewEngine()
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryData, typ: "string"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryAction, typ: "string"}); err != nil {
		t.Fatalf("register action: %v", err)
	}

	if !engine.Registry(CategoryData).Has("string") {
		t.Fatalf("data registry should hold the data renderer")
	}
	if !engine.Registry(CategoryAction).Has("string") {
		t.Fatalf("action registry should hold its own string renderer")
	}
	if engine.Registry(CategoryView).Has("string") {
		t.Fatalf("categories are independent namespaces")
	}
}

func TestEngine_EmptyEngineResolvesNothing(t *testing.T) {
	engine := NewEngine()
	_, err := engine.RenderData(context.Background(), model.Definition{Type: "string"}, "abc", model.RenderContext{})
	if !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected typed not-found error, got %T", err)
	}
	if notFound.Category != CategoryData || notFound.Type != "string" {
		t.Fatalf("not-found should identify the pair, got %+v", notFound)
	}
}

func TestEngine_RendererErrorsPropagateUnmodified(t *testing.T) {
	engine := NewEngine()
	boom := errors.New("renderer exploded")
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryField, typ: "labeled", err: boom}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := engine.RenderField(context.Background(), model.Definition{Type: "labeled"}, nil, model.RenderContext{})
	if err != boom {
		t.Fatalf("renderer errors must pass through unwrapped, got %v", err)
	}
	if errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("execution errors must stay distinguishable from resolution errors")
	}
}

func TestEngine_RenderReturnsDescriptor(t *testing.T) {
	engine := NewEngine()
	node := descriptor.New("span", descriptor.Props{"class": "x"}, descriptor.Text("abc"))
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryData, typ: "string", node: node}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := engine.RenderData(context.Background(), model.Definition{Type: "string"}, "abc", model.RenderContext{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !got.Equal(node) {
		t.Fatalf("engine must return the renderer's descriptor untouched")
	}
}

func TestEngine_RenderNative(t *testing.T) {
	engine := NewEngine()
	if err := engine.RegisterRenderer(nativeStub{
		stubRenderer: stubRenderer{category: CategoryData, typ: "fast"},
		native:       "concrete",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryData, typ: "slow"}); err != nil {
		t.Fatalf("register plain: %v", err)
	}

	element, ok, err := engine.RenderNative(context.Background(), CategoryData, model.Definition{Type: "fast"}, nil, model.RenderContext{})
	if err != nil || !ok || element != "concrete" {
		t.Fatalf("native render: got (%v, %v, %v)", element, ok, err)
	}

	_, ok, err = engine.RenderNative(context.Background(), CategoryData, model.Definition{Type: "slow"}, nil, model.RenderContext{})
	if err != nil || ok {
		t.Fatalf("plain renderer must report no native capability, got ok=%v err=%v", ok, err)
	}

	_, _, err = engine.RenderNative(context.Background(), CategoryData, model.Definition{Type: "missing"}, nil, model.RenderContext{})
	if !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("resolution misses still fail hard, got %v", err)
	}
}

func TestEngine_StatsAndAvailableTypes(t *testing.T) {
	engine := NewEngine()
	for _, typ := range []string{"string", "number"} {
		if err := engine.RegisterRenderer(stubRenderer{category: CategoryData, typ: typ}); err != nil {
			t.Fatalf("register %s: %v", typ, err)
		}
	}
	if err := engine.RegisterRenderer(stubRenderer{category: CategoryAction, typ: "button"}); err != nil {
		t.Fatalf("register button: %v", err)
	}

	stats := engine.Stats()
	if stats["data"].Count != 2 || stats["action"].Count != 1 || stats["view"].Count != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	types := engine.AvailableTypes(CategoryData)
	if len(types) != 2 || types[0] != "number" || types[1] != "string" {
		t.Fatalf("unexpected data types: %v", types)
	}
}

func TestEngine_InvalidRegistrations(t *testing.T) {
	engine := NewEngine()
	if err := engine.RegisterRenderer(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := engine.RegisterRenderer(stubRenderer{category: Category(99), typ: "x"}); err == nil {
		t.Fatalf("expected error for invalid category")
	}
	if _, err := engine.Render(context.Background(), Category(99), model.Definition{Type: "x"}, nil, model.RenderContext{}); err == nil {
		t.Fatalf("expected error for invalid render category")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		if err != nil || parsed != c {
			t.Fatalf("round trip %s: got (%v, %v)", c, parsed, err)
		}
	}
	if _, err := ParseCategory("widget"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}
