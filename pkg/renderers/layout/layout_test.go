package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
	"github.com/goliatone/go-viewkit/pkg/renderers/data"
)

func newEngine(t *testing.T) *render.Engine {
	t.Helper()
	engine := render.NewEngine()
	if err := engine.RegisterRenderers(data.Renderers()...); err != nil {
		t.Fatalf("register data renderers: %v", err)
	}
	structural, err := Renderers(engine)
	if err != nil {
		t.Fatalf("structural renderers: %v", err)
	}
	if err := engine.RegisterRenderers(structural...); err != nil {
		t.Fatalf("register structural renderers: %v", err)
	}
	return engine
}

func TestField_DelegatesToDataRenderer(t *testing.T) {
	engine := newEngine(t)

	node, err := engine.RenderField(context.Background(),
		model.Definition{Type: TypeLabeled, Name: "age", Label: "Age", DataType: "number"},
		map[string]any{"age": 1234},
		model.RenderContext{Locale: "en"},
	)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}

	if node.Key != "age" {
		t.Fatalf("field key should come from the definition name, got %q", node.Key)
	}
	labelNode := node.Children[0].Node
	if labelNode.Component != "label" || labelNode.Children[0].Text != "Age" {
		t.Fatalf("unexpected label node: %+v", labelNode)
	}
	valueNode := node.Children[1].Node
	if valueNode.Children[0].Text != "1,234" {
		t.Fatalf("expected data renderer output, got %+v", valueNode)
	}
}

func TestField_DefaultsToStringData(t *testing.T) {
	engine := newEngine(t)
	node, err := engine.RenderField(context.Background(),
		model.Definition{Type: TypeLabeled, Name: "title"},
		map[string]any{"title": "hello"},
		model.RenderContext{},
	)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if node.Children[1].Node.Children[0].Text != "hello" {
		t.Fatalf("expected string data fallback, got %+v", node.Children[1].Node)
	}
}

func TestView_RendersMembersInOrder(t *testing.T) {
	engine := newEngine(t)

	def := model.Definition{
		Type:  TypeDetail,
		Name:  "user",
		Label: "User",
		Fields: []model.Definition{
			{Type: TypeLabeled, Name: "name", DataType: "string"},
			{
				Type: TypeSection, Name: "meta", Label: "Meta",
				Fields: []model.Definition{
					{Type: TypeLabeled, Name: "active", DataType: "boolean"},
				},
			},
		},
	}
	dataMap := map[string]any{"name": "Ada", "active": true}

	node, err := engine.RenderView(context.Background(), def, dataMap, model.RenderContext{})
	if err != nil {
		t.Fatalf("render view: %v", err)
	}

	if node.Component != "section" || node.Key != "user" {
		t.Fatalf("unexpected view node: %+v", node)
	}
	// Header, then members in declaration order.
	if node.Children[0].Node.Children[0].Text != "User" {
		t.Fatalf("expected view title first")
	}
	if node.Children[1].Node.Key != "name" {
		t.Fatalf("expected field member second, got %+v", node.Children[1].Node)
	}
	group := node.Children[2].Node
	if group.Key != "meta" {
		t.Fatalf("expected group member third, got %+v", group)
	}
	boolNode := group.Children[1].Node.Children[1].Node
	if boolNode.Children[0].Text != "True" {
		t.Fatalf("expected nested boolean value, got %+v", boolNode)
	}
}

func TestView_PropagatesMemberResolutionFailure(t *testing.T) {
	engine := newEngine(t)
	def := model.Definition{
		Type:   TypeDetail,
		Fields: []model.Definition{{Type: "unregistered-kind", Name: "x"}},
	}
	_, err := engine.RenderView(context.Background(), def, nil, model.RenderContext{})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("member misses must fail hard, got %v", err)
	}
}

func TestRenderers_RequireEngine(t *testing.T) {
	if _, err := Renderers(nil); err == nil {
		t.Fatalf("expected error for nil engine")
	}
}
