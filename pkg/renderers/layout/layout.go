package layout

import (
	"context"
	"errors"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
)

// Type identifiers covered by the structural renderer set.
const (
	TypeDetail  = "detail"
	TypeSection = "section"
	TypeLabeled = "labeled"
)

// Renderers returns view, group, and field renderers that recurse through
// the supplied engine: a view renders its member groups and fields, a
// group its fields, and a field delegates its value to the matching data
// renderer. The engine must therefore have data renderers registered
// before these run.
func Renderers(engine *render.Engine) ([]render.Renderer, error) {
	if engine == nil {
		return nil, errors.New("layout: engine is required")
	}
	return []render.Renderer{
		View{engine: engine},
		Group{engine: engine},
		Field{engine: engine},
	}, nil
}

// fieldValue pulls the field's value out of the view data by name. Non-map
// data leaves the value absent rather than failing.
func fieldValue(data any, name string) any {
	entries, ok := data.(map[string]any)
	if !ok || name == "" {
		return nil
	}
	return entries[name]
}

// memberCategory routes a view member to the group or field registry based
// on whether it declares nested fields of its own.
func memberCategory(member model.Definition) render.Category {
	if len(member.Fields) > 0 {
		return render.CategoryGroup
	}
	return render.CategoryField
}

// View renders a detail view: one child per member definition, in
// declaration order.
type View struct {
	engine *render.Engine
}

func (View) Category() render.Category { return render.CategoryView }
func (View) Type() string              { return TypeDetail }

func (v View) Render(ctx context.Context, def model.Definition, data any, rctx model.RenderContext) (*descriptor.Node, error) {
	children := make([]descriptor.Child, 0, len(def.Fields)+1)
	if def.Label != "" {
		children = append(children, descriptor.Nested(descriptor.New("header",
			descriptor.Props{"class": "vk-view-title"},
			descriptor.Text(def.Label),
		)))
	}
	for _, member := range def.Fields {
		node, err := v.engine.Render(ctx, memberCategory(member), member, data, rctx)
		if err != nil {
			return nil, err
		}
		children = append(children, descriptor.Nested(node))
	}
	node := descriptor.New("section",
		descriptor.Props{"class": "vk-view vk-view-detail"},
		children...,
	)
	if def.Name != "" {
		node.WithKey(def.Name)
	}
	return node, nil
}

// Group renders a titled section of fields.
type Group struct {
	engine *render.Engine
}

func (Group) Category() render.Category { return render.CategoryGroup }
func (Group) Type() string              { return TypeSection }

func (g Group) Render(ctx context.Context, def model.Definition, data any, rctx model.RenderContext) (*descriptor.Node, error) {
	children := make([]descriptor.Child, 0, len(def.Fields)+1)
	if def.Label != "" {
		children = append(children, descriptor.Nested(descriptor.New("header",
			descriptor.Props{"class": "vk-group-title"},
			descriptor.Text(def.Label),
		)))
	}
	for _, member := range def.Fields {
		node, err := g.engine.Render(ctx, render.CategoryField, member, data, rctx)
		if err != nil {
			return nil, err
		}
		children = append(children, descriptor.Nested(node))
	}
	node := descriptor.New("section",
		descriptor.Props{"class": "vk-group vk-group-section"},
		children...,
	)
	if def.Name != "" {
		node.WithKey(def.Name)
	}
	return node, nil
}

// Field renders a label plus the field's value, delegating the value to
// the data renderer named by DataType (default "string").
type Field struct {
	engine *render.Engine
}

func (Field) Category() render.Category { return render.CategoryField }
func (Field) Type() string              { return TypeLabeled }

func (f Field) Render(ctx context.Context, def model.Definition, data any, rctx model.RenderContext) (*descriptor.Node, error) {
	dataType := def.DataType
	if dataType == "" {
		dataType = "string"
	}

	valueNode, err := f.engine.RenderData(ctx, model.Definition{Type: dataType, Format: def.Format}, fieldValue(data, def.Name), rctx)
	if err != nil {
		return nil, err
	}

	labelText := def.Label
	if labelText == "" {
		labelText = def.Name
	}

	props := descriptor.Props{"class": "vk-field"}
	if def.Layout != "" {
		props["data-layout"] = def.Layout
	}

	node := descriptor.New("div", props,
		descriptor.Nested(descriptor.New("label",
			descriptor.Props{"class": "vk-field-label"},
			descriptor.Text(labelText),
		)),
		descriptor.Nested(valueNode),
	)
	if def.Name != "" {
		node.WithKey(def.Name)
	}
	return node, nil
}
