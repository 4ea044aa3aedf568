package action

import (
	"context"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
)

// Type identifiers covered by the built-in action renderer set.
const (
	TypeButton   = "button"
	TypeLink     = "link"
	TypeIcon     = "icon"
	TypeDropdown = "dropdown"
	TypeSubmit   = "submit"
	TypeModal    = "modal"
)

// Renderers returns one renderer per primitive action type.
func Renderers() []render.Renderer {
	return []render.Renderer{
		Button{},
		Link{},
		Icon{},
		Dropdown{},
		Submit{},
		Modal{},
	}
}

// label prefers the display label, then the name, then the type, so every
// control has visible text even from a minimal definition.
func label(def model.Definition) string {
	if def.Label != "" {
		return def.Label
	}
	if def.Name != "" {
		return def.Name
	}
	return def.Type
}

// controlProps carries the invocation handler, display label, and
// style/disabled/danger flags verbatim from the definition.
func controlProps(def model.Definition, class string) descriptor.Props {
	props := descriptor.Props{
		"class":    class,
		"label":    label(def),
		"disabled": def.Disabled,
		"danger":   def.Danger,
	}
	if def.Handler != nil {
		props["onClick"] = def.Handler
	}
	if def.Style != "" {
		props["style"] = def.Style
	}
	return props
}

// Button renders a plain clickable control.
type Button struct{}

func (Button) Category() render.Category { return render.CategoryAction }
func (Button) Type() string              { return TypeButton }

func (Button) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	return descriptor.New("button",
		controlProps(def, "vk-action vk-action-button"),
		descriptor.Text(label(def)),
	), nil
}

// Link renders a navigation anchor.
type Link struct{}

func (Link) Category() render.Category { return render.CategoryAction }
func (Link) Type() string              { return TypeLink }

func (Link) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	props := controlProps(def, "vk-action vk-action-link")
	props["href"] = def.URL
	if def.Target != "" {
		props["target"] = def.Target
	}
	return descriptor.New("a", props, descriptor.Text(label(def))), nil
}

// Icon renders an icon-only control. The icon markup or glyph name passes
// through for the binding to sanitize and materialize.
type Icon struct{}

func (Icon) Category() render.Category { return render.CategoryAction }
func (Icon) Type() string              { return TypeIcon }

func (Icon) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	props := controlProps(def, "vk-action vk-action-icon")
	props["icon"] = def.Icon
	props["aria-label"] = label(def)
	return descriptor.New("icon", props), nil
}

// Dropdown renders a trigger plus one menu item per definition entry.
type Dropdown struct{}

func (Dropdown) Category() render.Category { return render.CategoryAction }
func (Dropdown) Type() string              { return TypeDropdown }

func (Dropdown) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	children := make([]descriptor.Child, len(def.Items))
	for i, item := range def.Items {
		children[i] = descriptor.Nested(descriptor.New("menuitem",
			controlProps(item, "vk-action vk-action-menuitem"),
			descriptor.Text(label(item)),
		))
	}
	return descriptor.New("dropdown",
		controlProps(def, "vk-action vk-action-dropdown"),
		children...,
	), nil
}

// Submit renders a form submission control.
type Submit struct{}

func (Submit) Category() render.Category { return render.CategoryAction }
func (Submit) Type() string              { return TypeSubmit }

func (Submit) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	props := controlProps(def, "vk-action vk-action-submit")
	props["type"] = "submit"
	return descriptor.New("button", props, descriptor.Text(label(def))), nil
}

// Modal renders a modal trigger carrying the confirmation handler and
// title for the binding's dialog implementation.
type Modal struct{}

func (Modal) Category() render.Category { return render.CategoryAction }
func (Modal) Type() string              { return TypeModal }

func (Modal) Render(_ context.Context, def model.Definition, _ any, _ model.RenderContext) (*descriptor.Node, error) {
	props := controlProps(def, "vk-action vk-action-modal")
	props["title"] = label(def)
	if def.Description != "" {
		props["message"] = def.Description
	}
	return descriptor.New("modal", props, descriptor.Text(label(def))), nil
}
