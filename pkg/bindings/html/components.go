package html

import (
	"github.com/goliatone/go-viewkit/pkg/convert"
	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// DefaultComponents returns a fresh component map covering the identifiers
// the built-in renderers emit, plus common structural tags. Each call
// builds a new map so engines never share registries implicitly.
func DefaultComponents() *convert.Map[*Element] {
	m := convert.NewMap[*Element]()
	for _, tag := range []string{
		"span", "div", "p", "section", "header", "footer",
		"label", "ul", "li", "a", "form", "input",
	} {
		m.MustRegister(tag, TagFactory(tag))
	}
	m.MustRegister("button", buttonFactory)
	m.MustRegister("icon", iconFactory)
	m.MustRegister("dropdown", dropdownFactory)
	m.MustRegister("menuitem", menuItemFactory)
	m.MustRegister("modal", modalFactory)
	return m
}

// buttonFactory renders button/submit controls, mapping the danger flag to
// a modifier class so action chrome is styleable without inline script.
func buttonFactory(key string, props descriptor.Props, children []*Element) *Element {
	e := newElement("button", key, props, children)
	if danger, ok := props["danger"].(bool); ok && danger {
		e.Attrs["class"] = appendClass(e.Attrs["class"], "vk-danger")
	}
	delete(e.Attrs, "label")
	if _, ok := e.Attrs["type"]; !ok {
		e.Attrs["type"] = "button"
	}
	return e
}

// iconFactory inlines sanitized icon markup when the icon prop carries
// markup, and falls back to a named glyph span otherwise.
func iconFactory(key string, props descriptor.Props, children []*Element) *Element {
	e := newElement("span", key, props, children)
	e.Attrs["class"] = appendClass(e.Attrs["class"], "vk-icon")
	icon, _ := props["icon"].(string)
	delete(e.Attrs, "icon")
	delete(e.Attrs, "label")
	if icon == "" {
		return e
	}
	if markup := SanitizeMarkup(icon); markup != "" {
		e.Children = append([]*Element{{Text: markup, Raw: true}}, e.Children...)
		return e
	}
	e.Attrs["data-icon"] = icon
	return e
}

func dropdownFactory(key string, props descriptor.Props, children []*Element) *Element {
	trigger := &Element{
		Tag:   "button",
		Attrs: map[string]string{"type": "button", "class": "vk-dropdown-trigger"},
		Text:  stringProp(props, "label"),
	}
	menu := &Element{
		Tag:      "ul",
		Attrs:    map[string]string{"class": "vk-dropdown-menu", "role": "menu"},
		Children: children,
	}
	e := newElement("div", key, props, []*Element{trigger, menu})
	e.Attrs["class"] = appendClass(e.Attrs["class"], "vk-dropdown")
	delete(e.Attrs, "label")
	return e
}

func menuItemFactory(key string, props descriptor.Props, children []*Element) *Element {
	e := newElement("li", key, props, children)
	e.Attrs["role"] = "menuitem"
	delete(e.Attrs, "label")
	return e
}

func modalFactory(key string, props descriptor.Props, children []*Element) *Element {
	e := newElement("dialog", key, props, children)
	e.Attrs["class"] = appendClass(e.Attrs["class"], "vk-modal")
	delete(e.Attrs, "label")
	return e
}

func stringProp(props descriptor.Props, name string) string {
	s, _ := props[name].(string)
	return s
}

func appendClass(existing, class string) string {
	if existing == "" {
		return class
	}
	return existing + " " + class
}
