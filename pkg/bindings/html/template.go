package html

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// TemplateComponent compiles a pongo2 source into a component factory, so
// integrators can register template-driven components next to programmatic
// ones. The template receives "key", "props", and "children" (the children
// already rendered to markup strings, in order).
//
// Template output is trusted: it is emitted raw, like any hand-written
// factory. Untrusted prop values should pass through the sanitizer inside
// the template via the host's own filters.
func TemplateComponent(source string) (Factory, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("html: compile template component: %w", err)
	}

	return func(key string, props descriptor.Props, children []*Element) *Element {
		rendered := make([]string, len(children))
		for i, child := range children {
			rendered[i] = child.String()
		}
		out, err := tpl.Execute(pongo2.Context{
			"key":      key,
			"props":    map[string]any(props),
			"children": rendered,
			"content":  strings.Join(rendered, ""),
		})
		if err != nil {
			// Template failures degrade like a missing component instead of
			// aborting the surrounding tree.
			return &Element{
				Tag:  "span",
				Key:  key,
				Text: fmt.Sprintf("Template error: %v", err),
				Attrs: map[string]string{
					"class": "vk-fallback",
					"style": "color: var(--vk-danger, #b00020)",
				},
			}
		}
		return &Element{Key: key, Text: strings.TrimSpace(out), Raw: true, Props: props}
	}, nil
}
