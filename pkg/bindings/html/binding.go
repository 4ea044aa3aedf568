package html

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-viewkit/pkg/convert"
	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// Binding materializes descriptor trees as HTML elements. It satisfies
// convert.Binding[*Element] and carries the theme tokens used to style the
// fail-soft fallback chrome.
type Binding struct {
	tokens map[string]string
}

// Option customises the binding.
type Option func(*Binding) error

// WithTokens seeds raw design tokens, exposed as CSS custom properties on
// fallback chrome. Later options override earlier values per token.
func WithTokens(tokens map[string]string) Option {
	return func(b *Binding) error {
		for name, value := range tokens {
			b.tokens[name] = value
		}
		return nil
	}
}

// WithThemeSelector resolves the named theme/variant through a go-theme
// selector and adopts the manifest tokens. Variant tokens are merged by the
// selector before they reach the binding.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(b *Binding) error {
		if selector == nil {
			return fmt.Errorf("html: theme selector is nil")
		}
		selection, err := selector.Select(name, variant)
		if err != nil {
			return fmt.Errorf("html: select theme %q: %w", name, err)
		}
		if selection == nil || selection.Manifest == nil {
			return nil
		}
		for token, value := range selection.Manifest.Tokens {
			b.tokens[token] = value
		}
		return nil
	}
}

// New constructs an HTML binding.
func New(options ...Option) (*Binding, error) {
	b := &Binding{tokens: make(map[string]string)}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Text wraps a literal text leaf; escaping happens at write time.
func (b *Binding) Text(s string) *Element {
	return &Element{Text: s}
}

// Empty renders to nothing.
func (b *Binding) Empty() *Element {
	return &Element{}
}

// Fallback produces the visible error-styled placeholder for an unresolved
// component. The unresolved identifier appears in the text so missing
// registrations are diagnosable without a debugger.
func (b *Binding) Fallback(component, key string) *Element {
	attrs := map[string]string{
		"class":          "vk-fallback",
		"data-component": component,
		"style":          b.fallbackStyle(),
	}
	if key != "" {
		attrs["data-key"] = key
	}
	return &Element{
		Tag:   "span",
		Key:   key,
		Text:  fmt.Sprintf("Unknown component: %s", component),
		Attrs: attrs,
	}
}

// fallbackStyle derives the error chrome, folding theme tokens into CSS
// custom properties so themed hosts can restyle it.
func (b *Binding) fallbackStyle() string {
	parts := []string{
		"color: var(--vk-danger, #b00020)",
		"border: 1px dashed var(--vk-danger, #b00020)",
		"padding: 2px 4px",
	}
	if len(b.tokens) > 0 {
		names := make([]string, 0, len(b.tokens))
		for name := range b.tokens {
			names = append(names, name)
		}
		sort.Strings(names)
		vars := make([]string, 0, len(names))
		for _, name := range names {
			vars = append(vars, fmt.Sprintf("--vk-%s: %s", name, b.tokens[name]))
		}
		parts = append(vars, parts...)
	}
	return strings.Join(parts, "; ")
}

// NewConverter wires the binding to a component map with this binding's
// defaults applied, the usual one-call setup for HTML output.
func NewConverter(components *convert.Map[*Element], binding *Binding, options ...convert.Option[*Element]) (*convert.Converter[*Element], error) {
	if components == nil {
		components = DefaultComponents()
	}
	if binding == nil {
		var err error
		binding, err = New()
		if err != nil {
			return nil, err
		}
	}
	return convert.New[*Element](components, binding, options...)
}

var _ convert.Binding[*Element] = (*Binding)(nil)

// Factory is the component factory shape for this binding.
type Factory = convert.Factory[*Element]

// TagFactory builds a factory that renders a fixed HTML tag with the
// descriptor props as attributes.
func TagFactory(tag string) Factory {
	return func(key string, props descriptor.Props, children []*Element) *Element {
		return newElement(tag, key, props, children)
	}
}
