package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-viewkit/pkg/convert"
	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// Styles groups the lipgloss styles the terminal binding applies. Output
// only; this binding never prompts.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Button   lipgloss.Style
	Danger   lipgloss.Style
	Link     lipgloss.Style
	Fallback lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Faint(true),
		Value:    lipgloss.NewStyle(),
		Button:   lipgloss.NewStyle().Bold(true),
		Danger:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("4")),
		Fallback: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

// Binding materializes descriptor trees as styled terminal text. The
// element type is a plain string, which keeps batch output trivially
// composable with other terminal UI code.
type Binding struct {
	styles Styles
}

// Option customises the binding.
type Option func(*Binding)

// WithStyles overrides the stock palette.
func WithStyles(styles Styles) Option {
	return func(b *Binding) {
		b.styles = styles
	}
}

// New constructs a terminal binding.
func New(options ...Option) *Binding {
	b := &Binding{styles: DefaultStyles()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Text passes literal leaves through unstyled.
func (b *Binding) Text(s string) string { return s }

// Empty renders nothing.
func (b *Binding) Empty() string { return "" }

// Fallback renders a visibly bordered error block naming the unresolved
// component identifier.
func (b *Binding) Fallback(component, _ string) string {
	return b.styles.Fallback.Render(fmt.Sprintf("unknown component: %s", component))
}

var _ convert.Binding[string] = (*Binding)(nil)

// Components returns the component map for this binding, covering the
// identifiers the built-in renderers emit.
func (b *Binding) Components() *convert.Map[string] {
	m := convert.NewMap[string]()
	s := b.styles

	inline := func(style lipgloss.Style) convert.Factory[string] {
		return func(_ string, _ descriptor.Props, children []string) string {
			return style.Render(strings.Join(children, ""))
		}
	}
	block := func(_ string, _ descriptor.Props, children []string) string {
		return joinBlocks(children)
	}

	m.MustRegister("span", inline(s.Value))
	m.MustRegister("label", inline(s.Label))
	m.MustRegister("header", inline(s.Title))
	m.MustRegister("p", inline(s.Value))
	m.MustRegister("div", block)
	m.MustRegister("section", block)
	m.MustRegister("ul", block)
	m.MustRegister("li", func(_ string, _ descriptor.Props, children []string) string {
		return "- " + strings.Join(children, "")
	})
	m.MustRegister("a", func(_ string, props descriptor.Props, children []string) string {
		text := s.Link.Render(strings.Join(children, ""))
		if href, ok := props["href"].(string); ok && href != "" {
			return text + " (" + href + ")"
		}
		return text
	})
	m.MustRegister("button", func(_ string, props descriptor.Props, children []string) string {
		style := s.Button
		if danger, ok := props["danger"].(bool); ok && danger {
			style = s.Danger
		}
		return style.Render("[ " + strings.Join(children, "") + " ]")
	})
	m.MustRegister("icon", func(_ string, props descriptor.Props, _ []string) string {
		if name, ok := props["icon"].(string); ok && name != "" && !strings.HasPrefix(name, "<") {
			return s.Value.Render("<" + name + ">")
		}
		return ""
	})
	m.MustRegister("dropdown", func(_ string, props descriptor.Props, children []string) string {
		label, _ := props["label"].(string)
		return joinBlocks(append([]string{s.Button.Render(label + " ▾")}, children...))
	})
	m.MustRegister("menuitem", func(_ string, _ descriptor.Props, children []string) string {
		return "  " + strings.Join(children, "")
	})
	m.MustRegister("modal", func(_ string, props descriptor.Props, children []string) string {
		title, _ := props["title"].(string)
		return s.Fallback.BorderForeground(lipgloss.Color("7")).Render(joinBlocks(append([]string{s.Title.Render(title)}, children...)))
	})
	return m
}

// NewConverter wires a converter for terminal output with this binding's
// component set.
func (b *Binding) NewConverter(options ...convert.Option[string]) (*convert.Converter[string], error) {
	return convert.New[string](b.Components(), b, options...)
}

func joinBlocks(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, part)
	}
	return strings.Join(out, "\n")
}
