package html

import (
	"fmt"
	"html"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
)

// Element is the concrete UI element this binding produces: a minimal HTML
// node tree with deterministic serialization. A zero Element renders to
// nothing, which is how the converter's empty placeholder materializes.
type Element struct {
	// Tag is the HTML tag. Empty tag with Text set is a text node; empty
	// tag without Text renders nothing.
	Tag string

	Key string

	// Text holds text-node content, escaped at write time unless Raw.
	Text string

	// Raw marks Text as pre-sanitized markup written verbatim. Only the
	// sanitizer and the template component path set it.
	Raw bool

	// Attrs are the serializable attributes, written in sorted order.
	Attrs map[string]string

	// Props retains the original descriptor props, including handler
	// values that cannot become attributes, for host-side inspection.
	Props descriptor.Props

	Children []*Element
}

// voidTags per the HTML spec: no closing tag, no children.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// newElement assembles an element from converter output: props become
// attributes where representable, the resolved key lands in data-key, and
// children attach in original order.
func newElement(tag, key string, props descriptor.Props, children []*Element) *Element {
	e := &Element{
		Tag:      tag,
		Key:      key,
		Props:    props,
		Children: children,
	}
	e.Attrs = attrsFromProps(props)
	if key != "" {
		e.Attrs["data-key"] = key
	}
	return e
}

// attrsFromProps keeps scalar props as attributes. Boolean true becomes a
// bare attribute, false is omitted; function and structured values are
// skipped (they stay reachable through Props).
func attrsFromProps(props descriptor.Props) map[string]string {
	attrs := make(map[string]string, len(props)+1)
	for name, value := range props {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			attrs[name] = v
		case bool:
			if v {
				attrs[name] = ""
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			attrs[name] = fmt.Sprintf("%d", v)
		case float64:
			attrs[name] = strconv.FormatFloat(v, 'f', -1, 64)
		case float32:
			attrs[name] = strconv.FormatFloat(float64(v), 'f', -1, 32)
		default:
			if reflect.ValueOf(value).Kind() == reflect.Func {
				continue
			}
		}
	}
	return attrs
}

// Text returns the element's aggregate text content, depth-first.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.collectText(&b)
	return b.String()
}

func (e *Element) collectText(b *strings.Builder) {
	if e.Text != "" {
		b.WriteString(e.Text)
	}
	for _, child := range e.Children {
		child.collectText(b)
	}
}

// WriteHTML serializes the element. Attributes write in sorted order so
// repeated conversions of an unchanged tree produce identical markup.
func (e *Element) WriteHTML(w io.Writer) error {
	if e == nil {
		return nil
	}
	if e.Tag == "" {
		if e.Text == "" {
			return nil
		}
		text := e.Text
		if !e.Raw {
			text = html.EscapeString(text)
		}
		_, err := io.WriteString(w, text)
		return err
	}

	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := e.Attrs[name]
		if value == "" {
			if _, err := io.WriteString(w, " "+name); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, ` `+name+`="`+html.EscapeString(value)+`"`); err != nil {
			return err
		}
	}
	if voidTags[e.Tag] {
		_, err := io.WriteString(w, "/>")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if e.Text != "" {
		text := e.Text
		if !e.Raw {
			text = html.EscapeString(text)
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	for _, child := range e.Children {
		if err := child.WriteHTML(w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// String renders the element to markup.
func (e *Element) String() string {
	var b strings.Builder
	_ = e.WriteHTML(&b)
	return b.String()
}
