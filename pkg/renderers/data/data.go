package data

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
	"github.com/goliatone/go-viewkit/pkg/render"
)

// Type identifiers covered by the built-in data renderer set.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeDate    = "date"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Renderers returns one renderer per primitive data type. Nothing is
// pre-registered anywhere; callers wire these into an engine explicitly.
func Renderers() []render.Renderer {
	return []render.Renderer{
		String{},
		Number{},
		Date{},
		Boolean{},
		Array{},
		Object{},
	}
}

// String renders any value as its stringified form. Absent values render
// as empty text, never as a "nil" literal.
type String struct{}

func (String) Category() render.Category { return render.CategoryData }
func (String) Type() string              { return TypeString }

func (String) Render(_ context.Context, _ model.Definition, value any, _ model.RenderContext) (*descriptor.Node, error) {
	return descriptor.New("span",
		descriptor.Props{"class": "vk-data vk-data-string"},
		descriptor.Text(stringify(value)),
	), nil
}

// Number renders numeric values with locale-aware grouping. Values that do
// not coerce to a finite number render as the literal "0" rather than an
// error.
type Number struct{}

func (Number) Category() render.Category { return render.CategoryData }
func (Number) Type() string              { return TypeNumber }

func (Number) Render(_ context.Context, _ model.Definition, value any, rctx model.RenderContext) (*descriptor.Node, error) {
	display := "0"
	if f, ok := toFloat(value); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		printer := message.NewPrinter(localeTag(rctx.Locale))
		display = printer.Sprint(number.Decimal(f))
	}
	return descriptor.New("span",
		descriptor.Props{"class": "vk-data vk-data-number"},
		descriptor.Text(display),
	), nil
}

// Date renders timestamps as a locale-formatted date, exposing the full
// ISO timestamp as a hover title. Values that do not coerce to a date
// render the literal "Invalid Date" rather than failing.
type Date struct{}

func (Date) Category() render.Category { return render.CategoryData }
func (Date) Type() string              { return TypeDate }

func (Date) Render(_ context.Context, _ model.Definition, value any, _ model.RenderContext) (*descriptor.Node, error) {
	t, ok := toTime(value)
	if !ok {
		return descriptor.New("span",
			descriptor.Props{"class": "vk-data vk-data-date vk-data-date-invalid"},
			descriptor.Text("Invalid Date"),
		), nil
	}
	return descriptor.New("span",
		descriptor.Props{
			"class": "vk-data vk-data-date",
			"title": t.UTC().Format(time.RFC3339),
		},
		descriptor.Text(t.Format("Jan 2, 2006")),
	), nil
}

// Boolean renders exactly one of two literal tokens plus a structural
// class marker reflecting the value.
type Boolean struct{}

func (Boolean) Category() render.Category { return render.CategoryData }
func (Boolean) Type() string              { return TypeBoolean }

func (Boolean) Render(_ context.Context, _ model.Definition, value any, _ model.RenderContext) (*descriptor.Node, error) {
	truth := toBool(value)
	text, marker := "False", "vk-bool-false"
	if truth {
		text, marker = "True", "vk-bool-true"
	}
	return descriptor.New("span",
		descriptor.Props{
			"class":      "vk-data vk-data-boolean " + marker,
			"data-value": strconv.FormatBool(truth),
		},
		descriptor.Text(text),
	), nil
}

// Array renders each element as its own child node, JSON-stringified when
// not already text. Non-array input degrades to an empty sequence.
type Array struct{}

func (Array) Category() render.Category { return render.CategoryData }
func (Array) Type() string              { return TypeArray }

func (Array) Render(_ context.Context, _ model.Definition, value any, _ model.RenderContext) (*descriptor.Node, error) {
	elements := toSlice(value)
	children := make([]descriptor.Child, len(elements))
	for i, element := range elements {
		children[i] = descriptor.Nested(descriptor.New("span",
			descriptor.Props{"class": "vk-data-array-item"},
			descriptor.Text(jsonify(element)),
		))
	}
	return descriptor.New("div",
		descriptor.Props{"class": "vk-data vk-data-array"},
		children...,
	), nil
}

// Object renders one child per key as "key: value" lines, keys sorted for
// deterministic output. Absent or non-object input renders the canonical
// empty-object marker.
type Object struct{}

func (Object) Category() render.Category { return render.CategoryData }
func (Object) Type() string              { return TypeObject }

func (Object) Render(_ context.Context, _ model.Definition, value any, _ model.RenderContext) (*descriptor.Node, error) {
	entries, ok := toMap(value)
	if !ok || len(entries) == 0 {
		return descriptor.New("span",
			descriptor.Props{"class": "vk-data vk-data-object vk-data-object-empty"},
			descriptor.Text("{}"),
		), nil
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	children := make([]descriptor.Child, len(keys))
	for i, key := range keys {
		children[i] = descriptor.Nested(descriptor.New("span",
			descriptor.Props{"class": "vk-data-object-entry"},
			descriptor.Text(key+": "+jsonify(entries[key])),
		))
	}
	return descriptor.New("div",
		descriptor.Props{"class": "vk-data vk-data-object"},
		children...,
	), nil
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func jsonify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(raw)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123,
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case int64:
		return time.Unix(v, 0), true
	case int:
		return time.Unix(int64(v), 0), true
	case float64:
		return time.Unix(int64(v), 0), true
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func toBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
		return v != ""
	default:
		if f, ok := toFloat(value); ok {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}

func toSlice(value any) []any {
	if value == nil {
		return nil
	}
	if elements, ok := value.([]any); ok {
		return elements
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func toMap(value any) (map[string]any, bool) {
	if value == nil {
		return nil, false
	}
	if entries, ok := value.(map[string]any); ok {
		return entries, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}
