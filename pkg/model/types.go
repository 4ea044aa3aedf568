package model

// Definition is the declarative, schema-shaped input the engine resolves
// and renders. Definitions are owned by the application or config layer and
// are immutable once handed to the engine; the pipeline never mutates one.
//
// Only Type is required. The remaining fields are category specific (Fields
// for views and groups, Layout/DataType for fields, URL/Handler for
// actions) and renderers consume whichever subset applies. Anything the
// schema layer emits beyond these is preserved verbatim in Extra.
type Definition struct {
	// Type selects the renderer within the definition's category.
	Type string

	Name        string
	Label       string
	Description string

	// Fields lists member definitions for views and groups, and dropdown
	// entries reuse the same shape via Items.
	Fields []Definition

	Layout   string
	DataType string
	Format   string

	URL    string
	Target string

	// Handler carries the invocation callback for actions. The engine and
	// built-in renderers forward it verbatim; it is never invoked by the
	// pipeline itself.
	Handler any

	Icon     string
	Style    string
	Disabled bool
	Danger   bool

	// Items holds dropdown/menu entries for action definitions.
	Items []Definition

	// Extra preserves schema fields the pipeline does not model. The engine
	// treats them as opaque passthrough.
	Extra map[string]any
}

// RenderContext carries caller-supplied environment through every render
// call. The engine forwards it unmodified and never inspects it beyond
// presence; renderers and bindings read whichever fields they understand.
type RenderContext struct {
	Theme   string
	Variant string
	Mode    string
	Locale  string
	Extra   map[string]any
}
