package schema

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// knownKeys are the definition fields lifted out of a document; everything
// else is preserved verbatim in Definition.Extra so schema extensions pass
// through the pipeline opaquely.
var knownKeys = map[string]struct{}{
	"type": {}, "name": {}, "label": {}, "description": {},
	"fields": {}, "items": {}, "layout": {}, "dataType": {},
	"format": {}, "url": {}, "target": {}, "icon": {}, "style": {},
	"disabled": {}, "danger": {},
}

// DecodeDefinition parses a single YAML (or JSON, which YAML subsumes)
// definition document.
func DecodeDefinition(raw []byte) (model.Definition, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return model.Definition{}, fmt.Errorf("schema: decode definition: %w", err)
	}
	return liftDefinition(doc)
}

// DecodeDefinitions parses a document holding a top-level "definitions"
// sequence.
func DecodeDefinitions(raw []byte) ([]model.Definition, error) {
	var doc struct {
		Definitions []map[string]any `yaml:"definitions"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("schema: decode definitions: %w", err)
	}
	out := make([]model.Definition, 0, len(doc.Definitions))
	for i, entry := range doc.Definitions {
		def, err := liftDefinition(entry)
		if err != nil {
			return nil, fmt.Errorf("schema: definition %d: %w", i, err)
		}
		out = append(out, def)
	}
	return out, nil
}

// LoadFile reads and decodes one definition document from disk.
func LoadFile(path string) (model.Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Definition{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return DecodeDefinition(raw)
}

// LoadFS reads and decodes one definition document from an fs.FS.
func LoadFS(fsys fs.FS, path string) (model.Definition, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.Definition{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return DecodeDefinition(raw)
}

func liftDefinition(doc map[string]any) (model.Definition, error) {
	if doc == nil {
		return model.Definition{}, fmt.Errorf("schema: empty definition document")
	}

	def := model.Definition{
		Type:        stringValue(doc["type"]),
		Name:        stringValue(doc["name"]),
		Label:       stringValue(doc["label"]),
		Description: stringValue(doc["description"]),
		Layout:      stringValue(doc["layout"]),
		DataType:    stringValue(doc["dataType"]),
		Format:      stringValue(doc["format"]),
		URL:         stringValue(doc["url"]),
		Target:      stringValue(doc["target"]),
		Icon:        stringValue(doc["icon"]),
		Style:       stringValue(doc["style"]),
		Disabled:    boolValue(doc["disabled"]),
		Danger:      boolValue(doc["danger"]),
	}
	if def.Type == "" {
		return model.Definition{}, fmt.Errorf("schema: definition type is required")
	}

	var err error
	if def.Fields, err = liftChildren(doc["fields"]); err != nil {
		return model.Definition{}, fmt.Errorf("schema: fields: %w", err)
	}
	if def.Items, err = liftChildren(doc["items"]); err != nil {
		return model.Definition{}, fmt.Errorf("schema: items: %w", err)
	}

	for key, value := range doc {
		if _, known := knownKeys[key]; known {
			continue
		}
		if def.Extra == nil {
			def.Extra = make(map[string]any)
		}
		def.Extra[key] = value
	}
	return def, nil
}

func liftChildren(value any) ([]model.Definition, error) {
	if value == nil {
		return nil, nil
	}
	entries, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a sequence, got %T", value)
	}
	out := make([]model.Definition, 0, len(entries))
	for i, entry := range entries {
		doc, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entry %d: expected a mapping, got %T", i, entry)
		}
		child, err := liftDefinition(doc)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, child)
	}
	return out, nil
}

func stringValue(value any) string {
	s, _ := value.(string)
	return s
}

func boolValue(value any) bool {
	b, _ := value.(bool)
	return b
}
