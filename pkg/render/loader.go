package render

import (
	"context"
	"errors"

	"github.com/goliatone/go-viewkit/pkg/model"
)

// Loader resolves a definition's declared type to a renderer entry through
// its registry. It is purely a lookup: no caching beyond what the registry
// provides, and a definition resolves to exactly one renderer or fails.
type Loader struct {
	registry *Registry
}

// NewLoader wraps a category registry.
func NewLoader(registry *Registry) (*Loader, error) {
	if registry == nil {
		return nil, errors.New("render: loader registry is nil")
	}
	return &Loader{registry: registry}, nil
}

// Load resolves the renderer for def.Type. A miss returns *NotFoundError,
// which the render entry points propagate to their caller unmodified.
// Resolution may block inside a lazy factory; ctx bounds that work.
func (l *Loader) Load(ctx context.Context, def model.Definition) (Entry, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	entry, ok, err := l.registry.resolve(ctx, def.Type)
	if err != nil {
		return Entry{}, err
	}
	if !ok {
		return Entry{}, &NotFoundError{Category: l.registry.Category(), Type: def.Type}
	}
	return entry, nil
}
