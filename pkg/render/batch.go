package render

import (
	"context"
	"errors"
	"sync"

	"github.com/goliatone/go-viewkit/pkg/descriptor"
	"github.com/goliatone/go-viewkit/pkg/model"
)

// BatchItem pairs a definition with its category and runtime value for
// batch rendering.
type BatchItem struct {
	Category   Category
	Definition model.Definition
	Value      any
}

// RenderMany renders every item concurrently and returns a same-length,
// order-preserving slice: output index i always corresponds to input index
// i, regardless of completion order. Individual renders may block inside
// lazy loaders or async renderer bodies; results are restored by index, not
// by completion time.
//
// On failure the joined errors of all failed items are returned alongside
// the partial results; failed slots are nil.
func (e *Engine) RenderMany(ctx context.Context, items []BatchItem, rctx model.RenderContext) ([]*descriptor.Node, error) {
	if len(items) == 0 {
		return nil, nil
	}

	nodes := make([]*descriptor.Node, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item BatchItem) {
			defer wg.Done()
			nodes[i], errs[i] = e.Render(ctx, item.Category, item.Definition, item.Value, rctx)
		}(i, item)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nodes, err
	}
	return nodes, nil
}
