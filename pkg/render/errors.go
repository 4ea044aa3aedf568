package render

import (
	"errors"
	"fmt"
)

// ErrRendererNotFound marks resolution misses. Callers can test for the
// condition with errors.Is regardless of which category produced it.
var ErrRendererNotFound = errors.New("render: renderer not found")

// NotFoundError reports the exact (category, type) pair that failed to
// resolve. It unwraps to ErrRendererNotFound.
type NotFoundError struct {
	Category Category
	Type     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("render: no %s renderer registered for type %q", e.Category, e.Type)
}

func (e *NotFoundError) Unwrap() error {
	return ErrRendererNotFound
}
