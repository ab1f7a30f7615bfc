package renderer

import (
	"context"

	"github.com/honeybbq/serviceast/pkg/serviceast"
)

// Renderer turns a document tree into native output.
type Renderer[T any] interface {
	Render(ctx context.Context, doc T, opts serviceast.RenderOptions) (*serviceast.Bundle, error)
}

// Parser reads native output back into a document tree.
type Parser[T any] interface {
	Parse(ctx context.Context, bundle *serviceast.Bundle, opts serviceast.ParseOptions) (T, error)
}
