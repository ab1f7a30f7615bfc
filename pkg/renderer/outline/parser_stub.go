package outline

import (
	"context"
	"fmt"

	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// NotImplementedParser is used while outlines are write-only.
type NotImplementedParser struct{}

func NewNotImplementedParser() *NotImplementedParser {
	return &NotImplementedParser{}
}

func (p *NotImplementedParser) Parse(ctx context.Context, bundle *serviceast.Bundle, opts serviceast.ParseOptions) (*ast.File, error) {
	return nil, svcerrors.New(svcerrors.KindUnsupported, fmt.Errorf("outline parser (%s): %w", opts.Origin("stdin"), svcerrors.ErrNotImplemented))
}
