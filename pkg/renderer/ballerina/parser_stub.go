package ballerina

import (
	"context"
	"fmt"

	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// NotImplementedParser stands in until source parsing is available.
type NotImplementedParser struct{}

func NewNotImplementedParser() *NotImplementedParser {
	return &NotImplementedParser{}
}

func (p *NotImplementedParser) Parse(ctx context.Context, bundle *serviceast.Bundle, opts serviceast.ParseOptions) (*ast.File, error) {
	return nil, svcerrors.New(svcerrors.KindParse, fmt.Errorf("ballerina parser (%s): %w", opts.Origin(firstSource(bundle)), svcerrors.ErrNotImplemented))
}

func firstSource(bundle *serviceast.Bundle) string {
	if bundle == nil || len(bundle.Sources) == 0 {
		return "empty bundle"
	}
	return bundle.Sources[0].Name
}
