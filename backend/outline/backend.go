package outline

import (
	"context"
	"errors"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/honeybbq/serviceast/domain/service"
	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/renderer"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// Backend renders service documents as YAML outlines.
type Backend struct {
	renderer renderer.Renderer[*ast.File]
	parser   renderer.Parser[*ast.File]
}

func New(r renderer.Renderer[*ast.File], p renderer.Parser[*ast.File]) *Backend {
	return &Backend{
		renderer: r,
		parser:   p,
	}
}

func (b *Backend) Name() string {
	return "outline"
}

// ToNative implements the forward conversion.
func (b *Backend) ToNative(ctx context.Context, doc proto.Message, opts serviceast.RenderOptions) (*serviceast.Bundle, error) {
	msg, ok := doc.(*structpb.Struct)
	if !ok {
		return nil, svcerrors.New(svcerrors.KindValidation, errors.New("expected a structpb.Struct document"))
	}
	cfg, err := domain.FromProto(msg)
	if err != nil {
		return nil, err
	}
	file, err := cfg.ToAST()
	if err != nil {
		return nil, err
	}
	return b.renderer.Render(ctx, file, opts)
}

// ToDocument implements the reverse conversion.
func (b *Backend) ToDocument(ctx context.Context, bundle *serviceast.Bundle, opts serviceast.ParseOptions) (proto.Message, error) {
	file, err := b.parser.Parse(ctx, bundle, opts)
	if err != nil {
		return nil, err
	}
	cfg, err := domain.FromAST(file)
	if err != nil {
		return nil, err
	}
	return cfg.ToProto()
}
