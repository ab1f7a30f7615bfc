package serviceast

import (
	"context"

	"google.golang.org/protobuf/proto"
)

// Backend converts between service documents and a native output format.
// Documents are carried as proto messages; the built-in backends expect a
// *structpb.Struct in the layout decoded by domain/service.
type Backend interface {
	// Name returns the backend identifier (e.g., "ballerina", "outline").
	Name() string

	// ToNative renders a document to the backend's format.
	ToNative(ctx context.Context, doc proto.Message, opts RenderOptions) (*Bundle, error)

	// ToDocument parses native output back into a document.
	ToDocument(ctx context.Context, bundle *Bundle, opts ParseOptions) (proto.Message, error)
}
