package integration

import (
	"context"
	"testing"

	"gopkg.in/yaml.v3"

	outlinebackend "github.com/honeybbq/serviceast/backend/outline"
	"github.com/honeybbq/serviceast/pkg/renderer/outline"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

type outlineNode struct {
	Kind        string            `yaml:"kind"`
	Name        string            `yaml:"name"`
	Package     string            `yaml:"package"`
	Path        string            `yaml:"path"`
	Annotations map[string]string `yaml:"annotations"`
	Children    []outlineNode     `yaml:"children"`
}

func TestOutlineRenderBasic(t *testing.T) {
	t.Parallel()

	backend := outlinebackend.New(outline.NewYAMLRenderer(), outline.NewNotImplementedParser())
	msg := decodeDocument(t, readTestdata(t, "basic.json"))
	bundle, err := backend.ToNative(context.Background(), msg, serviceast.RenderOptions{GenerationTag: "basic"})
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}
	if bundle.Metadata.Format != "yaml" || bundle.Metadata.Backend != "outline" {
		t.Errorf("metadata = %+v", bundle.Metadata)
	}
	src, ok := bundle.Source("hello.yaml")
	if !ok {
		t.Fatalf("hello.yaml missing: %+v", bundle.Sources)
	}

	var root outlineNode
	if err := yaml.Unmarshal(src.Content, &root); err != nil {
		t.Fatalf("outline is not valid YAML: %v", err)
	}
	if root.Kind != "BallerinaFile" || root.Package != "hello" {
		t.Fatalf("root = %+v", root)
	}

	var kinds []string
	for _, c := range root.Children {
		kinds = append(kinds, c.Kind)
	}
	want := []string{"ImportDeclaration", "Service", "FunctionDefinition"}
	if len(kinds) != len(want) {
		t.Fatalf("children = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("children = %v, want %v", kinds, want)
		}
	}

	svc := root.Children[1]
	if svc.Name != "Hello" || svc.Annotations["BasePath"] != "/hello" {
		t.Errorf("service = %+v", svc)
	}
	if len(svc.Children) != 3 {
		t.Errorf("service children = %+v", svc.Children)
	}
}

func TestOutlineParseUnsupported(t *testing.T) {
	t.Parallel()

	backend := outlinebackend.New(outline.NewYAMLRenderer(), outline.NewNotImplementedParser())
	_, err := backend.ToDocument(context.Background(), serviceast.NewBundle("yaml", "outline"), serviceast.ParseOptions{})
	if kind, ok := svcerrors.KindOf(err); !ok || kind != svcerrors.KindUnsupported {
		t.Fatalf("err = %v, want unsupported error", err)
	}
}
