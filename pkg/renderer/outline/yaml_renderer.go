package outline

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// YAMLRenderer renders a tree as a YAML outline: one mapping per node with
// its kind, its own attributes and its children. Annotation order is kept.
type YAMLRenderer struct{}

func NewYAMLRenderer() *YAMLRenderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) Render(ctx context.Context, doc *ast.File, opts serviceast.RenderOptions) (*serviceast.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, svcerrors.New(svcerrors.KindRender, fmt.Errorf("file is nil"))
	}

	var buf bytes.Buffer
	if opts.GenerationTag != "" {
		fmt.Fprintf(&buf, "# %s\n", opts.GenerationTag)
	}
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(outlineNode(doc, opts)); err != nil {
		return nil, svcerrors.New(svcerrors.KindRender, fmt.Errorf("encode outline: %w", err))
	}
	if err := enc.Close(); err != nil {
		return nil, svcerrors.New(svcerrors.KindRender, fmt.Errorf("encode outline: %w", err))
	}

	bundle := serviceast.NewBundle("yaml", "outline")
	bundle.Sources = append(bundle.Sources, serviceast.Source{
		Name:    SourceName(doc.PackageName),
		Content: buf.Bytes(),
	})
	nodes := 0
	ast.Walk(doc, func(ast.Node) bool {
		nodes++
		return true
	})
	bundle.Metadata.Custom["nodes"] = strconv.Itoa(nodes)
	return bundle, nil
}

// SourceName returns the outline file name for a package.
func SourceName(packageName string) string {
	if i := strings.LastIndex(packageName, "."); i >= 0 {
		packageName = packageName[i+1:]
	}
	if packageName == "" {
		packageName = "main"
	}
	return packageName + ".yaml"
}

func outlineNode(n ast.Node, opts serviceast.RenderOptions) *yaml.Node {
	m := mapping()
	put(m, "kind", str(n.Kind().String()))
	if opts.IncludeNodeIDs {
		put(m, "id", str(n.ID()))
	}

	switch v := n.(type) {
	case *ast.File:
		if v.PackageName != "" {
			put(m, "package", str(v.PackageName))
		}
	case *ast.ImportDeclaration:
		put(m, "path", str(v.Path))
	case *ast.ServiceDefinition:
		if name, ok := v.ServiceName(); ok {
			put(m, "name", str(name))
		}
		putAnnotations(m, v.Annotations())
	case *ast.ResourceDefinition:
		put(m, "name", str(v.Name))
		putAnnotations(m, v.Annotations())
		putParameters(m, v.Parameters)
	case *ast.FunctionDefinition:
		put(m, "name", str(v.Name))
		putParameters(m, v.Parameters)
		if len(v.ReturnTypes) > 0 {
			put(m, "returns", strs(v.ReturnTypes))
		}
	case *ast.VariableDeclaration:
		put(m, "type", str(v.Type))
		put(m, "name", str(v.Name))
		if v.Value != "" {
			put(m, "value", str(v.Value))
		}
	case *ast.ConnectorDeclaration:
		put(m, "connector", str(v.QualifiedConnector()))
		put(m, "name", str(v.Name))
		if len(v.Arguments) > 0 {
			put(m, "arguments", strs(v.Arguments))
		}
	}

	if children := n.Children(); len(children) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range children {
			seq.Content = append(seq.Content, outlineNode(c, opts))
		}
		put(m, "children", seq)
	}
	return m
}

func putAnnotations(m *yaml.Node, a *ast.Annotations) {
	if a.Len() == 0 {
		return
	}
	am := mapping()
	for k, v := range a.All() {
		put(am, k, str(v))
	}
	put(m, "annotations", am)
}

func putParameters(m *yaml.Node, params []ast.Parameter) {
	if len(params) == 0 {
		return
	}
	values := make([]string, 0, len(params))
	for _, p := range params {
		values = append(values, p.Type+" "+p.Name)
	}
	put(m, "parameters", strs(values))
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func put(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, str(key), value)
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func strs(values []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, v := range values {
		seq.Content = append(seq.Content, str(v))
	}
	return seq
}
