package ballerina

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/serviceast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// PlainTextRenderer renders a file tree as Ballerina source.
type PlainTextRenderer struct{}

func NewPlainTextRenderer() *PlainTextRenderer {
	return &PlainTextRenderer{}
}

// Render implements renderer.Renderer.
func (r *PlainTextRenderer) Render(ctx context.Context, doc *ast.File, opts serviceast.RenderOptions) (*serviceast.Bundle, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if doc == nil {
		return nil, svcerrors.New(svcerrors.KindRender, fmt.Errorf("file is nil"))
	}

	w := &writer{indent: opts.IndentUnit()}
	if opts.GenerationTag != "" {
		w.line(0, "// "+opts.GenerationTag)
		w.blank()
	}
	if doc.PackageName != "" {
		w.line(0, "package "+doc.PackageName+";")
		w.blank()
	}
	if imports := doc.Imports(); len(imports) > 0 {
		for _, imp := range imports {
			if imp == nil || imp.Path == "" {
				continue
			}
			w.line(0, "import "+imp.Path+";")
		}
		w.blank()
	}

	for _, svc := range doc.Services() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if svc == nil {
			continue
		}
		if err := renderService(w, svc, opts); err != nil {
			return nil, err
		}
		w.blank()
	}
	for _, fn := range doc.Functions() {
		if fn == nil {
			continue
		}
		renderFunction(w, fn)
		w.blank()
	}

	bundle := serviceast.NewBundle("bal", "ballerina")
	bundle.Sources = append(bundle.Sources, serviceast.Source{
		Name:    SourceName(doc.PackageName),
		Content: []byte(w.String()),
	})
	if opts.GenerationTag != "" {
		bundle.Metadata.Version = opts.GenerationTag
	}
	bundle.Metadata.Custom["package"] = doc.PackageName
	bundle.Metadata.Custom["services"] = strconv.Itoa(len(doc.Services()))
	bundle.Metadata.Custom["functions"] = strconv.Itoa(len(doc.Functions()))
	return bundle, nil
}

// SourceName returns the file name used for a package: its last segment
// with a .bal extension, or main.bal.
func SourceName(packageName string) string {
	if packageName == "" {
		return "main.bal"
	}
	if i := strings.LastIndex(packageName, "."); i >= 0 {
		packageName = packageName[i+1:]
	}
	return packageName + ".bal"
}

func renderService(w *writer, svc *ast.ServiceDefinition, opts serviceast.RenderOptions) error {
	name, ok := svc.ServiceName()
	if !ok || name == "" {
		return svcerrors.Errorf(svcerrors.KindRender, "service %s has no name", svc.ID())
	}

	// Empty service annotations are placeholders seeded by the editor.
	for key, value := range svc.Annotations().All() {
		if value == "" && !opts.IncludeEmptyAnnotations {
			continue
		}
		w.line(0, fmt.Sprintf("@%s (%q)", key, value))
	}
	w.line(0, "service "+name+" {")
	hasBody := renderBody(w, 1, svc.ConnectionDeclarations(), svc.VariableDeclarations())

	for i, res := range svc.ResourceDefinitions() {
		if res == nil {
			continue
		}
		if hasBody || i > 0 {
			w.blank()
		}
		renderResource(w, res)
	}
	w.line(0, "}")
	return nil
}

func renderResource(w *writer, res *ast.ResourceDefinition) {
	for key, value := range res.Annotations().All() {
		if value == "" {
			w.line(1, "@"+key)
			continue
		}
		w.line(1, fmt.Sprintf("@%s (%q)", key, value))
	}
	w.line(1, fmt.Sprintf("resource %s (%s) {", res.Name, parameters(res.Parameters)))
	renderBody(w, 2, res.ConnectionDeclarations(), res.VariableDeclarations())
	w.line(1, "}")
}

func renderFunction(w *writer, fn *ast.FunctionDefinition) {
	head := fmt.Sprintf("function %s (%s)", fn.Name, parameters(fn.Parameters))
	if len(fn.ReturnTypes) > 0 {
		head += " (" + strings.Join(fn.ReturnTypes, ", ") + ")"
	}
	w.line(0, head+" {")
	renderBody(w, 1, fn.ConnectionDeclarations(), fn.VariableDeclarations())
	w.line(0, "}")
}

// renderBody writes connector then variable declarations and reports whether
// anything was written.
func renderBody(w *writer, depth int, conns []*ast.ConnectorDeclaration, vars []*ast.VariableDeclaration) bool {
	wrote := false
	for _, c := range conns {
		if c == nil {
			continue
		}
		typ := c.QualifiedConnector()
		w.line(depth, fmt.Sprintf("%s %s = create %s(%s);", typ, c.Name, typ, strings.Join(c.Arguments, ", ")))
		wrote = true
	}
	for _, v := range vars {
		if v == nil {
			continue
		}
		if v.Value == "" {
			w.line(depth, fmt.Sprintf("%s %s;", v.Type, v.Name))
		} else {
			w.line(depth, fmt.Sprintf("%s %s = %s;", v.Type, v.Name, v.Value))
		}
		wrote = true
	}
	return wrote
}

func parameters(params []ast.Parameter) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

type writer struct {
	b      strings.Builder
	indent string
}

func (w *writer) line(depth int, text string) {
	w.b.WriteString(strings.Repeat(w.indent, depth))
	w.b.WriteString(text)
	w.b.WriteByte('\n')
}

func (w *writer) blank() {
	w.b.WriteByte('\n')
}

// String returns the output with exactly one trailing newline.
func (w *writer) String() string {
	return strings.TrimRight(w.b.String(), "\n") + "\n"
}
