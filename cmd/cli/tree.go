package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/honeybbq/serviceast/domain/service"
	"github.com/honeybbq/serviceast/internal/document"
	"github.com/honeybbq/serviceast/pkg/ast"
)

var (
	treeInputs []string
	treeIDs    bool
	treeKind   string
)

// kindFilters select nodes for --kind.
var kindFilters = map[string]func(ast.Node) bool{
	"file":      ast.IsFile,
	"import":    ast.IsImportDeclaration,
	"service":   ast.IsServiceDefinition,
	"resource":  ast.IsResourceDefinition,
	"function":  ast.IsFunctionDefinition,
	"variable":  ast.IsVariableDeclaration,
	"connector": ast.IsConnectorDeclaration,
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the node tree of a service document",
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringSliceVarP(&treeInputs, "input", "i", nil, "input documents, layered in order (default: stdin)")
	treeCmd.Flags().BoolVar(&treeIDs, "ids", false, "print node ids")
	treeCmd.Flags().StringVar(&treeKind, "kind", "", "only print nodes of this kind (file, import, service, resource, function, variable, connector)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, _ []string) error {
	match := func(ast.Node) bool { return true }
	if treeKind != "" {
		filter, ok := kindFilters[strings.ToLower(treeKind)]
		if !ok {
			return fmt.Errorf("unknown node kind %q", treeKind)
		}
		match = filter
	}

	file, err := loadFile(cmd, treeInputs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ast.Walk(file, func(n ast.Node) bool {
		if !match(n) {
			return true
		}
		line := strings.Repeat("  ", ast.Depth(n)) + n.Kind().String()
		if label := nodeLabel(n); label != "" {
			line += " " + label
		}
		if treeIDs {
			line += " [" + n.ID() + "]"
		}
		fmt.Fprintln(out, line)
		return true
	})
	return nil
}

func loadFile(cmd *cobra.Command, inputs []string) (*ast.File, error) {
	msg, err := document.Load(cmd.InOrStdin(), inputs, cfg.Merge.Identifiers)
	if err != nil {
		return nil, err
	}
	doc, err := domain.FromProto(msg)
	if err != nil {
		return nil, err
	}
	return doc.ToAST()
}

func nodeLabel(n ast.Node) string {
	switch v := n.(type) {
	case *ast.File:
		return v.PackageName
	case *ast.ImportDeclaration:
		return v.Path
	case *ast.ServiceDefinition:
		name, _ := v.ServiceName()
		return name
	case *ast.ResourceDefinition:
		return v.Name
	case *ast.FunctionDefinition:
		return v.Name
	case *ast.VariableDeclaration:
		return v.Type + " " + v.Name
	case *ast.ConnectorDeclaration:
		return v.QualifiedConnector() + " " + v.Name
	}
	return ""
}
