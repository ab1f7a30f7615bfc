package service

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/honeybbq/serviceast/pkg/ast"
	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// Config is a service document: a source file with its package, imports,
// services and functions, held as a protobuf Struct.
//
//	{
//	  "package": "hello",
//	  "imports": ["ballerina.net.http"],
//	  "services": [{
//	    "name": "Hello",
//	    "annotations": [{"key": "BasePath", "value": "/hello"}],
//	    "connections": [{"package": "http", "connector": "ClientConnector", "name": "ep", "arguments": ["\"http://localhost\""]}],
//	    "variables": [{"type": "int", "name": "count", "value": "0"}],
//	    "resources": [{"name": "sayHello", "annotations": [...], "parameters": [{"type": "message", "name": "m"}]}]
//	  }],
//	  "functions": [{"name": "main", "parameters": [...], "returns": ["int"]}]
//	}
type Config struct {
	Message *structpb.Struct
}

func FromProto(msg *structpb.Struct) (*Config, error) {
	if msg == nil {
		return nil, svcerrors.New(svcerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	return &Config{Message: msg}, nil
}

// ToAST builds a fresh tree from the document. Services receive their default
// annotations as part of construction.
func (c *Config) ToAST() (*ast.File, error) {
	if c == nil || c.Message == nil {
		return nil, svcerrors.New(svcerrors.KindValidation, fmt.Errorf("document is nil"))
	}
	root := c.Message.GetFields()

	pkg, err := stringField(root, "document", "package")
	if err != nil {
		return nil, err
	}
	file := ast.NewFile(pkg)

	imports, err := stringList(root, "document", "imports")
	if err != nil {
		return nil, err
	}
	for _, path := range imports {
		if err := ast.Attach(file, ast.NewImportDeclaration(path)); err != nil {
			return nil, err
		}
	}

	services, err := objectList(root, "document", "services")
	if err != nil {
		return nil, err
	}
	for i, obj := range services {
		svc, err := buildService(obj, fmt.Sprintf("services[%d]", i))
		if err != nil {
			return nil, err
		}
		if err := ast.Attach(file, svc); err != nil {
			return nil, err
		}
	}

	functions, err := objectList(root, "document", "functions")
	if err != nil {
		return nil, err
	}
	for i, obj := range functions {
		fn, err := buildFunction(obj, fmt.Sprintf("functions[%d]", i))
		if err != nil {
			return nil, err
		}
		if err := ast.Attach(file, fn); err != nil {
			return nil, err
		}
	}
	return file, nil
}

// FromAST captures the current state of a tree as a document.
func FromAST(file *ast.File) (*Config, error) {
	if file == nil {
		return nil, svcerrors.New(svcerrors.KindValidation, fmt.Errorf("file is nil"))
	}
	doc := map[string]any{}
	if file.PackageName != "" {
		doc["package"] = file.PackageName
	}
	if imports := file.Imports(); len(imports) > 0 {
		list := make([]any, 0, len(imports))
		for _, imp := range imports {
			if imp == nil {
				continue
			}
			list = append(list, imp.Path)
		}
		doc["imports"] = list
	}
	if services := file.Services(); len(services) > 0 {
		list := make([]any, 0, len(services))
		for _, svc := range services {
			if svc == nil {
				continue
			}
			list = append(list, encodeService(svc))
		}
		doc["services"] = list
	}
	if functions := file.Functions(); len(functions) > 0 {
		list := make([]any, 0, len(functions))
		for _, fn := range functions {
			if fn == nil {
				continue
			}
			list = append(list, encodeFunction(fn))
		}
		doc["functions"] = list
	}

	msg, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, svcerrors.New(svcerrors.KindInternal, fmt.Errorf("encode document: %w", err))
	}
	return &Config{Message: msg}, nil
}

func (c *Config) ToProto() (*structpb.Struct, error) {
	if c == nil || c.Message == nil {
		return nil, svcerrors.New(svcerrors.KindInternal, fmt.Errorf("document is nil"))
	}
	return c.Message, nil
}

func buildService(obj fields, path string) (*ast.ServiceDefinition, error) {
	name, err := optionalString(obj, path, "name")
	if err != nil {
		return nil, err
	}
	annotations, err := annotationList(obj, path)
	if err != nil {
		return nil, err
	}
	svc := ast.NewServiceDefinition(ast.ServiceDefinitionArgs{
		ServiceName: name,
		Annotations: annotations,
	})

	if err := buildBody(svc, obj, path); err != nil {
		return nil, err
	}

	resources, err := objectList(obj, path, "resources")
	if err != nil {
		return nil, err
	}
	for i, r := range resources {
		res, err := buildResource(r, fmt.Sprintf("%s.resources[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if err := ast.Attach(svc, res); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

func buildResource(obj fields, path string) (*ast.ResourceDefinition, error) {
	name, err := requiredString(obj, path, "name")
	if err != nil {
		return nil, err
	}
	params, err := parameterList(obj, path)
	if err != nil {
		return nil, err
	}
	annotations, err := annotationList(obj, path)
	if err != nil {
		return nil, err
	}
	res := ast.NewResourceDefinition(name, params...)
	for _, a := range annotations {
		res.AddAnnotation(a.Key, a.Value)
	}
	if err := buildBody(res, obj, path); err != nil {
		return nil, err
	}
	return res, nil
}

func buildFunction(obj fields, path string) (*ast.FunctionDefinition, error) {
	name, err := requiredString(obj, path, "name")
	if err != nil {
		return nil, err
	}
	params, err := parameterList(obj, path)
	if err != nil {
		return nil, err
	}
	returns, err := stringList(obj, path, "returns")
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunctionDefinition(name, params, returns...)
	if err := buildBody(fn, obj, path); err != nil {
		return nil, err
	}
	return fn, nil
}

// buildBody attaches the connections and variables of obj to parent.
func buildBody(parent ast.Node, obj fields, path string) error {
	connections, err := objectList(obj, path, "connections")
	if err != nil {
		return err
	}
	for i, c := range connections {
		p := fmt.Sprintf("%s.connections[%d]", path, i)
		decl, err := buildConnection(c, p)
		if err != nil {
			return err
		}
		if err := ast.Attach(parent, decl); err != nil {
			return err
		}
	}

	variables, err := objectList(obj, path, "variables")
	if err != nil {
		return err
	}
	for i, v := range variables {
		p := fmt.Sprintf("%s.variables[%d]", path, i)
		decl, err := buildVariable(v, p)
		if err != nil {
			return err
		}
		if err := ast.Attach(parent, decl); err != nil {
			return err
		}
	}
	return nil
}

func buildVariable(obj fields, path string) (*ast.VariableDeclaration, error) {
	typ, err := requiredString(obj, path, "type")
	if err != nil {
		return nil, err
	}
	name, err := requiredString(obj, path, "name")
	if err != nil {
		return nil, err
	}
	value, err := stringField(obj, path, "value")
	if err != nil {
		return nil, err
	}
	return ast.NewVariableDeclaration(typ, name, value), nil
}

func buildConnection(obj fields, path string) (*ast.ConnectorDeclaration, error) {
	pkg, err := stringField(obj, path, "package")
	if err != nil {
		return nil, err
	}
	connector, err := requiredString(obj, path, "connector")
	if err != nil {
		return nil, err
	}
	name, err := requiredString(obj, path, "name")
	if err != nil {
		return nil, err
	}
	args, err := stringList(obj, path, "arguments")
	if err != nil {
		return nil, err
	}
	return ast.NewConnectorDeclaration(pkg, connector, name, args...), nil
}

func annotationList(obj fields, path string) ([]ast.Annotation, error) {
	items, err := objectList(obj, path, "annotations")
	if err != nil {
		return nil, err
	}
	out := make([]ast.Annotation, 0, len(items))
	for i, item := range items {
		p := fmt.Sprintf("%s.annotations[%d]", path, i)
		key, err := requiredString(item, p, "key")
		if err != nil {
			return nil, err
		}
		value, err := stringField(item, p, "value")
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Annotation{Key: key, Value: value})
	}
	return out, nil
}

func parameterList(obj fields, path string) ([]ast.Parameter, error) {
	items, err := objectList(obj, path, "parameters")
	if err != nil {
		return nil, err
	}
	out := make([]ast.Parameter, 0, len(items))
	for i, item := range items {
		p := fmt.Sprintf("%s.parameters[%d]", path, i)
		typ, err := requiredString(item, p, "type")
		if err != nil {
			return nil, err
		}
		name, err := requiredString(item, p, "name")
		if err != nil {
			return nil, err
		}
		out = append(out, ast.Parameter{Type: typ, Name: name})
	}
	return out, nil
}
