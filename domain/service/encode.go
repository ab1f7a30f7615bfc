package service

import "github.com/honeybbq/serviceast/pkg/ast"

// The encoders below build plain maps for structpb.NewStruct. Empty
// collections and empty optional strings are left out.

func encodeService(svc *ast.ServiceDefinition) map[string]any {
	out := map[string]any{}
	if name, ok := svc.ServiceName(); ok {
		out["name"] = name
	}
	putAnnotations(out, svc.Annotations())
	putBody(out, svc.ConnectionDeclarations(), svc.VariableDeclarations())
	if resources := svc.ResourceDefinitions(); len(resources) > 0 {
		list := make([]any, 0, len(resources))
		for _, r := range resources {
			if r == nil {
				continue
			}
			list = append(list, encodeResource(r))
		}
		out["resources"] = list
	}
	return out
}

func encodeResource(r *ast.ResourceDefinition) map[string]any {
	out := map[string]any{"name": r.Name}
	putAnnotations(out, r.Annotations())
	putParameters(out, r.Parameters)
	putBody(out, r.ConnectionDeclarations(), r.VariableDeclarations())
	return out
}

func encodeFunction(f *ast.FunctionDefinition) map[string]any {
	out := map[string]any{"name": f.Name}
	putParameters(out, f.Parameters)
	putStrings(out, "returns", f.ReturnTypes)
	putBody(out, f.ConnectionDeclarations(), f.VariableDeclarations())
	return out
}

func putAnnotations(out map[string]any, a *ast.Annotations) {
	if a.Len() == 0 {
		return
	}
	list := make([]any, 0, a.Len())
	for k, v := range a.All() {
		list = append(list, map[string]any{"key": k, "value": v})
	}
	out["annotations"] = list
}

func putParameters(out map[string]any, params []ast.Parameter) {
	if len(params) == 0 {
		return
	}
	list := make([]any, 0, len(params))
	for _, p := range params {
		list = append(list, map[string]any{"type": p.Type, "name": p.Name})
	}
	out["parameters"] = list
}

func putStrings(out map[string]any, key string, values []string) {
	if len(values) == 0 {
		return
	}
	list := make([]any, 0, len(values))
	for _, v := range values {
		list = append(list, v)
	}
	out[key] = list
}

func putBody(out map[string]any, connections []*ast.ConnectorDeclaration, variables []*ast.VariableDeclaration) {
	if len(connections) > 0 {
		list := make([]any, 0, len(connections))
		for _, c := range connections {
			if c == nil {
				continue
			}
			m := map[string]any{"connector": c.Connector, "name": c.Name}
			if c.Package != "" {
				m["package"] = c.Package
			}
			putStrings(m, "arguments", c.Arguments)
			list = append(list, m)
		}
		out["connections"] = list
	}
	if len(variables) > 0 {
		list := make([]any, 0, len(variables))
		for _, v := range variables {
			if v == nil {
				continue
			}
			m := map[string]any{"type": v.Type, "name": v.Name}
			if v.Value != "" {
				m["value"] = v.Value
			}
			list = append(list, m)
		}
		out["variables"] = list
	}
}
