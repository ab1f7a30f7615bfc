package ast

// File is the root of a tree: one source file with its package name, imports,
// services and functions.
type File struct {
	node

	PackageName string

	imports   []*ImportDeclaration
	services  []*ServiceDefinition
	functions []*FunctionDefinition
}

func NewFile(packageName string) *File {
	return &File{
		node:        newNode(KindFile),
		PackageName: packageName,
	}
}

func (f *File) Imports() []*ImportDeclaration {
	return f.imports
}

func (f *File) Services() []*ServiceDefinition {
	return f.services
}

func (f *File) Functions() []*FunctionDefinition {
	return f.functions
}

// Service returns the first service named name, or nil.
func (f *File) Service(name string) *ServiceDefinition {
	for _, s := range f.services {
		if n, ok := s.ServiceName(); ok && n == name {
			return s
		}
	}
	return nil
}

func (f *File) CanBeParentOf(child Node) bool {
	return IsImportDeclaration(child) ||
		IsServiceDefinition(child) ||
		IsFunctionDefinition(child)
}

func (f *File) Children() []Node {
	out := make([]Node, 0, len(f.imports)+len(f.services)+len(f.functions))
	out = appendNodes(out, f.imports)
	out = appendNodes(out, f.services)
	return appendNodes(out, f.functions)
}

func (f *File) addChild(child Node) {
	switch c := child.(type) {
	case *ImportDeclaration:
		f.imports = append(f.imports, c)
	case *ServiceDefinition:
		f.services = append(f.services, c)
	case *FunctionDefinition:
		f.functions = append(f.functions, c)
	}
}

func (f *File) removeChild(child Node) bool {
	var ok bool
	if f.imports, ok = removeNode(f.imports, child); ok {
		return true
	}
	if f.services, ok = removeNode(f.services, child); ok {
		return true
	}
	f.functions, ok = removeNode(f.functions, child)
	return ok
}
