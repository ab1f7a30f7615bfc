package ast

// VariableDeclaration declares a typed variable with an optional initializer
// expression.
type VariableDeclaration struct {
	node

	Type  string
	Name  string
	Value string
}

func NewVariableDeclaration(typ, name, value string) *VariableDeclaration {
	return &VariableDeclaration{
		node:  newNode(KindVariableDeclaration),
		Type:  typ,
		Name:  name,
		Value: value,
	}
}

// ConnectorDeclaration creates a connector instance, e.g.
// `http:ClientConnector ep = create http:ClientConnector("http://localhost")`.
type ConnectorDeclaration struct {
	node

	Package   string
	Connector string
	Name      string
	Arguments []string
}

func NewConnectorDeclaration(pkg, connector, name string, args ...string) *ConnectorDeclaration {
	return &ConnectorDeclaration{
		node:      newNode(KindConnectorDeclaration),
		Package:   pkg,
		Connector: connector,
		Name:      name,
		Arguments: args,
	}
}

// QualifiedConnector returns the connector type with its package prefix.
func (c *ConnectorDeclaration) QualifiedConnector() string {
	if c.Package == "" {
		return c.Connector
	}
	return c.Package + ":" + c.Connector
}

// ImportDeclaration imports a package path.
type ImportDeclaration struct {
	node

	Path string
}

func NewImportDeclaration(path string) *ImportDeclaration {
	return &ImportDeclaration{
		node: newNode(KindImportDeclaration),
		Path: path,
	}
}
