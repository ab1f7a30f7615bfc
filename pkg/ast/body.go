package ast

// body holds the declarations that may appear inside a service, resource or
// function.
type body struct {
	variableDeclarations   []*VariableDeclaration
	connectionDeclarations []*ConnectorDeclaration
}

func (b *body) VariableDeclarations() []*VariableDeclaration {
	return b.variableDeclarations
}

func (b *body) ConnectionDeclarations() []*ConnectorDeclaration {
	return b.connectionDeclarations
}

func (b *body) children() []Node {
	out := make([]Node, 0, len(b.connectionDeclarations)+len(b.variableDeclarations))
	out = appendNodes(out, b.connectionDeclarations)
	return appendNodes(out, b.variableDeclarations)
}

func (b *body) add(child Node) {
	switch c := child.(type) {
	case *VariableDeclaration:
		b.variableDeclarations = append(b.variableDeclarations, c)
	case *ConnectorDeclaration:
		b.connectionDeclarations = append(b.connectionDeclarations, c)
	}
}

func (b *body) remove(child Node) bool {
	var ok bool
	if b.variableDeclarations, ok = removeNode(b.variableDeclarations, child); ok {
		return true
	}
	b.connectionDeclarations, ok = removeNode(b.connectionDeclarations, child)
	return ok
}
