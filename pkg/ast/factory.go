package ast

// The Is* predicates classify arbitrary nodes by kind. A nil node matches
// nothing.

func kindOf(n Node) Kind {
	if isNil(n) {
		return ""
	}
	return n.Kind()
}

func IsFile(n Node) bool {
	return kindOf(n) == KindFile
}

func IsServiceDefinition(n Node) bool {
	return kindOf(n) == KindService
}

func IsResourceDefinition(n Node) bool {
	return kindOf(n) == KindResourceDefinition
}

func IsFunctionDefinition(n Node) bool {
	return kindOf(n) == KindFunctionDefinition
}

func IsVariableDeclaration(n Node) bool {
	return kindOf(n) == KindVariableDeclaration
}

func IsConnectorDeclaration(n Node) bool {
	return kindOf(n) == KindConnectorDeclaration
}

func IsImportDeclaration(n Node) bool {
	return kindOf(n) == KindImportDeclaration
}
