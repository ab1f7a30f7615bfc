// Package ast holds the in-memory tree an editor keeps for a Ballerina source file.
//
// The node family is closed: Node carries unexported methods, so only the
// variants declared here (File, ServiceDefinition, ResourceDefinition,
// FunctionDefinition, VariableDeclaration, ConnectorDeclaration and
// ImportDeclaration) can be placed in a tree. Nodes are not safe for
// concurrent mutation; editors serialize edits themselves.
package ast

import (
	"reflect"

	"github.com/google/uuid"
)

// Kind is the type tag of a node.
type Kind string

const (
	KindFile                 Kind = "BallerinaFile"
	KindService              Kind = "Service"
	KindResourceDefinition   Kind = "ResourceDefinition"
	KindFunctionDefinition   Kind = "FunctionDefinition"
	KindVariableDeclaration  Kind = "VariableDeclaration"
	KindConnectorDeclaration Kind = "ConnectorDeclaration"
	KindImportDeclaration    Kind = "ImportDeclaration"
)

func (k Kind) String() string {
	return string(k)
}

// Node is implemented by every AST variant.
type Node interface {
	// ID is a random identifier assigned when the node is created.
	ID() string
	// Kind returns the fixed type tag of the node.
	Kind() Kind
	// Parent returns the node this one is attached to, or nil.
	Parent() Node
	// Children returns the immediate children in source order.
	Children() []Node
	// CanBeParentOf reports whether child may be attached directly below this node.
	CanBeParentOf(child Node) bool

	setParent(parent Node)
	addChild(child Node)
	removeChild(child Node) bool
}

// node is embedded by every variant and supplies identity, the kind tag and
// the parent link. Its child hooks describe a leaf; containers override them.
type node struct {
	id     string
	kind   Kind
	parent Node
}

func newNode(kind Kind) node {
	return node{id: uuid.NewString(), kind: kind}
}

func (n *node) ID() string {
	return n.id
}

func (n *node) Kind() Kind {
	return n.kind
}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) Children() []Node {
	return nil
}

func (n *node) CanBeParentOf(Node) bool {
	return false
}

func (n *node) setParent(parent Node) {
	n.parent = parent
}

func (n *node) addChild(Node) {}

func (n *node) removeChild(Node) bool {
	return false
}

// Ptr returns a pointer to v. It is handy for the optional arguments of
// constructors and setters.
func Ptr[T any](v T) *T {
	return &v
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func removeNode[T Node](list []T, child Node) ([]T, bool) {
	for i, n := range list {
		if Node(n) == child {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

func containsNode[T Node](list []T, child Node) bool {
	for _, n := range list {
		if Node(n) == child {
			return true
		}
	}
	return false
}

// uniqueNodes drops repeated entries of the same node, keeping the first. A
// list without repeats is returned as is.
func uniqueNodes[T Node](list []T) []T {
	for i := 1; i < len(list); i++ {
		if containsNode(list[:i], list[i]) {
			out := append([]T(nil), list[:i]...)
			for _, n := range list[i+1:] {
				if !containsNode(out, n) {
					out = append(out, n)
				}
			}
			return out
		}
	}
	return list
}

// adopt moves parent links from old to next when a child collection is
// replaced wholesale.
func adopt[T Node](parent Node, old, next []T) {
	for _, c := range old {
		if isNil(c) || containsNode(next, c) {
			continue
		}
		if c.Parent() == parent {
			c.setParent(nil)
		}
	}
	for _, c := range next {
		if isNil(c) {
			continue
		}
		if prev := c.Parent(); prev != nil && prev != parent {
			prev.removeChild(c)
		}
		c.setParent(parent)
	}
}

func appendNodes[T Node](dst []Node, src []T) []Node {
	for _, n := range src {
		if isNil(n) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
