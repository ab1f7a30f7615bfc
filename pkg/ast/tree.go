package ast

import (
	"errors"

	"github.com/honeybbq/serviceast/pkg/svcerrors"
)

// Attach appends child below parent. The child is first detached from any
// previous parent; attaching a child to its current parent leaves it where it
// is. It fails with a validation error when parent does not
// accept the child's kind.
func Attach(parent, child Node) error {
	if isNil(parent) {
		return svcerrors.New(svcerrors.KindValidation, errors.New("parent node is nil"))
	}
	if isNil(child) {
		return svcerrors.New(svcerrors.KindValidation, errors.New("child node is nil"))
	}
	if !parent.CanBeParentOf(child) {
		return svcerrors.Errorf(svcerrors.KindValidation, "%s cannot contain %s", parent.Kind(), child.Kind())
	}
	prev := child.Parent()
	if prev == parent {
		return nil
	}
	if prev != nil {
		prev.removeChild(child)
	}
	parent.addChild(child)
	child.setParent(parent)
	return nil
}

// Detach removes child from its parent. Detaching a root is a no-op.
func Detach(child Node) error {
	if isNil(child) {
		return svcerrors.New(svcerrors.KindValidation, errors.New("child node is nil"))
	}
	parent := child.Parent()
	if parent == nil {
		return nil
	}
	if !parent.removeChild(child) {
		return svcerrors.Errorf(svcerrors.KindInternal, "%s %s not found under its parent", child.Kind(), child.ID())
	}
	child.setParent(nil)
	return nil
}

// Walk visits root and its descendants depth-first in child order. When fn
// returns false the children of that node are skipped.
func Walk(root Node, fn func(Node) bool) {
	if isNil(root) {
		return
	}
	if !fn(root) {
		return
	}
	for _, c := range root.Children() {
		Walk(c, fn)
	}
}

// FindByID returns the node below root (inclusive) with the given id.
func FindByID(root Node, id string) Node {
	var found Node
	Walk(root, func(n Node) bool {
		if found != nil {
			return false
		}
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
