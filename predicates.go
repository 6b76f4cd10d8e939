package bstree

import "fmt"

// NodeCount returns the number of elements in the tree, 0 for an empty tree.
func (t *Tree[T]) NodeCount() int {
	if t.IsEmpty() {
		return 0
	}
	return nodeCount(t.root)
}

func nodeCount[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + nodeCount(n.left) + nodeCount(n.right)
}

// IsFull reports whether every node of the tree has either no children or
// two children. For an empty tree IsFull returns ErrUndefinedOnEmpty.
func (t *Tree[T]) IsFull() (bool, error) {
	if t.IsEmpty() {
		tracer().Debugf("bstree: IsFull on empty tree")
		return false, fmt.Errorf("%w: IsFull", ErrUndefinedOnEmpty)
	}
	return isFull(t.root), nil
}

func isFull[T any](n *node[T]) bool {
	if n == nil {
		return true
	}
	if (n.left == nil) != (n.right == nil) {
		return false
	}
	return isFull(n.left) && isFull(n.right)
}

// CompareStructure reports whether t and other have the same shape, ignoring
// elements. Both trees have to be non-empty, otherwise CompareStructure
// returns ErrUndefinedOnEmpty.
func (t *Tree[T]) CompareStructure(other *Tree[T]) (bool, error) {
	if t.IsEmpty() || other.IsEmpty() {
		tracer().Debugf("bstree: CompareStructure with empty operand")
		return false, fmt.Errorf("%w: CompareStructure", ErrUndefinedOnEmpty)
	}
	return sameShape(t.root, other.root), nil
}

func sameShape[T any](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameShape(a.left, b.left) && sameShape(a.right, b.right)
}

// Equals reports whether t and other have the same shape and hold equal
// elements at every position. Elements are compared with t's order.
// Both trees have to be non-empty, otherwise Equals returns
// ErrUndefinedOnEmpty.
func (t *Tree[T]) Equals(other *Tree[T]) (bool, error) {
	if t.IsEmpty() || other.IsEmpty() {
		tracer().Debugf("bstree: Equals with empty operand")
		return false, fmt.Errorf("%w: Equals", ErrUndefinedOnEmpty)
	}
	return t.equalNodes(t.root, other.root), nil
}

func (t *Tree[T]) equalNodes(a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if t.compare(a.element, b.element) != 0 {
		return false
	}
	return t.equalNodes(a.left, b.left) && t.equalNodes(a.right, b.right)
}
