package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// Tree is an unbalanced binary search tree over elements of type T.
//
// A tree never holds two elements comparing equal. Every node is owned by
// exactly one parent (or by the tree for the root); nodes are never shared
// between trees.
//
// The zero value is not usable, as it lacks a comparison function. Create
// trees with New or NewFunc.
type Tree[T any] struct {
	root     *node[T]
	order    func(a, b T) int
	reversed bool // set for mirror images
}

// node holds one element and owns its children. A nil child is an empty slot.
type node[T any] struct {
	element     T
	left, right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// New creates an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{order: cmp.Compare[T]}
}

// NewFunc creates an empty tree ordered by compare, which has to return a
// negative number if a < b, zero if a == b and a positive number if a > b.
// It panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	assert(compare != nil, "bstree.NewFunc: comparison function is nil")
	return &Tree[T]{order: compare}
}

// empty returns a new empty tree sharing t's order.
func (t *Tree[T]) empty() *Tree[T] {
	return &Tree[T]{order: t.order, reversed: t.reversed}
}

func (t *Tree[T]) compare(a, b T) int {
	if t.reversed {
		return t.order(b, a)
	}
	return t.order(a, b)
}

// Insert adds x to the tree. Inserting an element already present does
// nothing.
func (t *Tree[T]) Insert(x T) {
	t.root = t.insert(x, t.root)
}

func (t *Tree[T]) insert(x T, n *node[T]) *node[T] {
	if n == nil {
		return &node[T]{element: x}
	}
	switch c := t.compare(x, n.element); {
	case c < 0:
		n.left = t.insert(x, n.left)
	case c > 0:
		n.right = t.insert(x, n.right)
	}
	return n
}

// Remove deletes x from the tree. Removing an element which is not present
// does nothing.
func (t *Tree[T]) Remove(x T) {
	t.root = t.remove(x, t.root)
}

func (t *Tree[T]) remove(x T, n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	switch c := t.compare(x, n.element); {
	case c < 0:
		n.left = t.remove(x, n.left)
	case c > 0:
		n.right = t.remove(x, n.right)
	case n.left != nil && n.right != nil:
		// splice in the in-order successor
		n.element = minNode(n.right).element
		n.right = t.remove(n.element, n.right)
	case n.left != nil:
		return n.left
	default:
		return n.right
	}
	return n
}

// Contains reports whether x is an element of the tree.
func (t *Tree[T]) Contains(x T) bool {
	return t.find(x) != nil
}

func (t *Tree[T]) find(x T) *node[T] {
	n := t.root
	for n != nil {
		c := t.compare(x, n.element)
		if c == 0 {
			return n
		} else if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// FindMin returns the smallest element of the tree, or ErrUnderflow if the
// tree is empty.
func (t *Tree[T]) FindMin() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: FindMin", ErrUnderflow)
	}
	return minNode(t.root).element, nil
}

// FindMax returns the largest element of the tree, or ErrUnderflow if the
// tree is empty.
func (t *Tree[T]) FindMax() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("%w: FindMax", ErrUnderflow)
	}
	return maxNode(t.root).element, nil
}

func minNode[T any](n *node[T]) *node[T] {
	assert(n != nil, "minNode called with nil node")
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *node[T]) *node[T] {
	assert(n != nil, "maxNode called with nil node")
	for n.right != nil {
		n = n.right
	}
	return n
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// MakeEmpty removes all elements from the tree.
func (t *Tree[T]) MakeEmpty() {
	t.root = nil
}

// Height returns the height of the tree: -1 for an empty tree, 0 for a tree
// consisting of a root only.
func (t *Tree[T]) Height() int {
	if t == nil {
		return -1
	}
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}
