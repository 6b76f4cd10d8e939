package bstree

import "iter"

// ForEach walks the elements of the tree in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(x T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	inorder(t.root, fn)
}

func inorder[T any](n *node[T], fn func(x T) bool) bool {
	if n == nil {
		return true
	}
	return inorder(n.left, fn) && fn(n.element) && inorder(n.right, fn)
}

func preorder[T any](n *node[T], fn func(x T) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.element) && preorder(n.left, fn) && preorder(n.right, fn)
}

// All returns an iterator over the elements of the tree in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// InOrder returns the elements of the tree in ascending order.
func (t *Tree[T]) InOrder() []T {
	elems := make([]T, 0, t.NodeCount())
	t.ForEach(func(x T) bool {
		elems = append(elems, x)
		return true
	})
	return elems
}

// PreOrder returns an iterator visiting every node before its subtrees,
// left subtree first.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.IsEmpty() {
			return
		}
		preorder(t.root, yield)
	}
}

// Levels returns an iterator over the levels of the tree, from the root
// downwards. Every level is yielded as a slice of its elements, left to right.
//
// Levels are computed lazily, one at a time; the iterator may be ranged over
// repeatedly. For an empty tree the sequence is empty.
func (t *Tree[T]) Levels() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if t.IsEmpty() {
			return
		}
		level := []*node[T]{t.root}
		for len(level) > 0 {
			elems := make([]T, len(level))
			var next []*node[T]
			for i, n := range level {
				elems[i] = n.element
				if n.left != nil {
					next = append(next, n.left)
				}
				if n.right != nil {
					next = append(next, n.right)
				}
			}
			if !yield(elems) {
				return
			}
			level = next
		}
	}
}
