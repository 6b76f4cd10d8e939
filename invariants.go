package bstree

import (
	"errors"
	"fmt"
)

// ErrCorrupted signals a violated structural invariant. It is returned by
// Check only.
var ErrCorrupted = errors.New("bstree: corrupted tree")

// Check validates the structural invariants of the tree: every node is
// reachable exactly once from the root, and in-order traversal yields a
// strictly increasing sequence of elements.
//
// Check is meant for tests and debugging; the tree operations keep these
// invariants by construction.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupted)
	}
	if t.order == nil {
		return fmt.Errorf("%w: tree has no order", ErrCorrupted)
	}
	if t.root == nil {
		return nil
	}
	seen := make(map[*node[T]]bool)
	var prev *node[T]
	var err error
	var walk func(n *node[T]) bool
	walk = func(n *node[T]) bool {
		if n == nil {
			return true
		}
		if seen[n] {
			err = fmt.Errorf("%w: node %v reachable twice", ErrCorrupted, n.element)
			return false
		}
		seen[n] = true
		if !walk(n.left) {
			return false
		}
		if prev != nil && t.compare(prev.element, n.element) >= 0 {
			err = fmt.Errorf("%w: %v does not follow %v in order", ErrCorrupted,
				n.element, prev.element)
			return false
		}
		prev = n
		return walk(n.right)
	}
	walk(t.root)
	return err
}
