package bstree

import "fmt"

// RotateRight performs a single right rotation at the node holding x and
// returns the result as a new tree. t itself is not modified.
//
// The left child l of x's node takes the node's place, and the node becomes
// l's right child. l's former right subtree becomes the node's left subtree:
//
//	    x            l
//	   / \          / \
//	  l   c   ->   a   x
//	 / \              / \
//	a   b            b   c
//
// The in-order sequence of elements is preserved. If x is not in the tree or
// its node has no left child, RotateRight returns ErrInvalidRotation.
func (t *Tree[T]) RotateRight(x T) (*Tree[T], error) {
	return t.rotate(x, rotateRight[T], "right", "left")
}

// RotateLeft performs a single left rotation at the node holding x and
// returns the result as a new tree. t itself is not modified.
//
// The right child r of x's node takes the node's place, and the node becomes
// r's left child. r's former left subtree becomes the node's right subtree:
//
//	  x                r
//	 / \              / \
//	a   r     ->     x   c
//	   / \          / \
//	  b   c        a   b
//
// The in-order sequence of elements is preserved. If x is not in the tree or
// its node has no right child, RotateLeft returns ErrInvalidRotation.
func (t *Tree[T]) RotateLeft(x T) (*Tree[T], error) {
	return t.rotate(x, rotateLeft[T], "left", "right")
}

// rotate applies rot to the node holding x in a working copy of t.
// rot returns nil if the node lacks the child to promote.
func (t *Tree[T]) rotate(x T, rot func(*node[T]) *node[T], dir, child string) (*Tree[T], error) {
	if t.IsEmpty() {
		tracer().Debugf("bstree: %s rotation on empty tree", dir)
		return nil, fmt.Errorf("%w: %s rotation on empty tree", ErrInvalidRotation, dir)
	}
	work := t.Copy()
	slot := work.slot(x)
	if slot == nil {
		tracer().Debugf("bstree: %s rotation of %v: element not in tree", dir, x)
		return nil, fmt.Errorf("%w: %v is not an element of the tree", ErrInvalidRotation, x)
	}
	top := rot(*slot)
	if top == nil {
		tracer().Debugf("bstree: %s rotation of %v: no child to promote", dir, x)
		return nil, fmt.Errorf("%w: %v has no %s child", ErrInvalidRotation, x, child)
	}
	*slot = top
	return work, nil
}

// slot returns the link owning the node which holds x, or nil if x is not in
// the tree. For the root this is the tree's root link, for any other node the
// child link of its parent; callers relink both the same way.
func (t *Tree[T]) slot(x T) **node[T] {
	link := &t.root
	for *link != nil {
		c := t.compare(x, (*link).element)
		if c == 0 {
			return link
		} else if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	return nil
}

// rotateRight rotates the subtree rooted at n and returns its new root.
func rotateRight[T any](n *node[T]) *node[T] {
	l := n.left
	if l == nil {
		return nil
	}
	n.left = l.right
	l.right = n
	return l
}

// rotateLeft rotates the subtree rooted at n and returns its new root.
func rotateLeft[T any](n *node[T]) *node[T] {
	r := n.right
	if r == nil {
		return nil
	}
	n.right = r.left
	r.left = n
	return r
}
