package bstree

// Copy returns a deep copy of the tree. The copy shares no nodes with t;
// subsequent changes to either tree are not visible in the other one.
//
// Copying an empty tree yields a new empty tree, copying a nil tree yields nil.
func (t *Tree[T]) Copy() *Tree[T] {
	if t == nil {
		return nil
	}
	c := t.empty()
	if t.IsEmpty() {
		tracer().Debugf("bstree: copy of empty tree")
		return c
	}
	c.root = copyNode(t.root)
	return c
}

func copyNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		element: n.element,
		left:    copyNode(n.left),
		right:   copyNode(n.right),
	}
}

// Mirror returns a new tree with the left and right subtrees of every node
// exchanged.
//
// The mirrored tree is not a search tree under t's order: its in-order
// sequence is descending. It is ordered by the reverse of t's comparison
// instead, so search and insertion on the result stay consistent.
// Mirroring the result again restores t's order. The mirror of a nil tree
// is nil.
func (t *Tree[T]) Mirror() *Tree[T] {
	if t == nil {
		return nil
	}
	m := &Tree[T]{order: t.order, reversed: !t.reversed}
	if t.IsEmpty() {
		tracer().Debugf("bstree: mirror of empty tree")
		return m
	}
	m.root = mirrorNode(t.root)
	return m
}

func mirrorNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		element: n.element,
		left:    mirrorNode(n.right),
		right:   mirrorNode(n.left),
	}
}

// IsMirror reports whether other is the mirror image of t: at every level
// the shape of other is t's shape with left and right exchanged, and mirrored
// positions hold equal elements. Two empty trees mirror each other; an empty
// tree never mirrors a non-empty one.
func (t *Tree[T]) IsMirror(other *Tree[T]) bool {
	if t.IsEmpty() || other.IsEmpty() {
		return t.IsEmpty() && other.IsEmpty()
	}
	if t.compare(t.root.element, other.root.element) != 0 {
		return false
	}
	return t.mirrored(t.root, other.root)
}

func (t *Tree[T]) mirrored(a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if t.compare(a.element, b.element) != 0 {
		return false
	}
	return t.mirrored(a.left, b.right) && t.mirrored(a.right, b.left)
}
