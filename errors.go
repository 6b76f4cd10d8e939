package bstree

import "errors"

var (
	// ErrUnderflow signals a query for the minimum or maximum of an empty tree.
	ErrUnderflow = errors.New("bstree: underflow")
	// ErrInvalidRotation signals that a rotation could not be performed: the
	// target element is not in the tree or lacks the child to promote.
	ErrInvalidRotation = errors.New("bstree: rotation not applicable")
	// ErrUndefinedOnEmpty signals a structural predicate applied to an empty
	// tree. It is distinct from a result of false.
	ErrUndefinedOnEmpty = errors.New("bstree: undefined on empty tree")
)
