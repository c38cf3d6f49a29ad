package bst

import "errors"

var (
	// ErrEmptyTree is returned by operations that have no meaning on a tree
	// without elements.
	ErrEmptyTree = errors.New("bst: tree is empty")

	ErrNotFound = errors.New("bst: value not in tree")

	// ErrInvalidRotation is returned when the node named by a rotation does
	// not have the child the rotation pivots on.
	ErrInvalidRotation = errors.New("bst: invalid rotation")
)
