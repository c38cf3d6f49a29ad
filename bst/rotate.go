package bst

import "fmt"

// findParent returns the slot (the root field or a child field of the
// grandparent) holding the node a rotation for x pivots on. That is the
// parent of the node holding x, or the root itself when x is the root's
// value. It fails with ErrNotFound when the descent reaches a nil branch.
//
// Each node's children are checked for x before comparing against the node,
// so a parent is found without descending into the child.
func (t *Tree[T]) findParent(x T) (**node[T], error) {
	slot := &t.root
	for *slot != nil {
		n := *slot
		if t.holds(n.left, x) || t.holds(n.right, x) {
			return slot, nil
		}
		c := t.compare(x, n.value)
		if c < 0 {
			slot = &n.left
		} else if c > 0 {
			slot = &n.right
		} else {
			return slot, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrNotFound, x)
}

func (t *Tree[T]) holds(n *node[T], x T) bool {
	return n != nil && t.compare(n.value, x) == 0
}

// RotateRight performs a single right rotation at the parent of x, which
// must be that parent's left child. If x is the root's value the rotation
// is at the root, pivoting on its left child. The parent becomes the right
// child of the pivot, and the pivot takes the parent's place.
//
// The rotation keeps the tree ordered when used as described, but it does
// not check ordering; it is the caller's job to apply it sensibly.
//
// Errors: ErrEmptyTree, ErrNotFound if x is absent, ErrInvalidRotation if
// the pivot is missing or x is not a left child.
func (t *Tree[T]) RotateRight(x T) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	slot, err := t.findParent(x)
	if err != nil {
		return err
	}
	parent := *slot
	if t.holds(parent, x) {
		if parent.left == nil {
			return fmt.Errorf("%w: %v has no left child", ErrInvalidRotation, x)
		}
	} else if !t.holds(parent.left, x) {
		return fmt.Errorf("%w: %v is not a left child", ErrInvalidRotation, x)
	}
	pivot := parent.left
	parent.left = pivot.right
	pivot.right = parent
	*slot = pivot
	return nil
}

// RotateLeft is the mirror image of RotateRight: x must be a right child
// (or the root, pivoting on its right child).
func (t *Tree[T]) RotateLeft(x T) error {
	if t.IsEmpty() {
		return ErrEmptyTree
	}
	slot, err := t.findParent(x)
	if err != nil {
		return err
	}
	parent := *slot
	if t.holds(parent, x) {
		if parent.right == nil {
			return fmt.Errorf("%w: %v has no right child", ErrInvalidRotation, x)
		}
	} else if !t.holds(parent.right, x) {
		return fmt.Errorf("%w: %v is not a right child", ErrInvalidRotation, x)
	}
	pivot := parent.right
	parent.right = pivot.left
	pivot.left = parent
	*slot = pivot
	return nil
}
