// Package bst implements an unbalanced binary search tree, together with a
// handful of structural operations on it: counting, fullness, shape and value
// comparison, deep copies, mirror images and raw single rotations.
//
// A Tree is not safe for concurrent use. One goroutine may mutate it at a
// time, and no other operation may run while it does.
package bst

import (
	"cmp"

	"github.com/goose-lang/primitive"

	"github.com/GavinDunnett/cs3345-project-2/container"
)

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree without duplicates. Every value in a node's
// left subtree is smaller than the node's value and every value in its right
// subtree is larger, except after a rotation that the caller misapplied.
type Tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order: negative when a < b, zero when they are equal, positive when a > b.
// Values are equal exactly when compare returns zero.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// Insert adds x to the tree. Duplicates are ignored.
func (t *Tree[T]) Insert(x T) {
	slot := &t.root
	for *slot != nil {
		n := *slot
		c := t.compare(x, n.value)
		if c < 0 {
			slot = &n.left
		} else if c > 0 {
			slot = &n.right
		} else {
			// x is already present
			return
		}
	}
	*slot = &node[T]{value: x}
}

// Remove deletes x from the tree. Nothing is done if x is not present.
func (t *Tree[T]) Remove(x T) {
	slot := t.search(x)
	if slot == nil {
		return
	}
	n := *slot
	if n.left != nil && n.right != nil {
		// take over the smallest value of the right subtree and remove
		// that node instead
		succ := &n.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		n.value = (*succ).value
		slot = succ
	}
	splice(slot)
}

// splice replaces the node held in slot by its only child, or by nothing if
// it is a leaf.
func splice[T any](slot **node[T]) {
	n := *slot
	primitive.Assert(n.left == nil || n.right == nil)
	if n.left != nil {
		*slot = n.left
	} else {
		*slot = n.right
	}
}

// search returns the slot (the root field or a parent's child field) holding
// the node with value x, or nil if there is none.
func (t *Tree[T]) search(x T) **node[T] {
	slot := &t.root
	for *slot != nil {
		n := *slot
		c := t.compare(x, n.value)
		if c < 0 {
			slot = &n.left
		} else if c > 0 {
			slot = &n.right
		} else {
			return slot
		}
	}
	return nil
}

func (t *Tree[T]) Contains(x T) bool {
	return t.search(x) != nil
}

// FindMin returns the smallest value in the tree, or ErrEmptyTree.
func (t *Tree[T]) FindMin() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return minNode(t.root).value, nil
}

// FindMax returns the largest value in the tree, or ErrEmptyTree.
func (t *Tree[T]) FindMax() (T, error) {
	if t.IsEmpty() {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxNode(t.root).value, nil
}

// minNode returns nil for an empty subtree; callers must check.
func minNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// MakeEmpty drops every element.
func (t *Tree[T]) MakeEmpty() {
	t.root = nil
}

// height returns -1 for an empty subtree, otherwise the number of edges on
// the longest path from n down to a leaf.
func height[T any](n *node[T]) int {
	var h = -1
	if n == nil {
		return h
	}
	q := container.NewQueue[*node[T]]()
	q.Push(n)
	for !q.IsEmpty() {
		h++
		// drain exactly one level
		for i := q.Len(); i > 0; i-- {
			m, _ := q.Pop()
			if m.left != nil {
				q.Push(m.left)
			}
			if m.right != nil {
				q.Push(m.right)
			}
		}
	}
	return h
}
