package bst

import (
	"iter"

	"github.com/goose-lang/std"

	"github.com/GavinDunnett/cs3345-project-2/container"
)

// walk visits the nodes under n in pre-order (the node, then its left
// subtree, then its right subtree) until visit returns false. It uses an
// explicit stack, so arbitrarily deep trees are fine.
//
// visit may swap the node's children; whatever children the node has after
// visit returns are the ones walked next.
func walk[T any](n *node[T], visit func(*node[T]) bool) {
	if n == nil {
		return
	}
	stack := container.NewStack[*node[T]]()
	stack.Push(n)
	for {
		m, ok := stack.Pop()
		if !ok {
			return
		}
		if !visit(m) {
			return
		}
		if m.right != nil {
			stack.Push(m.right)
		}
		if m.left != nil {
			stack.Push(m.left)
		}
	}
}

// All returns an iterator over the tree's values in sorted order. The
// iterator reads the tree when it is run, so it can be run again after the
// tree changes. The tree must not be modified during iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := container.NewStack[*node[T]]()
		n := t.root
		for {
			for n != nil {
				stack.Push(n)
				n = n.left
			}
			top, ok := stack.Pop()
			if !ok {
				return
			}
			if !yield(top.value) {
				return
			}
			n = top.right
		}
	}
}

// InOrder is All for callers that need to tell an empty tree apart: ok is
// false, and seq nil, when the tree has no elements.
func (t *Tree[T]) InOrder() (seq iter.Seq[T], ok bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.All(), true
}

// Levels returns the values breadth first, one slice per depth starting at
// the root. It fails with ErrEmptyTree on an empty tree.
func (t *Tree[T]) Levels() ([][]T, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTree
	}
	levels := make([][]T, 0, height(t.root)+1)
	var level []T

	// a nil entry marks the end of a level
	q := container.NewQueue[*node[T]]()
	q.Push(t.root)
	q.Push(nil)
	for {
		n, _ := q.Pop()
		if n != nil {
			level = append(level, n.value)
			if n.left != nil {
				q.Push(n.left)
			}
			if n.right != nil {
				q.Push(n.right)
			}
			continue
		}
		levels = append(levels, level)
		level = nil
		if q.IsEmpty() {
			break
		}
		q.Push(nil)
	}
	return levels, nil
}

func (t *Tree[T]) NodeCount() uint64 {
	var count = uint64(0)
	walk(t.root, func(*node[T]) bool {
		count = std.SumAssumeNoOverflow(count, 1)
		return true
	})
	return count
}

// IsFull reports whether every node has either no children or two. It fails
// with ErrEmptyTree on an empty tree rather than answering vacuously.
func (t *Tree[T]) IsFull() (bool, error) {
	if t.IsEmpty() {
		return false, ErrEmptyTree
	}
	return isFull(t.root), nil
}

// isFull treats an empty subtree as full.
func isFull[T any](n *node[T]) bool {
	var full = true
	walk(n, func(m *node[T]) bool {
		if (m.left == nil) != (m.right == nil) {
			full = false
		}
		return full
	})
	return full
}
