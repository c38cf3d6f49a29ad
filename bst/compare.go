package bst

import "github.com/GavinDunnett/cs3345-project-2/container"

type nodePair[T any] struct {
	a *node[T]
	b *node[T]
}

// zipWalk walks a and b in lockstep and reports whether they have the same
// shape and match accepts every pair of corresponding nodes.
func zipWalk[T any](a, b *node[T], match func(x, y *node[T]) bool) bool {
	stack := container.NewStack[nodePair[T]]()
	stack.Push(nodePair[T]{a: a, b: b})
	for {
		p, ok := stack.Pop()
		if !ok {
			return true
		}
		if p.a == nil && p.b == nil {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if !match(p.a, p.b) {
			return false
		}
		stack.Push(nodePair[T]{a: p.a.right, b: p.b.right})
		stack.Push(nodePair[T]{a: p.a.left, b: p.b.left})
	}
}

// CompareStructure reports whether t and other have the same shape,
// ignoring the values stored in them.
func (t *Tree[T]) CompareStructure(other *Tree[T]) bool {
	return zipWalk(t.root, other.root, func(_, _ *node[T]) bool {
		return true
	})
}

// Equals reports whether t and other have the same shape and equal values at
// every position. Values are compared with t's ordering.
func (t *Tree[T]) Equals(other *Tree[T]) bool {
	return zipWalk(t.root, other.root, func(x, y *node[T]) bool {
		return t.compare(x.value, y.value) == 0
	})
}

// Copy returns an independent tree holding the same values. It inserts them
// in pre-order, so a correctly ordered tree is reproduced with the same
// shape.
func (t *Tree[T]) Copy() *Tree[T] {
	c := NewFunc(t.compare)
	walk(t.root, func(n *node[T]) bool {
		c.Insert(n.value)
		return true
	})
	return c
}

// Mirror returns a copy of t with the children of every node swapped.
//
// The mirror is ordered largest-first: it is a search tree under the reverse
// of t's ordering, which is what it uses for further operations. In
// particular t.Mirror().Mirror() has t's shape, values and ordering.
func (t *Tree[T]) Mirror() *Tree[T] {
	m := t.Copy()
	walk(m.root, func(n *node[T]) bool {
		n.left, n.right = n.right, n.left
		return true
	})
	m.compare = reverse(t.compare)
	return m
}

func reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// IsMirror reports whether other is the mirror image of t, in both shape and
// values.
func (t *Tree[T]) IsMirror(other *Tree[T]) bool {
	m := t.Mirror()
	return m.CompareStructure(other) && m.Equals(other)
}
