package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/GavinDunnett/cs3345-project-2/container"
)

const emptyTree = "Empty tree"

// PrintTree writes the values in sorted order on one line, separated by
// spaces, or "Empty tree" if there are none.
func (t *Tree[T]) PrintTree(w io.Writer) error {
	seq, ok := t.InOrder()
	if !ok {
		_, err := fmt.Fprintln(w, emptyTree)
		return err
	}
	var sb strings.Builder
	var sep = ""
	for v := range seq {
		fmt.Fprintf(&sb, "%s%v", sep, v)
		sep = " "
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

// PrintLevels writes the tree breadth first, one line per level.
func (t *Tree[T]) PrintLevels(w io.Writer) error {
	levels, err := t.Levels()
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, level := range levels {
		for i, v := range level {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())
	return err
}

type branch[T any] struct {
	n   *node[T]
	out treeprint.Tree
}

// String draws the shape of the tree, marking each child as L or R so that
// single children and mirrored trees read unambiguously.
func (t *Tree[T]) String() string {
	if t.IsEmpty() {
		return emptyTree
	}
	out := treeprint.NewWithRoot(fmt.Sprint(t.root.value))
	stack := container.NewStack[branch[T]]()
	stack.Push(branch[T]{n: t.root, out: out})
	for {
		b, ok := stack.Pop()
		if !ok {
			break
		}
		if l := b.n.left; l != nil {
			stack.Push(branch[T]{n: l, out: b.out.AddBranch(fmt.Sprintf("L: %v", l.value))})
		}
		if r := b.n.right; r != nil {
			stack.Push(branch[T]{n: r, out: b.out.AddBranch(fmt.Sprintf("R: %v", r.value))})
		}
	}
	return out.String()
}
