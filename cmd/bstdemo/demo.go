package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/GavinDunnett/cs3345-project-2/bst"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "run every tree operation on two sample trees",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "a",
			Usage: "insertion order of tree (a)",
			Value: cli.NewIntSlice(20, 10, 30, 8, 12, 28, 32, 7, 9, 11, 13, 27, 29, 31, 33),
		},
		&cli.IntSliceFlag{
			Name:  "b",
			Usage: "insertion order of tree (b)",
			Value: cli.NewIntSlice(10, 15, 5, 4, 6, 14, 16, 3, 7, 13, 17),
		},
	},
	Action: runDemo,
}

type namedTree struct {
	name string
	tree *bst.Tree[int]
}

func section(w io.Writer, title, desc string) {
	fmt.Fprintf(w, "\n%s\n\t%s\n", title, desc)
}

func printTitled(w io.Writer, title string, tree *bst.Tree[int]) error {
	fmt.Fprintln(w, title)
	return tree.PrintLevels(w)
}

func runDemo(cctx *cli.Context) error {
	w := cctx.App.Writer
	valuesA := cctx.IntSlice("a")
	if len(valuesA) == 0 || len(cctx.IntSlice("b")) == 0 {
		return fmt.Errorf("both sample trees need at least one value")
	}
	a := namedTree{"a", buildTree(valuesA)}
	b := namedTree{"b", buildTree(cctx.IntSlice("b"))}
	trees := []namedTree{a, b}

	for _, t := range trees {
		fmt.Fprintln(w)
		if err := printTitled(w, fmt.Sprintf("Tree (%s)", t.name), t.tree); err != nil {
			return err
		}
	}

	section(w, "a) nodeCount", "Counts the nodes of the tree.")
	for _, t := range trees {
		fmt.Fprintf(w, "Node count of (%s)\n%d\n", t.name, t.tree.NodeCount())
	}

	section(w, "b) isFull", "A full tree has every node as either a leaf or a parent with two children.")
	for _, t := range trees {
		full, err := t.tree.IsFull()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Is tree (%s) full?\n%t\n", t.name, full)
	}

	section(w, "c) compareStructure", "Compares the shape of two trees, ignoring their values.")
	fmt.Fprintf(w, "tree (a) compared to tree (a)?\n%t\n", a.tree.CompareStructure(a.tree))
	fmt.Fprintf(w, "tree (a) compared to tree (b)?\n%t\n", a.tree.CompareStructure(b.tree))

	section(w, "d) equals", "Compares shape and values of two trees.")
	fmt.Fprintf(w, "(a) equals (a)?\n%t\n", a.tree.Equals(a.tree))
	fmt.Fprintf(w, "(a) equals (b)?\n%t\n", a.tree.Equals(b.tree))

	section(w, "e) copy", "Creates an independent copy of the tree.")
	for _, t := range trees {
		if err := printTitled(w, fmt.Sprintf("copy of tree (%s)", t.name), t.tree.Copy()); err != nil {
			return err
		}
	}

	section(w, "f) mirror", "Creates the mirror image of the tree.")
	mirrors := make([]*bst.Tree[int], len(trees))
	for i, t := range trees {
		mirrors[i] = t.tree.Mirror()
		if err := printTitled(w, fmt.Sprintf("mirror of tree (%s)", t.name), mirrors[i]); err != nil {
			return err
		}
	}

	section(w, "g) isMirror", "Checks whether a tree is the mirror image of another.")
	for i, t := range trees {
		fmt.Fprintf(w, "Is (%s) a mirror of (mirrorOf%s)?\n%t\n", t.name, t.name, t.tree.IsMirror(mirrors[i]))
		fmt.Fprintf(w, "Is (%s) a mirror of (%s)?\n%t\n", t.name, t.name, t.tree.IsMirror(t.tree))
	}

	// rotate the root of (a) right, then rotate the new root back left
	root := valuesA[0]
	section(w, "h) rotateRight", "Performs a single rotation on the node having the passed value.")
	fmt.Fprintf(w, "Rotate %d right\n", root)
	if err := a.tree.RotateRight(root); err != nil {
		return fmt.Errorf("rotating %d right: %w", root, err)
	}
	if err := a.tree.PrintLevels(w); err != nil {
		return err
	}

	levels, err := a.tree.Levels()
	if err != nil {
		return err
	}
	newRoot := levels[0][0]
	section(w, "i) rotateLeft", "Performs a single rotation on the node having the passed value.")
	fmt.Fprintf(w, "Rotate %d left\n", newRoot)
	if err := a.tree.RotateLeft(newRoot); err != nil {
		return fmt.Errorf("rotating %d left: %w", newRoot, err)
	}
	if err := a.tree.PrintLevels(w); err != nil {
		return err
	}

	slog.Info("demo finished", "nodesA", a.tree.NodeCount(), "nodesB", b.tree.NodeCount())
	return nil
}
