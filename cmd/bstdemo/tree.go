package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/GavinDunnett/cs3345-project-2/bst"
)

var cmdSorted = &cli.Command{
	Name:      "sorted",
	Usage:     "print the values in sorted order",
	ArgsUsage: `<value>...`,
	Action:    runSorted,
}

var cmdLevels = &cli.Command{
	Name:      "levels",
	Usage:     "print the tree level by level",
	ArgsUsage: `<value>...`,
	Action:    runLevels,
}

var cmdShow = &cli.Command{
	Name:      "show",
	Usage:     "draw the shape of the tree",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "mirror",
			Usage: "draw the mirror image instead",
		},
	},
	Action: runShow,
}

var cmdRotate = &cli.Command{
	Name:      "rotate",
	Usage:     "rotate one node and print the resulting levels",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "right",
			Usage: "value of the left child to rotate right",
		},
		&cli.IntFlag{
			Name:  "left",
			Usage: "value of the right child to rotate left",
		},
	},
	Action: runRotate,
}

// treeFromArgs inserts every positional argument, in order, into a new tree.
func treeFromArgs(cctx *cli.Context) (*bst.Tree[int], error) {
	values := make([]int, 0, cctx.Args().Len())
	for _, arg := range cctx.Args().Slice() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid tree value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return buildTree(values), nil
}

func buildTree(values []int) *bst.Tree[int] {
	tree := bst.New[int]()
	for _, v := range values {
		tree.Insert(v)
	}
	slog.Debug("built tree", "inserted", len(values), "nodes", tree.NodeCount())
	return tree
}

func runSorted(cctx *cli.Context) error {
	tree, err := treeFromArgs(cctx)
	if err != nil {
		return err
	}
	return tree.PrintTree(cctx.App.Writer)
}

func runLevels(cctx *cli.Context) error {
	tree, err := treeFromArgs(cctx)
	if err != nil {
		return err
	}
	return tree.PrintLevels(cctx.App.Writer)
}

func runShow(cctx *cli.Context) error {
	tree, err := treeFromArgs(cctx)
	if err != nil {
		return err
	}
	if cctx.Bool("mirror") {
		tree = tree.Mirror()
	}
	_, err = fmt.Fprintln(cctx.App.Writer, tree.String())
	return err
}

func runRotate(cctx *cli.Context) error {
	if cctx.IsSet("right") == cctx.IsSet("left") {
		return fmt.Errorf("exactly one of --right or --left is required")
	}
	tree, err := treeFromArgs(cctx)
	if err != nil {
		return err
	}
	if cctx.IsSet("right") {
		x := cctx.Int("right")
		slog.Info("rotating right", "value", x)
		if err := tree.RotateRight(x); err != nil {
			return fmt.Errorf("rotating %d right: %w", x, err)
		}
	} else {
		x := cctx.Int("left")
		slog.Info("rotating left", "value", x)
		if err := tree.RotateLeft(x); err != nil {
			return fmt.Errorf("rotating %d left: %w", x, err)
		}
	}
	return tree.PrintLevels(cctx.App.Writer)
}
