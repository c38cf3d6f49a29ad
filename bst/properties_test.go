package bst_test

import (
	"slices"
	"testing"

	"github.com/GavinDunnett/cs3345-project-2/bst"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

type op struct {
	insert bool
	value  int
}

// keep values small so removes and duplicate inserts actually hit
func opGenerator() *rapid.Generator[op] {
	return rapid.Custom(func(t *rapid.T) op {
		return op{
			insert: rapid.Float64Range(0, 1).Draw(t, "p") < 0.7,
			value:  rapid.IntRange(0, 50).Draw(t, "value"),
		}
	})
}

func valuesGenerator() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 40)
}

func TestOrderingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		ops := rapid.SliceOfN(opGenerator(), 0, 60).Draw(t, "ops")

		tree := bst.New[int]()
		model := make(map[int]struct{})
		for _, o := range ops {
			if o.insert {
				tree.Insert(o.value)
				model[o.value] = struct{}{}
			} else {
				tree.Remove(o.value)
				delete(model, o.value)
			}
		}

		var expected []int
		for v := range model {
			expected = append(expected, v)
		}
		slices.Sort(expected)

		// strictly increasing, so sorted without duplicates
		got := slices.Collect(tree.All())
		assert.Equal(len(expected), len(got))
		if len(expected) > 0 {
			assert.Equal(expected, got)
		}
		assert.Equal(uint64(len(model)), tree.NodeCount())
		assert.Equal(len(model) == 0, tree.IsEmpty())
	})
}

func TestInsertIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		x := rapid.IntRange(-100, 100).Draw(t, "x")

		tree := build(values...)
		tree.Insert(x)
		count := tree.NodeCount()
		order := slices.Collect(tree.All())
		shape := tree.Copy()

		tree.Insert(x)
		assert.Equal(count, tree.NodeCount())
		assert.Equal(order, slices.Collect(tree.All()))
		assert.True(tree.Equals(shape))
	})
}

func TestRemoveProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 1, 40).Draw(t, "values")
		tree := build(values...)

		x := rapid.SampledFrom(values).Draw(t, "x")
		count := tree.NodeCount()
		tree.Remove(x)
		assert.False(tree.Contains(x))
		assert.Equal(count-1, tree.NodeCount())
		assert.True(slices.IsSorted(slices.Collect(tree.All())))

		// a value that was never inserted
		absent := 1000
		before := tree.Copy()
		tree.Remove(absent)
		assert.True(tree.Equals(before))
	})
}

func TestCopyProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := valuesGenerator().Draw(t, "values")
		tree := build(values...)
		count := tree.NodeCount()
		contents := slices.Collect(tree.All())

		c := tree.Copy()
		assert.True(c.Equals(tree))
		assert.True(c.CompareStructure(tree))

		for _, v := range rapid.SliceOfN(rapid.IntRange(-200, 200), 0, 20).Draw(t, "mutations") {
			if v%2 == 0 {
				c.Insert(v)
			} else {
				c.Remove(v)
			}
		}
		for _, v := range values {
			c.Remove(v)
		}
		assert.Equal(count, tree.NodeCount())
		assert.Equal(contents, slices.Collect(tree.All()))
	})
}

func TestMirrorProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		tree := build(valuesGenerator().Draw(t, "values")...)

		m := tree.Mirror()
		assert.True(tree.IsMirror(m))
		assert.Equal(tree.NodeCount(), m.NodeCount())

		back := m.Mirror()
		assert.True(back.CompareStructure(tree))
		assert.True(back.Equals(tree))

		in := slices.Collect(tree.All())
		slices.Reverse(in)
		assert.Equal(in, slices.Collect(m.All()))
	})
}

func TestRotationRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		values := rapid.SliceOfN(rapid.IntRange(-100, 100), 2, 40).Filter(func(vs []int) bool {
			return slices.ContainsFunc(vs, func(v int) bool { return v < vs[0] })
		}).Draw(t, "values")

		// the root is the first value and its left child the first smaller one
		root := values[0]
		left := values[slices.IndexFunc(values, func(v int) bool { return v < root })]

		tree := build(values...)
		orig := tree.Copy()
		if !assert.NoError(tree.RotateRight(left)) {
			return
		}
		assert.Equal(orig.NodeCount(), tree.NodeCount())
		assert.True(slices.IsSorted(slices.Collect(tree.All())))
		lv, _ := tree.Levels()
		assert.Equal(left, lv[0][0])

		assert.NoError(tree.RotateLeft(root))
		assert.True(tree.Equals(orig))
	})
}
