package quadnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	a := NewArena[int]()
	root := NilRef
	// 4x4 matrix, k=2, h=2. Insert (0,0)=1, (3,3)=2, (1,2)=3.
	root = Insert(a, root, 2, 2, 0, 0, 1)
	root = Insert(a, root, 2, 2, 3, 3, 2)
	root = Insert(a, root, 2, 2, 1, 2, 3)

	lookup := func(i, j int) int {
		r := root
		level := 1
		ci, cj := i, j
		for {
			node := a.At(r)
			if node.IsLeaf() {
				return node.Value()
			}
			childSide := pow(2, 2-level)
			hi, hj := ci/childSide, cj/childSide
			idx := hi*2 + hj
			child := node.Child(idx)
			if child == NilRef {
				return 0
			}
			r = child
			ci, cj = ci%childSide, cj%childSide
			level++
		}
	}

	require.Equal(t, 1, lookup(0, 0))
	require.Equal(t, 2, lookup(3, 3))
	require.Equal(t, 3, lookup(1, 2))
	require.Equal(t, 0, lookup(2, 0))
}

func TestInsertSingleLevel(t *testing.T) {
	// h == 1: the root's children are leaf cells directly, since n' == k
	// and the whole matrix is exactly one k×k block.
	a := NewArena[string]()
	root := Insert(a, NilRef, 2, 1, 1, 0, "x")
	node := a.At(root)
	require.False(t, node.IsLeaf())
	child := a.At(node.Child(1*2 + 0))
	require.True(t, child.IsLeaf())
	require.Equal(t, "x", child.Value())
}

func TestOverwriteLastWriteWins(t *testing.T) {
	a := NewArena[int]()
	root := NilRef
	root = Insert(a, root, 2, 2, 0, 0, 10)
	root = Insert(a, root, 2, 2, 0, 0, 20)
	node := a.At(root)
	require.False(t, node.IsLeaf())
	mid := a.At(node.Child(0))
	require.False(t, mid.IsLeaf())
	leaf := a.At(mid.Child(0))
	require.True(t, leaf.IsLeaf())
	require.Equal(t, 20, leaf.Value())
}
