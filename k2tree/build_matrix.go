package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/rankbv"
)

// NewFromMatrix builds a Tree from a dense rectangular matrix (§4.3.1). All
// rows of mat must have equal length; a ragged matrix is a caller error
// (base.ErrInvalidInput).
func NewFromMatrix[E comparable](mat [][]E, k int, null E) (*Tree[E], error) {
	return NewFromMatrixWith(mat, k, null, func() leafStore[E] {
		return &sliceLeafStore[E]{null: null}
	})
}

// NewFromMatrixWith is NewFromMatrix generalized over the leaf store
// implementation, letting BoolTree's constructors reuse this validation and
// construction logic with a bitLeafStore in place of a sliceLeafStore.
func NewFromMatrixWith[E comparable](mat [][]E, k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	numCols := 0
	if len(mat) > 0 {
		numCols = len(mat[0])
	}
	for r, row := range mat {
		if len(row) != numCols {
			return nil, base.InvalidInputf("k2tree: matrix row %s has length %s, want %s", base.Coord(r), base.Coord(len(row)), base.Coord(numCols))
		}
	}
	return buildFromMatrixCore(mat, k, null, newStore)
}

// buildFromMatrixCore implements the recursive post-order construction
// shared by the general and boolean matrix builders: for each subdivision,
// recurse to the leaf level (emitting a k² value block, eliding it if
// entirely null) or collect the k children's presence bits (eliding the
// whole level-buffer append if all zero). Grounded on buildFromMatrix in
// the original source (Brisaboa et al. §3.3.1 / Algorithm 1).
//
// T is assembled from h-1 level buffers (levels 1..h-1); leaf blocks are
// appended straight to L rather than to an h-th buffer.
// buildFromListsCursorCore uses the same buffer shape.
func buildFromMatrixCore[E comparable](mat [][]E, k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	numRows := len(mat)
	numCols := 0
	if numRows > 0 {
		numCols = len(mat[0])
	}
	maxExtent := numRows
	if numCols > maxExtent {
		maxExtent = numCols
	}
	h := heightFor(maxExtent, k)
	nPrime := powInt(k, h)

	levels := make([][]bool, h-1)
	leaves := newStore()

	var recur func(n, level, p, q int) bool
	recur = func(n, level, p, q int) bool {
		if level == h {
			block := make([]E, k*k)
			for i := 0; i < k; i++ {
				for j := 0; j < k; j++ {
					idx := i*k + j
					if p+i < numRows && q+j < numCols {
						block[idx] = mat[p+i][q+j]
					} else {
						block[idx] = null
					}
				}
			}
			if allNull(block, null) {
				return false
			}
			leaves.appendBlock(block)
			return true
		}
		c := make([]bool, k*k)
		any := false
		childSide := n / k
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				present := recur(childSide, level+1, p+i*childSide, q+j*childSide)
				c[i*k+j] = present
				any = any || present
			}
		}
		if !any {
			return false
		}
		levels[level-1] = append(levels[level-1], c...)
		return true
	}
	recur(nPrime, 1, 0, 0)
	leaves.freeze()

	var tbits []bool
	for _, lvl := range levels {
		tbits = append(tbits, lvl...)
	}
	return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(tbits), leaves: leaves}, nil
}
