package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/rankbv"
)

// NewFromTriples builds a Tree from an unordered list of (row, col, value)
// triples via in-place counting sort (§4.3.5): a breadth-first traversal of
// subproblems, each one partitioned into its k² quadrants by a stable
// counting sort over the current triple range, bottoming out in one L block
// per non-empty leaf subproblem. Duplicate (row, col) triples are not
// rejected; because the sort is stable, whichever triple for a given cell
// sorts last (i.e. appeared last in the input) is the one left standing in
// the final block.
func NewFromTriples[E comparable](triples []Triple[E], k int, null E) (*Tree[E], error) {
	return NewFromTriplesWith(triples, k, null, func() leafStore[E] {
		return &sliceLeafStore[E]{null: null}
	})
}

// NewFromTriplesWith is NewFromTriples generalized over the leaf store
// implementation, letting BoolTree's constructor reuse this construction
// logic with a bitLeafStore.
func NewFromTriplesWith[E comparable](triples []Triple[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	return buildFromTriplesCore(triples, k, null, newStore)
}

type triplesSubproblem struct {
	firstRow, lastRow, firstCol, lastCol int
	left, right                          int // half-open index range into pairs
}

func quadrantKey[E any](t Triple[E], sp triplesSubproblem, width, k int) int {
	return ((t.Row-sp.firstRow)/width)*k + (t.Col-sp.firstCol)/width
}

func buildFromTriplesCore[E comparable](triples []Triple[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	pairs := make([]Triple[E], 0, len(triples))
	maxExtent := 0
	for _, t := range triples {
		if t.Value == null {
			continue
		}
		pairs = append(pairs, t)
		if t.Row+1 > maxExtent {
			maxExtent = t.Row + 1
		}
		if t.Col+1 > maxExtent {
			maxExtent = t.Col + 1
		}
	}
	h := heightFor(maxExtent, k)
	nPrime := powInt(k, h)
	leaves := newStore()

	if len(pairs) == 0 {
		leaves.freeze()
		return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(nil), leaves: leaves}, nil
	}

	var tbits []bool
	queue := []triplesSubproblem{{firstRow: 0, lastRow: nPrime - 1, firstCol: 0, lastCol: nPrime - 1, left: 0, right: len(pairs)}}

	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]
		side := sp.lastRow - sp.firstRow + 1

		if side > k {
			width := side / k
			sup := k * k
			starts, ends := countingSortRange(pairs, sp, width, k, sup)

			for q := 0; q < sup; q++ {
				if starts[q] >= ends[q] {
					tbits = append(tbits, false)
					continue
				}
				tbits = append(tbits, true)
				rowQ, colQ := q/k, q%k
				queue = append(queue, triplesSubproblem{
					firstRow: sp.firstRow + rowQ*width,
					lastRow:  sp.firstRow + (rowQ+1)*width - 1,
					firstCol: sp.firstCol + colQ*width,
					lastCol:  sp.firstCol + (colQ+1)*width - 1,
					left:     sp.left + starts[q],
					right:    sp.left + ends[q],
				})
			}
			continue
		}

		// Leaf subproblem: side == k. Non-empty by construction, since a
		// subproblem is only ever queued for a quadrant with starts < ends.
		block := make([]E, k*k)
		for i := range block {
			block[i] = null
		}
		for i := sp.left; i < sp.right; i++ {
			t := pairs[i]
			idx := (t.Row-sp.firstRow)*k + (t.Col - sp.firstCol)
			block[idx] = t.Value
		}
		leaves.appendBlock(block)
	}

	leaves.freeze()
	return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(tbits), leaves: leaves}, nil
}

// countingSortRange stably partitions pairs[sp.left:sp.right] in place by
// quadrant key (row-quadrant*k + col-quadrant, computed against sub-block
// side width) and returns, for each of the sup quadrants, its [start, end)
// offset range relative to sp.left within the now-reordered range.
func countingSortRange[E comparable](pairs []Triple[E], sp triplesSubproblem, width, k, sup int) (starts, ends []int) {
	counts := make([]int, sup)
	for i := sp.left; i < sp.right; i++ {
		counts[quadrantKey(pairs[i], sp, width, k)]++
	}

	starts = make([]int, sup)
	ends = make([]int, sup)
	total := 0
	for q := 0; q < sup; q++ {
		tmp := counts[q]
		counts[q] = total
		total += tmp
		starts[q] = counts[q]
		ends[q] = total
	}

	tmp := make([]Triple[E], sp.right-sp.left)
	for i := sp.left; i < sp.right; i++ {
		kq := quadrantKey(pairs[i], sp, width, k)
		tmp[counts[kq]] = pairs[i]
		counts[kq]++
	}
	for i := sp.left; i < sp.right; i++ {
		pairs[i] = tmp[i-sp.left]
	}

	return starts, ends
}
