package k2tree

import (
	"slices"

	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/dynbits"
	"github.com/postfix/k2trees/internal/rankbv"
)

// NewFromRowListsDynamic builds a Tree from row-adjacency lists via dynamic
// bitmaps (§4.3.4): T and L are grown directly, one present triple at a
// time, using a dynamic-rank bit vector (internal/dynbits) for T and a
// manually spliced slice for L.
func NewFromRowListsDynamic[E comparable](lists [][]ColValue[E], k int, null E) (*Tree[E], error) {
	return NewFromRowListsDynamicWith(lists, k, null, func() leafStore[E] {
		return &sliceLeafStore[E]{null: null}
	})
}

// NewFromRowListsDynamicWith is NewFromRowListsDynamic generalized over the
// leaf store implementation, letting BoolTree's constructors reuse this
// validation and construction logic with a bitLeafStore.
func NewFromRowListsDynamicWith[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	if err := validateRowLists(lists); err != nil {
		return nil, err
	}
	return buildFromListsDynamicCore(lists, k, null, newStore)
}

func buildFromListsDynamicCore[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	numRows := len(lists)
	maxExtent := numRows
	if maxCol := maxColOf(lists); maxCol+1 > maxExtent {
		maxExtent = maxCol + 1
	}
	h := heightFor(maxExtent, k)
	nPrime := powInt(k, h)
	leaves := newStore()

	if h == 1 {
		// Special case per spec §4.3.4: L is a single k² block; if it
		// ends up all-null, shrink it back to empty.
		block := make([]E, k*k)
		for i := range block {
			block[i] = null
		}
		for i, row := range lists {
			for _, cv := range row {
				if cv.Value == null {
					continue
				}
				block[i*k+cv.Col] = cv.Value
			}
		}
		if !allNull(block, null) {
			leaves.appendBlock(block)
		}
		leaves.freeze()
		return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(nil), leaves: leaves}, nil
	}

	td := dynbits.New()
	var l []E
	started := false

	var insert func(n, p, q int, val E, z, level int)
	insert = func(n, p, q int, val E, z, level int) {
		childSide := n / k
		if !td.Get(z) {
			td.Set(z, true)
			y := td.Rank1(z+1)*k*k + (p/childSide)*k + q/childSide
			if level+1 == h {
				blockAt := td.Rank1(z+1)*k*k - td.Len()
				block := make([]E, k*k)
				for i := range block {
					block[i] = null
				}
				l = slices.Insert(l, blockAt, block...)
				l[y-td.Len()] = val
			} else {
				td.InsertBlock(td.Rank1(z+1)*k*k, k*k)
				insert(childSide, p%childSide, q%childSide, val, y, level+1)
			}
			return
		}
		y := td.Rank1(z+1)*k*k + (p/childSide)*k + q/childSide
		if level+1 == h {
			l[y-td.Len()] = val
		} else {
			insert(childSide, p%childSide, q%childSide, val, y, level+1)
		}
	}

	n := nPrime / k
	for i, row := range lists {
		for _, cv := range row {
			if cv.Value == null {
				continue
			}
			if !started {
				td.InsertBlock(0, k*k)
				started = true
			}
			z := (i/n)*k + cv.Col/n
			insert(n, i%n, cv.Col%n, cv.Value, z, 1)
		}
	}

	if !started {
		leaves.freeze()
		return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(nil), leaves: leaves}, nil
	}

	leaves.appendBlock(l)
	leaves.freeze()
	return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(td.Bits()), leaves: leaves}, nil
}
