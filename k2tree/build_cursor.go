package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/rankbv"
)

// NewFromRowListsCursor builds a Tree from row-adjacency lists using one
// cursor per row (§4.3.2): the same recursive post-order shape as
// NewFromMatrix, but cells are read lazily by advancing each row's cursor
// through its sorted (column, value) entries. Each row's entries must be
// sorted by column with no duplicate columns; violations are rejected as
// base.ErrInvalidInput.
func NewFromRowListsCursor[E comparable](lists [][]ColValue[E], k int, null E) (*Tree[E], error) {
	return NewFromRowListsCursorWith(lists, k, null, func() leafStore[E] {
		return &sliceLeafStore[E]{null: null}
	})
}

// NewFromRowListsCursorWith is NewFromRowListsCursor generalized over the
// leaf store implementation, letting BoolTree's constructors reuse this
// validation and construction logic with a bitLeafStore.
func NewFromRowListsCursorWith[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	if err := validateRowLists(lists); err != nil {
		return nil, err
	}
	return buildFromListsCursorCore(lists, k, null, newStore)
}

// validateRowLists checks that every row's entries are sorted strictly by
// column (implying no duplicates).
func validateRowLists[E any](lists [][]ColValue[E]) error {
	for r, row := range lists {
		prevCol := -1
		for _, cv := range row {
			if cv.Col <= prevCol {
				return base.InvalidInputf("k2tree: row %s's adjacency list is not strictly sorted by column at column %s", base.Coord(r), base.Coord(cv.Col))
			}
			prevCol = cv.Col
		}
	}
	return nil
}

func maxColOf[E any](lists [][]ColValue[E]) int {
	maxCol := -1
	for _, row := range lists {
		for _, cv := range row {
			if cv.Col > maxCol {
				maxCol = cv.Col
			}
		}
	}
	return maxCol
}

func buildFromListsCursorCore[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	numRows := len(lists)
	maxExtent := numRows
	if maxCol := maxColOf(lists); maxCol+1 > maxExtent {
		maxExtent = maxCol + 1
	}
	h := heightFor(maxExtent, k)
	nPrime := powInt(k, h)

	cursors := make([]int, numRows)
	levels := make([][]bool, h-1)
	leaves := newStore()

	var recur func(n, level, p, q int) bool
	recur = func(n, level, p, q int) bool {
		if level == h {
			block := make([]E, k*k)
			any := false
			for i := 0; i < k; i++ {
				row := p + i
				for j := 0; j < k; j++ {
					idx := i*k + j
					val := null
					if row < numRows && cursors[row] < len(lists[row]) && lists[row][cursors[row]].Col == q+j {
						val = lists[row][cursors[row]].Value
						cursors[row]++
					}
					block[idx] = val
					if val != null {
						any = true
					}
				}
			}
			if !any {
				return false
			}
			leaves.appendBlock(block)
			return true
		}
		c := make([]bool, k*k)
		anyChild := false
		childSide := n / k
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				present := recur(childSide, level+1, p+i*childSide, q+j*childSide)
				c[i*k+j] = present
				anyChild = anyChild || present
			}
		}
		if !anyChild {
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
