package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/rankbv"
)

// BoolTree is the boolean specialization of Tree described in §4.4: a
// relation where presence and value coincide, so L packs into a bit vector
// instead of a general slice (see bitLeafStore). It embeds *Tree[bool] and
// adds the boolean-flavored constructors plus Bits; every query and SetNull
// method is inherited unchanged.
type BoolTree struct {
	*Tree[bool]
}

func newBoolStore() leafStore[bool] { return &bitLeafStore{} }

// NewBoolTreeFromMatrix builds a BoolTree from a dense boolean matrix
// (§4.3.1), where true marks a present cell.
func NewBoolTreeFromMatrix(mat [][]bool, k int) (*BoolTree, error) {
	tr, err := NewFromMatrixWith(mat, k, false, newBoolStore)
	if err != nil {
		return nil, err
	}
	return &BoolTree{tr}, nil
}

// NewBoolTreeFromRowListsCursor builds a BoolTree from row-adjacency lists
// of present column indices (§4.3.2); each row's columns must be strictly
// increasing.
func NewBoolTreeFromRowListsCursor(rows [][]int, k int) (*BoolTree, error) {
	tr, err := NewFromRowListsCursorWith(toBoolColLists(rows), k, false, newBoolStore)
	if err != nil {
		return nil, err
	}
	return &BoolTree{tr}, nil
}

// NewBoolTreeFromRowListsQuadtree builds a BoolTree from row-adjacency
// lists of present column indices via the transient pointered quadtree
// builder (§4.3.3).
func NewBoolTreeFromRowListsQuadtree(rows [][]int, k int) (*BoolTree, error) {
	tr, err := NewFromRowListsQuadtreeWith(toBoolColLists(rows), k, false, newBoolStore)
	if err != nil {
		return nil, err
	}
	return &BoolTree{tr}, nil
}

// NewBoolTreeFromRowListsDynamic builds a BoolTree from row-adjacency lists
// of present column indices via the dynamic-bitmap builder (§4.3.4).
func NewBoolTreeFromRowListsDynamic(rows [][]int, k int) (*BoolTree, error) {
	tr, err := NewFromRowListsDynamicWith(toBoolColLists(rows), k, false, newBoolStore)
	if err != nil {
		return nil, err
	}
	return &BoolTree{tr}, nil
}

// NewBoolTreeFromPositions builds a BoolTree from an unordered list of
// present (row, col) positions via in-place counting sort (§4.3.5).
func NewBoolTreeFromPositions(positions []Position, k int) (*BoolTree, error) {
	triples := make([]Triple[bool], len(positions))
	for i, p := range positions {
		triples[i] = Triple[bool]{Row: p.Row, Col: p.Col, Value: true}
	}
	tr, err := NewFromTriplesWith(triples, k, false, newBoolStore)
	if err != nil {
		return nil, err
	}
	return &BoolTree{tr}, nil
}

// NewBoolTreeFromBits reconstructs a BoolTree directly from its raw T and L
// bit sequences (k, h as recorded alongside them), bypassing every
// builder. Used by the CLI and by tests to round-trip a tree through
// serialized form without re-deriving it from source data.
func NewBoolTreeFromBits(k, h int, tbits, lbits []bool) (*BoolTree, error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	if h < 1 {
		return nil, base.InvalidInputf("k2tree: h must be >= 1, got %s", base.Coord(h))
	}
	tr := &Tree[bool]{
		k:      k,
		h:      h,
		nPrime: powInt(k, h),
		null:   false,
		t:      rankbv.FromBits(tbits),
		leaves: &bitLeafStore{bv: rankbv.FromBits(lbits)},
	}
	return &BoolTree{tr}, nil
}

// Bits returns bt's raw T and L bit sequences, the dual of
// NewBoolTreeFromBits.
func (bt *BoolTree) Bits() (tbits, lbits []bool) {
	tr := bt.Tree
	tbits = make([]bool, tr.t.Len())
	for i := range tbits {
		tbits[i] = tr.t.Get(i)
	}
	n := tr.leaves.len()
	lbits = make([]bool, n)
	for i := range lbits {
		lbits[i] = tr.leaves.at(i)
	}
	return tbits, lbits
}

func toBoolColLists(rows [][]int) [][]ColValue[bool] {
	lists := make([][]ColValue[bool], len(rows))
	for i, cols := range rows {
		row := make([]ColValue[bool], len(cols))
		for j, c := range cols {
			row[j] = ColValue[bool]{Col: c, Value: true}
		}
		lists[i] = row
	}
	return lists
}
