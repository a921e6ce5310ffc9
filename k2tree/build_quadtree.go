package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/quadnode"
	"github.com/postfix/k2trees/internal/rankbv"
)

// NewFromRowListsQuadtree builds a Tree from row-adjacency lists via a
// transient pointered quadtree (§4.3.3): every present triple is inserted
// into a mutable quadtree (internal/quadnode), which is then flattened by a
// breadth-first traversal into T and L and discarded.
func NewFromRowListsQuadtree[E comparable](lists [][]ColValue[E], k int, null E) (*Tree[E], error) {
	return NewFromRowListsQuadtreeWith(lists, k, null, func() leafStore[E] {
		return &sliceLeafStore[E]{null: null}
	})
}

// NewFromRowListsQuadtreeWith is NewFromRowListsQuadtree generalized over
// the leaf store implementation, letting BoolTree's constructors reuse this
// validation and construction logic with a bitLeafStore.
func NewFromRowListsQuadtreeWith[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	if k < 2 {
		return nil, base.InvalidInputf("k2tree: k must be >= 2, got %s", base.Coord(k))
	}
	if err := validateRowLists(lists); err != nil {
		return nil, err
	}
	return buildFromListsQuadtreeCore(lists, k, null, newStore)
}

func buildFromListsQuadtreeCore[E comparable](lists [][]ColValue[E], k int, null E, newStore func() leafStore[E]) (*Tree[E], error) {
	numRows := len(lists)
	maxExtent := numRows
	if maxCol := maxColOf(lists); maxCol+1 > maxExtent {
		maxExtent = maxCol + 1
	}
	h := heightFor(maxExtent, k)
	nPrime := powInt(k, h)

	arena := quadnode.NewArena[E]()
	root := quadnode.NilRef
	for i, row := range lists {
		for _, cv := range row {
			if cv.Value == null {
				continue
			}
			root = quadnode.Insert(arena, root, k, h, i, cv.Col, cv.Value)
		}
	}

	leaves := newStore()
	var tbits []bool

	if root != quadnode.NilRef {
		type queued struct {
			ref   quadnode.Ref
			level int
		}
		queue := []queued{{ref: root, level: 1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			node := arena.At(cur.ref)

			if cur.level == h {
				// This node's k² children are leaf cells: emit one
				// fixed-size value block directly into L (absent
				// slots become null), without touching T at all —
				// T only ever encodes presence of INTERNAL nodes.
				block := make([]E, node.NumChildren())
				for idx := 0; idx < node.NumChildren(); idx++ {
					child := node.Child(idx)
					if child == quadnode.NilRef {
						block[idx] = null
					} else {
						block[idx] = arena.At(child).Value()
					}
				}
				leaves.appendBlock(block)
				continue
			}

			for idx := 0; idx < node.NumChildren(); idx++ {
				child := node.Child(idx)
				tbits = append(tbits, child != quadnode.NilRef)
				if child != quadnode.NilRef {
					queue = append(queue, queued{ref: child, level: cur.level + 1})
				}
			}
		}
	}

	leaves.freeze()
	return &Tree[E]{k: k, h: h, nPrime: nPrime, null: null, t: rankbv.FromBits(tbits), leaves: leaves}, nil
}
