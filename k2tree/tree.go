package k2tree

import (
	"github.com/postfix/k2trees/internal/base"
	"github.com/postfix/k2trees/internal/rankbv"
)

// leafStore abstracts L's storage so the shared recursive descent code in
// query.go works identically over Tree[E]'s plain []E leaf array and
// BoolTree's packed rankbv.BitVector, per design note 9 of the spec this
// package implements (collapsing the element/boolean duplication into one
// generic core). Tree[E] holds the store as an interface value, so each
// leaf access is an interface method call.
type leafStore[E any] interface {
	// len returns the number of leaf entries currently stored.
	len() int
	// at returns the leaf value at position i.
	at(i int) E
	// present reports whether the leaf value at position i differs from
	// null (for sliceLeafStore) or is set (for bitLeafStore, where the
	// value itself doubles as the presence flag).
	present(i int) bool
	// appendBlock appends a k² block of leaf values, in row-major order
	// within the block, used by every builder once it decides a quadrant
	// is not all-null.
	appendBlock(vals []E)
	// freeze finalizes construction-time accumulation into the immutable
	// form used for queries (a no-op for sliceLeafStore; for
	// bitLeafStore, builds the rankbv.BitVector from the accumulated
	// bits).
	freeze()
	// setNull overwrites the leaf value at i with null. Dispatched through
	// the interface rather than a type switch over the concrete store, so
	// that Tree[E]'s generic methods never need to name bitLeafStore
	// (which only ever satisfies leafStore[bool], not leafStore[E] for
	// abstract E).
	setNull(i int, null E)
	// cloneStore returns an independent copy of the store.
	cloneStore() leafStore[E]
}

// sliceLeafStore is the general-element leaf store: a plain slice plus a
// null sentinel for the presence test.
type sliceLeafStore[E comparable] struct {
	vals []E
	null E
}

func (s *sliceLeafStore[E]) len() int        { return len(s.vals) }
func (s *sliceLeafStore[E]) at(i int) E      { return s.vals[i] }
func (s *sliceLeafStore[E]) present(i int) bool {
	return s.vals[i] != s.null
}
func (s *sliceLeafStore[E]) appendBlock(vals []E) {
	s.vals = append(s.vals, vals...)
}
func (s *sliceLeafStore[E]) freeze() {}
func (s *sliceLeafStore[E]) setNull(i int, null E) {
	s.vals[i] = null
}
func (s *sliceLeafStore[E]) cloneStore() leafStore[E] {
	dst := &sliceLeafStore[E]{null: s.null, vals: make([]E, len(s.vals))}
	copy(dst.vals, s.vals)
	return dst
}

// bitLeafStore is the boolean specialization's leaf store: a bit vector,
// where "value" and "present" are the same bit (see §4.4 of the spec).
// During construction, bits accumulate in a plain []bool; freeze packs
// them into an immutable rankbv.BitVector, mirroring how T itself is
// assembled (level buffers as []bool, packed once at the end).
type bitLeafStore struct {
	building []bool
	bv       *rankbv.BitVector
}

func (s *bitLeafStore) len() int {
	if s.bv != nil {
		return s.bv.Len()
	}
	return len(s.building)
}
func (s *bitLeafStore) at(i int) bool {
	if s.bv != nil {
		return s.bv.Get(i)
	}
	return s.building[i]
}
func (s *bitLeafStore) present(i int) bool { return s.at(i) }
func (s *bitLeafStore) appendBlock(vals []bool) {
	s.building = append(s.building, vals...)
}
func (s *bitLeafStore) freeze() {
	if s.bv == nil {
		s.bv = rankbv.FromBits(s.building)
		s.building = nil
	}
}

// setFrozenBit clears (or sets) a single bit of an already-frozen store.
// L's bit vector never needs Rank1 (only T does), so mutating it in place
// via rankbv.BitVector.SetBit is safe even though the rank prefix table it
// carries goes stale.
func (s *bitLeafStore) setFrozenBit(i int, v bool) {
	if s.bv != nil {
		s.bv.SetBit(i, v)
		return
	}
	s.building[i] = v
}

// setNull implements leafStore[bool].setNull: the null value for a
// BoolTree is always false, so the null parameter (always false in
// practice) is applied directly as the bit value.
func (s *bitLeafStore) setNull(i int, null bool) {
	s.setFrozenBit(i, null)
}

func (s *bitLeafStore) cloneStore() leafStore[bool] {
	n := s.len()
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = s.at(i)
	}
	return &bitLeafStore{bv: rankbv.FromBits(bits)}
}

// Tree is the static k²-tree encoding of a valued N×N relation over
// element type E. It is built by exactly one of the package's five
// builders and is read-only afterward except for SetNull.
type Tree[E comparable] struct {
	k, h, nPrime int
	null         E
	t            *rankbv.BitVector
	leaves       leafStore[E]
}

// K returns the branching factor.
func (tr *Tree[E]) K() int { return tr.k }

// H returns the height (number of recursive subdivisions).
func (tr *Tree[E]) H() int { return tr.h }

// NPrime returns the padded side length k^h.
func (tr *Tree[E]) NPrime() int { return tr.nPrime }

// Null returns the sentinel element denoting absence.
func (tr *Tree[E]) Null() E { return tr.null }

// checkCoords validates that i and j lie within [0, n'), returning
// base.ErrOutOfRange wrapped with the offending coordinate otherwise.
func (tr *Tree[E]) checkCoords(i, j int) error {
	if i < 0 || i >= tr.nPrime {
		return base.OutOfRangef("k2tree: row %s out of range [0, %s)", base.Coord(i), base.Coord(tr.nPrime))
	}
	if j < 0 || j >= tr.nPrime {
		return base.OutOfRangef("k2tree: column %s out of range [0, %s)", base.Coord(j), base.Coord(tr.nPrime))
	}
	return nil
}

// checkCoord validates a single coordinate (used by row/column-only
// queries).
func (tr *Tree[E]) checkCoord(i int) error {
	if i < 0 || i >= tr.nPrime {
		return base.OutOfRangef("k2tree: coordinate %s out of range [0, %s)", base.Coord(i), base.Coord(tr.nPrime))
	}
	return nil
}

// Clone returns an independent copy of tr: T and L are value-copied and R
// is rebuilt over the copy of T (R holds no pointers back into the
// original, so a structural copy plus a fresh rank build is sufficient,
// matching the teacher's copy-constructor idiom of never sharing mutable
// state between clones).
func (tr *Tree[E]) Clone() *Tree[E] {
	clone := &Tree[E]{k: tr.k, h: tr.h, nPrime: tr.nPrime, null: tr.null}
	if tr.t != nil {
		bld := rankbv.NewBuilder(tr.t.Len())
		for i := 0; i < tr.t.Len(); i++ {
			bld.Append(tr.t.Get(i))
		}
		clone.t = bld.Finish()
	} else {
		clone.t = rankbv.FromBits(nil)
	}
	clone.leaves = tr.leaves.cloneStore()
	return clone
}
