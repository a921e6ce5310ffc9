// Package dynbits implements a dynamic (insertable) bit vector with a naive
// O(n) dynamic rank, used only as transient construction scratch by the
// dynamic-bitmap k2-tree builder (spec §4.3.4). Because it is never touched
// after the tree is built, an online rank/select structure would be wasted
// sophistication; per spec design note 9 this is deliberately simple.
//
// Grounded on the running-sum idiom of pebble's sstable/colblk
// presenceBitmapBuilder (set-a-bit, keep a prefix count), generalized from
// append-only to mid-sequence insertion using the stdlib slices package.
package dynbits

import "slices"

// Dynamic is a growable, insertable bit vector that answers rank-1 queries
// from an explicit running-count table. Any Set or InsertBlock marks the
// table stale, and the next Rank1 recomputes it from scratch in O(n);
// Rank1 calls with no change in between are O(1).
type Dynamic struct {
	bits []bool
	// rankPrefix[i] = number of set bits in bits[0:i]. Has len(bits)+1
	// entries; rebuilt in full by the first Rank1 after any Set or
	// InsertBlock.
	rankPrefix []int32
	dirty      bool
}

// New returns an empty Dynamic bit vector.
func New() *Dynamic {
	return &Dynamic{rankPrefix: []int32{0}}
}

// Len returns the number of bits currently held.
func (d *Dynamic) Len() int {
	return len(d.bits)
}

// Get returns the bit at position i.
func (d *Dynamic) Get(i int) bool {
	return d.bits[i]
}

// Set sets the bit at position i (which must already exist) to v.
func (d *Dynamic) Set(i int, v bool) {
	d.bits[i] = v
	d.dirty = true
}

// InsertBlock inserts n fresh false bits starting at position at (at may
// equal Len(), appending at the end). Used by the dynamic-bitmap builder to
// make room for a freshly-discovered node's k² children.
func (d *Dynamic) InsertBlock(at, n int) {
	block := make([]bool, n)
	d.bits = slices.Insert(d.bits, at, block...)
	d.dirty = true
}

// rebuild recomputes the rank prefix table from scratch. O(n); acceptable
// because this structure exists only during construction.
func (d *Dynamic) rebuild() {
	if cap(d.rankPrefix) < len(d.bits)+1 {
		d.rankPrefix = make([]int32, len(d.bits)+1)
	} else {
		d.rankPrefix = d.rankPrefix[:len(d.bits)+1]
	}
	var sum int32
	for i, b := range d.bits {
		d.rankPrefix[i] = sum
		if b {
			sum++
		}
	}
	d.rankPrefix[len(d.bits)] = sum
	d.dirty = false
}

// Rank1 returns the number of set bits among positions [0, i).
func (d *Dynamic) Rank1(i int) int {
	if d.dirty {
		d.rebuild()
	}
	return int(d.rankPrefix[i])
}

// PopCount returns the total number of set bits.
func (d *Dynamic) PopCount() int {
	return d.Rank1(len(d.bits))
}

// Bits returns the current bit sequence as a []bool, for handing off to
// rankbv.FromBits once construction is complete.
func (d *Dynamic) Bits() []bool {
	return d.bits
}
