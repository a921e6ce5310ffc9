// Package rankbv implements a static, word-packed bit vector with O(1)
// amortized rank-1 support: "how many 1-bits occur strictly before position
// i". It underlies the k2-tree's T bit vector (internal-node presence
// flags) and, for the boolean element specialization, its L leaf array.
//
// The layout is grounded on the word-packed bitmap used by pebble's
// sstable/colblk package (bitmap.go, presence_bitmap.go): bits are packed
// into []uint64 words and a running popcount is kept per word boundary so
// that rank1 never has to scan more than one partial word. Unlike
// presence_bitmap.go's 16-bit-interleaved scheme (capped at 2^16 logical
// bits), the prefix table here is a separate []uint32 slice, trading a
// little memory for an unbounded vector length.
package rankbv

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"github.com/postfix/k2trees/internal/invariants"
)

const wordBits = 64

// BitVector is an immutable, word-packed sequence of bits with a
// precomputed rank-1 index.
type BitVector struct {
	words []uint64
	// prefix[w] holds the number of 1-bits in words[0:w]. Has len(words)+1
	// entries so that prefix[len(words)] is the total popcount.
	prefix []uint32
	length int
}

// Len returns the number of bits in the vector.
func (b *BitVector) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Get returns the bit at position i.
func (b *BitVector) Get(i int) bool {
	if i < 0 || i >= b.length {
		panic(errors.Newf("rankbv: Get(%d) out of range [0, %d)", i, b.length))
	}
	return b.words[i/wordBits]&(uint64(1)<<uint(i%wordBits)) != 0
}

// Rank1 returns the number of 1-bits among positions [0, i). i may equal
// Len(), in which case Rank1 returns the vector's total popcount.
func (b *BitVector) Rank1(i int) int {
	if b == nil {
		if i == 0 {
			return 0
		}
		panic(errors.Newf("rankbv: Rank1(%d) out of range [0, 0]", i))
	}
	if i < 0 || i > b.length {
		panic(errors.Newf("rankbv: Rank1(%d) out of range [0, %d]", i, b.length))
	}
	w := i / wordBits
	rem := i % wordBits
	rank := int(b.prefix[w])
	if rem > 0 {
		mask := uint64(1)<<uint(rem) - 1
		rank += bits.OnesCount64(b.words[w] & mask)
	}
	if invariants.Enabled {
		if want := scanRank(b.words, i); want != rank {
			panic(errors.AssertionFailedf("rankbv: Rank1(%d) = %d, scan gives %d", i, rank, want))
		}
	}
	return rank
}

// scanRank recomputes rank1(i) by brute-force scanning; used only as an
// invariants-build cross-check.
func scanRank(words []uint64, i int) int {
	rank := 0
	for pos := 0; pos < i; pos++ {
		if words[pos/wordBits]&(uint64(1)<<uint(pos%wordBits)) != 0 {
			rank++
		}
	}
	return rank
}

// SetBit overwrites the bit at position i in place, without touching the
// rank prefix table. It exists for storage uses of a BitVector (such as
// k2tree's boolean leaf array) that never call Rank1 on this particular
// vector and therefore don't care that the prefix table goes stale;
// callers that do rely on Rank1 must not use SetBit.
func (b *BitVector) SetBit(i int, v bool) {
	if i < 0 || i >= b.length {
		panic(errors.Newf("rankbv: SetBit(%d) out of range [0, %d)", i, b.length))
	}
	mask := uint64(1) << uint(i%wordBits)
	if v {
		b.words[i/wordBits] |= mask
	} else {
		b.words[i/wordBits] &^= mask
	}
}

// PopCount returns the total number of 1-bits in the vector.
func (b *BitVector) PopCount() int {
	if b == nil || len(b.prefix) == 0 {
		return 0
	}
	return int(b.prefix[len(b.prefix)-1])
}

// Builder accumulates bits and produces an immutable BitVector.
type Builder struct {
	words  []uint64
	length int
}

// NewBuilder returns a Builder with its backing storage pre-sized to hold
// at least capacityBits bits (a hint only; Append grows as needed).
func NewBuilder(capacityBits int) *Builder {
	return &Builder{words: make([]uint64, 0, (capacityBits+wordBits-1)/wordBits)}
}

// Append appends a single bit.
func (bld *Builder) Append(bit bool) {
	w := bld.length / wordBits
	for len(bld.words) <= w {
		bld.words = append(bld.words, 0)
	}
	if bit {
		bld.words[w] |= uint64(1) << uint(bld.length%wordBits)
	}
	bld.length++
}

// AppendBits appends each bit of bits, in order.
func (bld *Builder) AppendBits(bitsSlice []bool) {
	for _, bit := range bitsSlice {
		bld.Append(bit)
	}
}

// Len returns the number of bits appended so far.
func (bld *Builder) Len() int {
	return bld.length
}

// Finish materializes the accumulated bits into an immutable BitVector,
// computing the per-word rank prefix table.
func (bld *Builder) Finish() *BitVector {
	prefix := make([]uint32, len(bld.words)+1)
	for w, word := range bld.words {
		prefix[w+1] = prefix[w] + uint32(bits.OnesCount64(word))
	}
	return &BitVector{words: bld.words, prefix: prefix, length: bld.length}
}

// FromBits builds an immutable BitVector directly from a []bool, without
// going through the incremental Builder API. Convenient for tests and for
// builders (§4.3.5) that materialize the whole bit buffer before encoding.
func FromBits(bitsSlice []bool) *BitVector {
	bld := NewBuilder(len(bitsSlice))
	bld.AppendBits(bitsSlice)
	return bld.Finish()
}
