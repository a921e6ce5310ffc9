package rankbv

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitVectorEmpty(t *testing.T) {
	bv := FromBits(nil)
	require.Equal(t, 0, bv.Len())
	require.Equal(t, 0, bv.PopCount())
	require.Equal(t, 0, bv.Rank1(0))
}

func TestBitVectorBasic(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, true, false, true}
	bv := FromBits(bits)
	require.Equal(t, len(bits), bv.Len())

	var want int
	for i, b := range bits {
		require.Equal(t, b, bv.Get(i), "bit %d", i)
		require.Equal(t, want, bv.Rank1(i), "rank1(%d)", i)
		if b {
			want++
		}
	}
	require.Equal(t, want, bv.Rank1(len(bits)))
	require.Equal(t, want, bv.PopCount())
}

func TestBitVectorAcrossWordBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 63, 64, 65, 127, 128, 129, 500, 1000} {
		bits := make([]bool, n)
		for i := range bits {
			bits[i] = rng.Intn(4) == 0
		}
		bv := FromBits(bits)

		rank := 0
		for i := 0; i < n; i++ {
			require.Equal(t, rank, bv.Rank1(i), "n=%d i=%d", n, i)
			require.Equal(t, bits[i], bv.Get(i), "n=%d i=%d", n, i)
			if bits[i] {
				rank++
			}
		}
		require.Equal(t, rank, bv.Rank1(n))
		require.Equal(t, rank, bv.PopCount())
	}
}

func TestBuilderIncremental(t *testing.T) {
	bld := NewBuilder(0)
	pattern := []bool{true, true, false, true, false, false, false, true, true, true}
	for _, b := range pattern {
		bld.Append(b)
	}
	bv := bld.Finish()
	require.Equal(t, FromBits(pattern).PopCount(), bv.PopCount())
	for i := range pattern {
		require.Equal(t, pattern[i], bv.Get(i))
	}
}
