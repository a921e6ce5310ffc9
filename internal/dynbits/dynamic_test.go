package dynbits

import "testing"

import "github.com/stretchr/testify/require"

func TestDynamicInsertAndRank(t *testing.T) {
	d := New()
	d.InsertBlock(0, 4) // [f f f f]
	d.Set(1, true)
	d.Set(3, true) // [f t f t]
	require.Equal(t, 0, d.Rank1(0))
	require.Equal(t, 0, d.Rank1(1))
	require.Equal(t, 1, d.Rank1(2))
	require.Equal(t, 1, d.Rank1(3))
	require.Equal(t, 2, d.Rank1(4))
	require.Equal(t, 2, d.PopCount())

	// Insert a block in the middle and check rank recomputes correctly.
	d.InsertBlock(2, 2) // [f t _ _ f t] with new bits false
	require.Equal(t, 6, d.Len())
	require.False(t, d.Get(2))
	require.False(t, d.Get(3))
	require.Equal(t, 1, d.Rank1(2))
	require.Equal(t, 2, d.Rank1(6))
}

func TestDynamicAppendAtEnd(t *testing.T) {
	d := New()
	for i := 0; i < 5; i++ {
		d.InsertBlock(d.Len(), 1)
		d.Set(d.Len()-1, i%2 == 0)
	}
	require.Equal(t, []bool{true, false, true, false, true}, d.Bits())
	require.Equal(t, 3, d.PopCount())
}
