package k2tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromMatrixRagged(t *testing.T) {
	_, err := NewFromMatrix([][]int{{1, 2}, {3}}, 2, 0)
	require.Error(t, err)
}

func TestNewFromMatrixRoundTrip(t *testing.T) {
	mat := [][]string{
		{"a", "", "b"},
		{"", "", ""},
		{"c", "d", ""},
	}
	tr, err := NewFromMatrix(mat, 2, "")
	require.NoError(t, err)
	for i, row := range mat {
		for j, want := range row {
			got, err := tr.GetElement(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
	// padding outside the original extent always reads as null
	for i := len(mat); i < tr.NPrime(); i++ {
		got, err := tr.GetElement(i, 0)
		require.NoError(t, err)
		require.Equal(t, "", got)
	}
}

func TestNewFromMatrixEmpty(t *testing.T) {
	tr, err := NewFromMatrix([][]int{}, 4, -1)
	require.NoError(t, err)
	require.Equal(t, 1, tr.H())
	require.Equal(t, 0, tr.CountElements())
}
