package k2tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromRowListsQuadtreeRoundTrip(t *testing.T) {
	lists := [][]ColValue[int]{
		{{Col: 0, Value: 10}, {Col: 3, Value: 40}},
		{},
		{{Col: 2, Value: 32}},
		{{Col: 1, Value: 41}},
	}
	tr, err := NewFromRowListsQuadtree(lists, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tr.CountElements())
	for i, row := range lists {
		for _, cv := range row {
			got, err := tr.GetElement(i, cv.Col)
			require.NoError(t, err)
			require.Equal(t, cv.Value, got)
		}
	}
}

func TestNewFromRowListsQuadtreeEmpty(t *testing.T) {
	tr, err := NewFromRowListsQuadtree([][]ColValue[int]{}, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, tr.CountElements())
	require.Equal(t, 1, tr.H())
}

func TestNewFromRowListsQuadtreeSingleCell(t *testing.T) {
	lists := [][]ColValue[bool]{{{Col: 0, Value: true}}}
	tr, err := NewFromRowListsQuadtree(lists, 2, false)
	require.NoError(t, err)
	require.Equal(t, 1, tr.CountElements())
	v, err := tr.GetElement(0, 0)
	require.NoError(t, err)
	require.True(t, v)
}
