package k2tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromRowListsCursorUnsorted(t *testing.T) {
	lists := [][]ColValue[int]{
		{{Col: 2, Value: 5}, {Col: 1, Value: 3}},
	}
	_, err := NewFromRowListsCursor(lists, 2, 0)
	require.Error(t, err)
}

func TestNewFromRowListsCursorDuplicateColumn(t *testing.T) {
	lists := [][]ColValue[int]{
		{{Col: 1, Value: 5}, {Col: 1, Value: 3}},
	}
	_, err := NewFromRowListsCursor(lists, 2, 0)
	require.Error(t, err)
}

func TestNewFromRowListsCursorRoundTrip(t *testing.T) {
	lists := [][]ColValue[int]{
		{{Col: 0, Value: 10}, {Col: 3, Value: 40}},
		{},
		{{Col: 2, Value: 32}},
		{{Col: 1, Value: 41}},
	}
	tr, err := NewFromRowListsCursor(lists, 2, 0)
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
