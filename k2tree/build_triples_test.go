package k2tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromTriplesRoundTrip(t *testing.T) {
	triples := []Triple[int]{
		{Row: 0, Col: 0, Value: 10},
		{Row: 0, Col: 3, Value: 40},
		{Row: 2, Col: 2, Value: 32},
		{Row: 3, Col: 1, Value: 41},
	}
	tr, err := NewFromTriples(triples, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 4, tr.CountElements())
	for _, tri := range triples {
		got, err := tr.GetElement(tri.Row, tri.Col)
		require.NoError(t, err)
		require.Equal(t, tri.Value, got)
	}
}

func TestNewFromTriplesEmpty(t *testing.T) {
	tr, err := NewFromTriples([]Triple[int]{}, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, tr.CountElements())
	require.Equal(t, 1, tr.H())
}

func TestNewFromTriplesAllNullFiltered(t *testing.T) {
	// Every triple carries the null value: the builder must normalize to
	// an empty tree exactly as the empty-input case does.
	triples := []Triple[int]{{Row: 0, Col: 0, Value: 0}, {Row: 1, Col: 1, Value: 0}}
	tr, err := NewFromTriples(triples, 2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, tr.CountElements())
	require.Equal(t, 1, tr.H())
}

func TestNewFromTriplesDuplicateLastWins(t *testing.T) {
	triples := []Triple[int]{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 0, Value: 2},
	}
	tr, err := NewFromTriples(triples, 2, 0)
	require.NoError(t, err)
	got, err := tr.GetElement(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestNewFromTriplesLargerExtent(t *testing.T) {
	triples := []Triple[bool]{
		{Row: 10, Col: 5, Value: true},
		{Row: 0, Col: 0, Value: true},
		{Row: 15, Col: 15, Value: true},
	}
	tr, err := NewFromTriples(triples, 4, false)
	require.NoError(t, err)
	require.Equal(t, 16, tr.NPrime())
	require.Equal(t, 3, tr.CountElements())
	for _, tri := range triples {
		got, err := tr.GetElement(tri.Row, tri.Col)
		require.NoError(t, err)
		require.Equal(t, tri.Value, got)
	}
}
