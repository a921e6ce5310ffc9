package k2tree

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadsAgree exercises the concurrency contract of §5: once
// built, a Tree may be queried by multiple goroutines simultaneously without
// external synchronization, since every query method only reads T, L, and
// R. Grounded on replay.Runner's errgroup.WithContext/Go fan-out pattern.
func TestConcurrentReadsAgree(t *testing.T) {
	n := 24
	mat := make([][]bool, n)
	for i := range mat {
		mat[i] = make([]bool, n)
	}
	for _, p := range []Position{{0, 0}, {3, 7}, {10, 10}, {23, 1}, {5, 19}} {
		mat[p.Row][p.Col] = true
	}
	tr, err := NewBoolTreeFromMatrix(mat, 2)
	require.NoError(t, err)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			cols, err := tr.GetSuccessorPositions(i)
			if err != nil {
				return err
			}
			for _, j := range cols {
				if !mat[i][j] {
					return fmt.Errorf("row %d: unexpected successor column %d", i, j)
				}
			}
			present, err := tr.IsNotNull(i, i)
			if err != nil {
				return err
			}
			if present != mat[i][i] {
				return fmt.Errorf("row %d: diagonal mismatch", i)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
