package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/postfix/k2trees/k2tree"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveLoadTreeRoundTrip(t *testing.T) {
	mat := [][]bool{
		{true, false, false, true},
		{false, true, false, false},
		{false, false, false, true},
		{true, false, false, false},
	}
	bt, err := k2tree.NewBoolTreeFromMatrix(mat, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, saveTree(path, bt))

	got, err := loadTree(path)
	require.NoError(t, err)
	require.Equal(t, bt.CountElements(), got.CountElements())
	for i := 0; i < bt.NPrime(); i++ {
		for j := 0; j < bt.NPrime(); j++ {
			want, err := bt.IsNotNull(i, j)
			require.NoError(t, err)
			have, err := got.IsNotNull(i, j)
			require.NoError(t, err)
			require.Equal(t, want, have, "cell (%d,%d)", i, j)
		}
	}
}

// TestLoadTreeDetectsCorruption flips one saved bit without touching the
// checksum (the first T bit, or the first L bit when T is empty, as it is
// for this 2×2 tree with h == 1), mirroring how a corrupted sstable block
// fails its Checksummer check before it's ever decoded.
func TestLoadTreeDetectsCorruption(t *testing.T) {
	mat := [][]bool{{true, false}, {false, true}}
	bt, err := k2tree.NewBoolTreeFromMatrix(mat, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, saveTree(path, bt))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var tf treeFile
	require.NoError(t, yaml.Unmarshal(data, &tf))
	if len(tf.T) > 0 {
		tf.T[0] = !tf.T[0]
	} else {
		tf.L[0] = !tf.L[0]
	}
	corrupted, err := yaml.Marshal(&tf)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, corrupted, 0o644))

	_, err = loadTree(path)
	require.Error(t, err)
}
