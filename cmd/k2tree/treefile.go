package main

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/postfix/k2trees/k2tree"
	"gopkg.in/yaml.v3"
)

// treeFile is the on-disk YAML envelope for a built BoolTree: its raw T/L
// bit sequences plus the (k, h) needed to reinterpret them, plus an xxhash64
// checksum over the packed bits (the same per-block integrity check pebble's
// sstable/block.Checksummer performs with ChecksumTypeXXHash64, applied here
// to the whole serialized tree instead of one block at a time).
type treeFile struct {
	K        int    `yaml:"k"`
	H        int    `yaml:"h"`
	T        []bool `yaml:"t"`
	L        []bool `yaml:"l"`
	Checksum uint64 `yaml:"checksum"`
}

func loadTree(path string) (*k2tree.BoolTree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf treeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	if got := bitsChecksum(tf.K, tf.H, tf.T, tf.L); got != tf.Checksum {
		return nil, fmt.Errorf("%s: checksum mismatch: file has %d, computed %d (corrupt tree file)", path, tf.Checksum, got)
	}
	return k2tree.NewBoolTreeFromBits(tf.K, tf.H, tf.T, tf.L)
}

func saveTree(path string, bt *k2tree.BoolTree) error {
	tbits, lbits := bt.Bits()
	tf := treeFile{
		K: bt.K(), H: bt.H(), T: tbits, L: lbits,
		Checksum: bitsChecksum(bt.K(), bt.H(), tbits, lbits),
	}
	data, err := yaml.Marshal(&tf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// bitsChecksum packs k, h and the T/L bit sequences into a byte stream and
// returns its xxhash64 digest, catching bit-flip or truncation corruption in
// a saved tree file the way a block checksum catches a corrupted sstable
// block.
func bitsChecksum(k, h int, tbits, lbits []bool) uint64 {
	buf := make([]byte, 0, 8+len(tbits)+len(lbits))
	buf = append(buf, byte(k), byte(h))
	for _, b := range tbits {
		if b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	buf = append(buf, 0xff) // separator between T and L so e.g. T=[1] L=[] doesn't collide with T=[] L=[1]
	for _, b := range lbits {
		if b {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	return xxhash.Sum64(buf)
}

// inputFile is the YAML envelope accepted by the build command: an
// unordered list of present (row, col) positions.
type inputFile struct {
	Positions []struct {
		Row int `yaml:"row"`
		Col int `yaml:"col"`
	} `yaml:"positions"`
}

func loadPositions(path string) ([]k2tree.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in inputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	positions := make([]k2tree.Position, len(in.Positions))
	for i, p := range in.Positions {
		positions[i] = k2tree.Position{Row: p.Row, Col: p.Col}
	}
	return positions, nil
}
