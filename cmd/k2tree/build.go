package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/postfix/k2trees/internal/metrics"
	"github.com/postfix/k2trees/k2tree"
	"github.com/spf13/cobra"
)

var (
	buildK      int
	buildMode   string
	buildInput  string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "build a k²-tree from a YAML file of (row, col) positions",
	Long:  ``,
	Run:   runBuild,
}

func init() {
	buildCmd.Flags().IntVar(&buildK, "k", 2, "branching factor")
	buildCmd.Flags().StringVar(&buildMode, "mode", "triples",
		"construction algorithm: matrix, cursor, quadtree, dynamic, or triples")
	buildCmd.Flags().StringVar(&buildInput, "input", "", "input YAML file of positions (required)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "output tree YAML file (required)")
}

func runBuild(cmd *cobra.Command, args []string) {
	if buildInput == "" || buildOutput == "" {
		exitf("build: --input and --output are required")
	}

	positions, err := loadPositions(buildInput)
	if err != nil {
		exitf("build: reading %s: %v", buildInput, err)
	}

	var buildErr error
	done := metrics.Track(cliMetrics, metrics.OpBuild, &buildErr)

	var tree *k2tree.BoolTree
	tree, buildErr = buildFromPositions(positions, buildK, buildMode)
	done()
	if buildErr != nil {
		exitf("build: %v", buildErr)
	}

	if err := saveTree(buildOutput, tree); err != nil {
		exitf("build: writing %s: %v", buildOutput, err)
	}
	fmt.Printf("built %s tree: k=%d h=%d n'=%d elements=%d\n",
		buildMode, tree.K(), tree.H(), tree.NPrime(), tree.CountElements())
}

func buildFromPositions(positions []k2tree.Position, k int, mode string) (*k2tree.BoolTree, error) {
	switch mode {
	case "triples":
		return k2tree.NewBoolTreeFromPositions(positions, k)
	case "matrix":
		return k2tree.NewBoolTreeFromMatrix(positionsToMatrix(positions), k)
	case "cursor":
		return k2tree.NewBoolTreeFromRowListsCursor(positionsToRowLists(positions), k)
	case "quadtree":
		return k2tree.NewBoolTreeFromRowListsQuadtree(positionsToRowLists(positions), k)
	case "dynamic":
		return k2tree.NewBoolTreeFromRowListsDynamic(positionsToRowLists(positions), k)
	default:
		return nil, fmt.Errorf("build: unknown mode %q", mode)
	}
}

func positionsToRowLists(positions []k2tree.Position) [][]int {
	numRows := 0
	for _, p := range positions {
		if p.Row+1 > numRows {
			numRows = p.Row + 1
		}
	}
	rows := make([][]int, numRows)
	for _, p := range positions {
		rows[p.Row] = append(rows[p.Row], p.Col)
	}
	for _, cols := range rows {
		sort.Ints(cols)
	}
	return rows
}

func positionsToMatrix(positions []k2tree.Position) [][]bool {
	numRows, numCols := 0, 0
	for _, p := range positions {
		if p.Row+1 > numRows {
			numRows = p.Row + 1
		}
		if p.Col+1 > numCols {
			numCols = p.Col + 1
		}
	}
	mat := make([][]bool, numRows)
	for i := range mat {
		mat[i] = make([]bool, numCols)
	}
	for _, p := range positions {
		mat[p.Row][p.Col] = true
	}
	return mat
}

func exitf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
