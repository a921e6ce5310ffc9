package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/postfix/k2trees/internal/metrics"
	"github.com/postfix/k2trees/k2tree"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var queryTreeFile string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "query a built k²-tree",
	Long:  ``,
}

var (
	queryRow, queryCol             int
	queryR1, queryR2, queryC1, queryC2 int
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "report whether (--row, --col) is present",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		var err error
		done := metrics.Track(cliMetrics, metrics.OpQuery, &err)
		var present bool
		present, err = tr.IsNotNull(queryRow, queryCol)
		done()
		if err != nil {
			exitf("query point: %v", err)
		}
		fmt.Println(present)
	},
}

var rowCmd = &cobra.Command{
	Use:   "row",
	Short: "list the columns present in --row",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		cols, err := tr.GetSuccessorPositions(queryRow)
		if err != nil {
			exitf("query row: %v", err)
		}
		for _, c := range cols {
			fmt.Println(c)
		}
	},
}

var colCmd = &cobra.Command{
	Use:   "col",
	Short: "list the rows present in --col",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		rows, err := tr.GetPredecessorPositions(queryCol)
		if err != nil {
			exitf("query col: %v", err)
		}
		for _, r := range rows {
			fmt.Println(r)
		}
	},
}

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "list positions present within [--r1,--r2] x [--c1,--c2]",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		positions, err := tr.GetPositionsInRange(queryR1, queryR2, queryC1, queryC2)
		if err != nil {
			exitf("query range: %v", err)
		}
		for _, p := range positions {
			fmt.Println(p)
		}
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "count all present positions",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		fmt.Println(tr.CountElements())
	},
}

var queryRowsFlag string

// rowsCmd looks up the successor list for several rows concurrently, one
// goroutine per row, fanning results back through an errgroup.Group the way
// replay.Runner drives its background workers.
var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "list the columns present in each of --rows (comma-separated), queried in parallel",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		rows, err := parseIntList(queryRowsFlag)
		if err != nil {
			exitf("query rows: %v", err)
		}

		results := make([][]int, len(rows))
		g, _ := errgroup.WithContext(context.Background())
		for idx, row := range rows {
			idx, row := idx, row
			g.Go(func() error {
				cols, err := tr.GetSuccessorPositions(row)
				if err != nil {
					return err
				}
				results[idx] = cols
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			exitf("query rows: %v", err)
		}
		for i, row := range rows {
			fmt.Printf("%d: %v\n", row, results[i])
		}
	},
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid row %q: %w", f, err)
		}
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

var firstCmd = &cobra.Command{
	Use:   "first",
	Short: "report the smallest present column in --row, or n' if none",
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		col, err := tr.GetFirstSuccessor(queryRow)
		if err != nil {
			exitf("query first: %v", err)
		}
		fmt.Println(col)
	},
}

func init() {
	queryCmd.PersistentFlags().StringVar(&queryTreeFile, "tree", "", "tree YAML file (required)")
	queryCmd.AddCommand(pointCmd, rowCmd, colCmd, rangeCmd, countCmd, firstCmd, rowsCmd)

	rowsCmd.Flags().StringVar(&queryRowsFlag, "rows", "", "comma-separated list of rows (required)")

	pointCmd.Flags().IntVar(&queryRow, "row", 0, "row")
	pointCmd.Flags().IntVar(&queryCol, "col", 0, "column")

	rowCmd.Flags().IntVar(&queryRow, "row", 0, "row")
	colCmd.Flags().IntVar(&queryCol, "col", 0, "column")
	firstCmd.Flags().IntVar(&queryRow, "row", 0, "row")

	rangeCmd.Flags().IntVar(&queryR1, "r1", 0, "first row")
	rangeCmd.Flags().IntVar(&queryR2, "r2", 0, "last row")
	rangeCmd.Flags().IntVar(&queryC1, "c1", 0, "first column")
	rangeCmd.Flags().IntVar(&queryC2, "c2", 0, "last column")
}

func mustLoadTree() *k2tree.BoolTree {
	if queryTreeFile == "" {
		exitf("--tree is required")
	}
	tr, err := loadTree(queryTreeFile)
	if err != nil {
		exitf("loading %s: %v", queryTreeFile, err)
	}
	return tr
}
