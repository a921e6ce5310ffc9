package main

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var statsTreeFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "plot per-row element density of a built tree",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		if statsTreeFile == "" {
			exitf("stats: --tree is required")
		}
		tr, err := loadTree(statsTreeFile)
		if err != nil {
			exitf("stats: %v", err)
		}

		counts := make([]float64, tr.NPrime())
		for i := range counts {
			cols, err := tr.GetSuccessorPositions(i)
			if err != nil {
				exitf("stats: %v", err)
			}
			counts[i] = float64(len(cols))
		}

		fmt.Println("present cells per row")
		fmt.Println(asciigraph.Plot(counts, asciigraph.Height(10)))
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsTreeFile, "tree", "", "tree YAML file (required)")
}
