package main

import (
	"os"

	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "render a built tree as a dense grid",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		tr := mustLoadTree()
		tr.Print(os.Stdout)
	},
}

func init() {
	printCmd.Flags().StringVar(&queryTreeFile, "tree", "", "tree YAML file (required)")
}
