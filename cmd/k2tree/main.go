// Command k2tree builds, queries, and inspects k²-tree encoded relations
// from the command line.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "k2tree [command] (flags)",
	Short: "k2tree build/query/introspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		buildCmd,
		queryCmd,
		printCmd,
		statsCmd,
		metricsCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
