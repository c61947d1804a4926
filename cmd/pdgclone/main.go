package main

import (
	"os"

	"github.com/pdgclone/pdgclone/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pdgclone",
	Short: "A semantic clone detector for JavaScript program dependence graphs",
	Long: `pdgclone compares a benign program dependence graph (PDG) against a
malicious one and reports the maximal matching subgraphs between them.

It partitions statement nodes into equivalence classes, matches nodes
structurally along control and data dependencies (backward-slicing
through the benign side when a shape mismatch blocks a forward match),
removes subsumed and duplicate clone groups, and annotates both graphs
with clone coverage.`,
	Version: version.Short(),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewDetectCmd())
	rootCmd.AddCommand(NewBatchCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
