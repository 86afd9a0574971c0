package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hexband",
	Short: "Tight-binding electronic structure for honeycomb lattices",
	Long: `hexband computes band structures, densities of states, Brillouin-zone
geometry and Dirac-point diagnostics for a two-dimensional honeycomb
(graphene-like) lattice.

Physical parameters come from flags or a YAML file (--params); explicit
flags always win over the file. Results are written as CSV or JSON to
stdout or a file, ready for plotting tools.

Examples:
  hexband bands --t1=2.8 --t2=0.28 --format=csv
  hexband dos --exx=0.05 --emin=-3 --emax=3 --bins=1000 --grid=150
  hexband zone --out=zone.json
  hexband dirac --params=strained.yaml`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
