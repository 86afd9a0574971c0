package main

import (
	"github.com/spf13/cobra"

	"github.com/quantica-dev/hexband/bzone"
	"github.com/quantica-dev/hexband/lattice"
)

var zoneOut string

var zoneCmd = &cobra.Command{
	Use:   "zone",
	Short: "Emit the first Brillouin zone geometry as JSON",
	Long: `Construct the hexagonal zone boundary, the named high-symmetry points
(Γ, K, K′, M), the Γ→M→K→Γ path and the irreducible wedge for the
canonical lattice constant. Purely geometric; hopping parameters and
strain play no role here.`,
	RunE: runZone,
}

func init() {
	zoneCmd.Flags().StringVar(&zoneOut, "out", "-", "output file (- for stdout)")
	rootCmd.AddCommand(zoneCmd)
}

func runZone(_ *cobra.Command, _ []string) error {
	z, err := bzone.Build(lattice.LatticeConstant)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(zoneOut)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	return writeJSON(w, z)
}
