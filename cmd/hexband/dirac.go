package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantica-dev/hexband/band"
)

var diracJSON bool

var diracCmd = &cobra.Command{
	Use:   "dirac",
	Short: "Validate the Dirac condition and report the Fermi velocity",
	Long: `Check that the NN structure factor vanishes at the canonical K point
(|f1(K)| < 1e-6) and report the resulting gap and the Fermi velocity.
Under nonzero strain the check is expected to fail: the Dirac point has
moved away from the unstrained K coordinate.`,
	RunE: runDirac,
}

func init() {
	diracCmd.Flags().BoolVar(&diracJSON, "json", false, "emit JSON instead of text")
	rootCmd.AddCommand(diracCmd)
}

func runDirac(cmd *cobra.Command, _ []string) error {
	p, _, err := loadParameters(cmd)
	if err != nil {
		return err
	}

	v, err := band.ValidateDirac(p)
	if err != nil {
		return err
	}
	vF, err := band.FermiVelocity(p)
	if err != nil {
		return err
	}

	if diracJSON {
		return writeJSON(cmd.OutOrStdout(), struct {
			*band.DiracValidation
			FermiVelocity float64 `json:"fermiVelocity"`
		}{v, vF})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "K point:            (%.6f, %.6f) 1/Å\n", v.KPoint.X, v.KPoint.Y)
	fmt.Fprintf(out, "|f1(K)|:            %.3e\n", v.StructureFactorMagnitude)
	fmt.Fprintf(out, "Dirac condition:    %v (tolerance %.0e)\n", v.IsValid, band.DiracTolerance)
	fmt.Fprintf(out, "gap at K:           %.6f eV\n", v.GapAtK)
	fmt.Fprintf(out, "Fermi velocity:     %.4e m/s\n", vF)

	return nil
}
