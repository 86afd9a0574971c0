package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantica-dev/hexband/band"
)

var (
	bandsPoints   int
	bandsClampMin float64
	bandsClampMax float64
	bandsFormat   string
	bandsOut      string
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Compute the Γ→M→K→Γ band structure",
	Long: `Compute the two-band dispersion along the Γ→M→K→Γ high-symmetry path.

CSV columns: distance, valence, conduction, raw_valence, raw_conduction.
The valence/conduction columns are clamped to the display window; the
raw columns carry the true energies.`,
	RunE: runBands,
}

func init() {
	bandsCmd.Flags().IntVar(&bandsPoints, "points", band.DefaultPoints, "path sample count")
	bandsCmd.Flags().Float64Var(&bandsClampMin, "clamp-min", band.DefaultClampMin, "display window minimum, eV")
	bandsCmd.Flags().Float64Var(&bandsClampMax, "clamp-max", band.DefaultClampMax, "display window maximum, eV")
	bandsCmd.Flags().StringVar(&bandsFormat, "format", "csv", "output format (csv, json)")
	bandsCmd.Flags().StringVar(&bandsOut, "out", "-", "output file (- for stdout)")
	rootCmd.AddCommand(bandsCmd)
}

func runBands(cmd *cobra.Command, _ []string) error {
	p, mode, err := loadParameters(cmd)
	if err != nil {
		return err
	}

	opts := band.Options{Points: bandsPoints, ClampMin: bandsClampMin, ClampMax: bandsClampMax}
	res, err := band.Compute(p, mode, opts)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(bandsOut)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	switch bandsFormat {
	case "json":
		return writeJSON(w, res)
	case "csv":
		rows := make([][]float64, len(res.Points))
		for i, pt := range res.Points {
			rows[i] = []float64{pt.Distance, pt.Valence, pt.Conduction, pt.RawValence, pt.RawConduction}
		}

		return writeCSV(w, []string{"distance", "valence", "conduction", "raw_valence", "raw_conduction"}, rows)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", bandsFormat)
	}
}
