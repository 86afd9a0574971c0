package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quantica-dev/hexband/dos"
)

var (
	dosEMin   float64
	dosEMax   float64
	dosBins   int
	dosGrid   int
	dosSigma  float64
	dosFormat string
	dosOut    string
)

var dosCmd = &cobra.Command{
	Use:   "dos",
	Short: "Compute the Gaussian-broadened density of states",
	Long: `Sample the Brillouin zone on an N×N grid and bin both band energies
into a broadened histogram. This is the engine's heaviest operation; it
runs in parallel and aborts cleanly on Ctrl-C.

CSV columns: energy, density, linear_reference.`,
	RunE: runDOS,
}

func init() {
	dosCmd.Flags().Float64Var(&dosEMin, "emin", dos.DefaultEMin, "energy window minimum, eV")
	dosCmd.Flags().Float64Var(&dosEMax, "emax", dos.DefaultEMax, "energy window maximum, eV")
	dosCmd.Flags().IntVar(&dosBins, "bins", dos.DefaultBins, "histogram bin count")
	dosCmd.Flags().IntVar(&dosGrid, "grid", dos.DefaultGridN, "k-grid resolution per direction")
	dosCmd.Flags().Float64Var(&dosSigma, "sigma", dos.DefaultBroadening, "Gaussian broadening width, eV")
	dosCmd.Flags().StringVar(&dosFormat, "format", "csv", "output format (csv, json)")
	dosCmd.Flags().StringVar(&dosOut, "out", "-", "output file (- for stdout)")
	rootCmd.AddCommand(dosCmd)
}

func runDOS(cmd *cobra.Command, _ []string) error {
	p, mode, err := loadParameters(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := dos.Options{EMin: dosEMin, EMax: dosEMax, Bins: dosBins, GridN: dosGrid, Broadening: dosSigma}
	res, err := dos.Compute(ctx, p, mode, opts)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(dosOut)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	switch dosFormat {
	case "json":
		return writeJSON(w, res)
	case "csv":
		rows := make([][]float64, len(res.Samples))
		for i, s := range res.Samples {
			rows[i] = []float64{s.Energy, s.Density, s.Linear}
		}

		return writeCSV(w, []string{"energy", "density", "linear_reference"}, rows)
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", dosFormat)
	}
}
