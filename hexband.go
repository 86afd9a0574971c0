package hexband

import (
	"context"

	"github.com/quantica-dev/hexband/band"
	"github.com/quantica-dev/hexband/bzone"
	"github.com/quantica-dev/hexband/dos"
	"github.com/quantica-dev/hexband/lattice"
)

// ComputeBandStructure samples E±(k) along Γ→M→K→Γ with default path
// resolution and display window. See band.Compute for full control.
func ComputeBandStructure(p lattice.Parameters, mode lattice.Mode) (*band.BandStructureResult, error) {
	return band.Compute(p, mode, band.DefaultOptions())
}

// ComputeDOS builds the broadened DOS histogram over the given window.
// See dos.Compute for default options and the concurrency contract.
func ComputeDOS(ctx context.Context, p lattice.Parameters, mode lattice.Mode, opts dos.Options) (*dos.Result, error) {
	return dos.Compute(ctx, p, mode, opts)
}

// BuildBrillouinZone constructs the hexagonal zone geometry for the
// canonical lattice constant.
func BuildBrillouinZone() (*bzone.ZoneData, error) {
	return bzone.Build(lattice.LatticeConstant)
}

// ValidateDiracPoint checks the Dirac condition |f1(K)| < tolerance at the
// canonical K point and reports the resulting gap.
func ValidateDiracPoint(p lattice.Parameters) (*band.DiracValidation, error) {
	return band.ValidateDirac(p)
}

// FermiVelocity returns the near-Dirac dispersion slope in m/s.
func FermiVelocity(p lattice.Parameters) (float64, error) {
	return band.FermiVelocity(p)
}
