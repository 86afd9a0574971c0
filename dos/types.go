package dos

import "math"

// Defaults for DOS computation. The window covers the linear regime and
// the first van Hove singularities of the default parameter set.
const (
	DefaultEMin       = -4.0
	DefaultEMax       = 4.0
	DefaultBins       = 400
	DefaultGridN      = 120
	DefaultBroadening = 0.05

	// kernelSupport bounds the Gaussian deposit range, in units of σ.
	// Beyond 3σ the kernel contributes less than 1.2% of its mass.
	kernelSupport = 3.0
)

// Options configures Compute.
type Options struct {
	// EMin and EMax bound the energy window, in eV.
	EMin, EMax float64
	// Bins is the histogram resolution (≥ 2).
	Bins int
	// GridN is the k-grid resolution per reciprocal direction (≥ 2); the
	// total sample count is GridN².
	GridN int
	// Broadening is the Gaussian kernel width σ, in eV (> 0).
	Broadening float64
}

// DefaultOptions returns a [−4, 4] eV window, 400 bins, a 120×120 k-grid
// and σ = 0.05 eV.
func DefaultOptions() Options {
	return Options{
		EMin:       DefaultEMin,
		EMax:       DefaultEMax,
		Bins:       DefaultBins,
		GridN:      DefaultGridN,
		Broadening: DefaultBroadening,
	}
}

func (o Options) validate() error {
	if math.IsNaN(o.EMin) || math.IsNaN(o.EMax) ||
		math.IsInf(o.EMin, 0) || math.IsInf(o.EMax, 0) || o.EMin >= o.EMax {
		return ErrBadWindow
	}
	if o.Bins < 2 {
		return ErrBadBinCount
	}
	if o.GridN < 2 {
		return ErrBadResolution
	}
	if math.IsNaN(o.Broadening) || math.IsInf(o.Broadening, 0) || o.Broadening <= 0 {
		return ErrBadBroadening
	}

	return nil
}

// Sample is one histogram bin: the bin-center energy, the broadened
// numeric density, and the analytic linear-DOS reference. Densities are
// non-negative by construction (sums of positive Gaussian kernels).
type Sample struct {
	Energy float64
	// Density is in states per eV per unit cell.
	Density float64
	// Linear is the analytic near-Dirac reference at this energy.
	Linear float64
}

// Result is an immutable DOS histogram over a fixed energy window.
type Result struct {
	Samples []Sample
	// BinWidth is (EMax−EMin)/Bins, in eV.
	BinWidth float64
	// TotalStates is the per-unit-cell state count inside the window; the
	// histogram integrates to it (2.0 when the window spans the full
	// bandwidth, minus broadening-induced edge losses).
	TotalStates float64
}
