package band

import (
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// Display-window and sampling defaults for band-structure computation.
const (
	// DefaultPoints is the default number of samples along Γ→M→K→Γ.
	DefaultPoints = 300

	// DefaultClampMin and DefaultClampMax bound the display window, in eV.
	// Clamping is a presentation policy; raw energies are always retained.
	DefaultClampMin = -4.0
	DefaultClampMax = 4.0
)

// Options configures Compute.
type Options struct {
	// Points is the number of path samples (≥ 4).
	Points int
	// ClampMin and ClampMax define the display window, in eV.
	ClampMin, ClampMax float64
}

// DefaultOptions returns 300 points clamped to ±4 eV.
func DefaultOptions() Options {
	return Options{Points: DefaultPoints, ClampMin: DefaultClampMin, ClampMax: DefaultClampMax}
}

// BandPoint is one sample of the computed band structure. Valence and
// Conduction are clamped to the display window; RawValence and
// RawConduction carry the unclamped energies for analysis consumers.
type BandPoint struct {
	Distance      float64
	Valence       float64
	Conduction    float64
	RawValence    float64
	RawConduction float64
}

// BandStructureResult is an immutable band structure along Γ→M→K→Γ.
// It is created fresh per parameter change and never mutated.
type BandStructureResult struct {
	Points []BandPoint
	Labels []PathLabel
	// ClampMin and ClampMax document the display window the energies were
	// clamped to.
	ClampMin, ClampMax float64
}

// Compute maps every k-path sample through the dispersion and clamps the
// eigenvalue pair to the display window. Clamping is idempotent: feeding
// an already-clamped value back through the same window changes nothing.
//
// Complexity: O(Points).
func Compute(p lattice.Parameters, mode lattice.Mode, opts Options) (*BandStructureResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(opts.ClampMin) || math.IsNaN(opts.ClampMax) ||
		math.IsInf(opts.ClampMin, 0) || math.IsInf(opts.ClampMax, 0) ||
		opts.ClampMin >= opts.ClampMax {
		return nil, ErrBadClampWindow
	}

	path, err := BuildKPath(lattice.LatticeConstant, opts.Points)
	if err != nil {
		return nil, err
	}

	g := lattice.NewGeometry(p.Strain)
	res := &BandStructureResult{
		Points:   make([]BandPoint, len(path.Points)),
		Labels:   path.Labels,
		ClampMin: opts.ClampMin,
		ClampMax: opts.ClampMax,
	}
	for i, kp := range path.Points {
		e := Dispersion(kp.K, p, mode, g)
		res.Points[i] = BandPoint{
			Distance:      kp.Distance,
			Valence:       clamp(e.Valence, opts.ClampMin, opts.ClampMax),
			Conduction:    clamp(e.Conduction, opts.ClampMin, opts.ClampMax),
			RawValence:    e.Valence,
			RawConduction: e.Conduction,
		}
	}

	return res, nil
}

// clamp bounds x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
