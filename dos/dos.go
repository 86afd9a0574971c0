package dos

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/quantica-dev/hexband/band"
	"github.com/quantica-dev/hexband/lattice"
)

// partial is one worker's private accumulation buffer. Workers never share
// state; partials are merged after the last row.
type partial struct {
	hist []float64
	// states is the per-unit-cell weight of samples whose energy landed
	// inside the window; it normalizes the final histogram.
	states float64
}

// Compute builds the Gaussian-broadened DOS histogram for one parameter
// set. Grid rows are distributed over runtime.GOMAXPROCS workers; the
// context is checked between rows, so cancellation aborts promptly and
// returns ctx.Err() with no partial result.
//
// Errors: parameter validation errors from lattice, option errors from
// this package, ErrEmptySpectrum when the window misses the whole band
// range, and ctx.Err() on cancellation.
//
// Complexity: O(GridN²·supportBins) time, O(workers·Bins) memory.
func Compute(ctx context.Context, p lattice.Parameters, mode lattice.Mode, opts Options) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	g := lattice.NewGeometry(p.Strain)
	b1, b2 := g.Reciprocal()

	binWidth := (opts.EMax - opts.EMin) / float64(opts.Bins)
	// Each of the two bands contributes one state per unit cell, spread
	// uniformly over the GridN² samples.
	weight := 1 / float64(opts.GridN*opts.GridN)

	workers := runtime.GOMAXPROCS(0)
	if workers > opts.GridN {
		workers = opts.GridN
	}
	parts := make([]*partial, workers)

	eg, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (opts.GridN + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * rowsPerWorker
		hi := lo + rowsPerWorker
		if hi > opts.GridN {
			hi = opts.GridN
		}
		part := &partial{hist: make([]float64, opts.Bins)}
		parts[w] = part
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				u := float64(i) / float64(opts.GridN)
				for j := 0; j < opts.GridN; j++ {
					v := float64(j) / float64(opts.GridN)
					k := lattice.Vec2{
						X: u*b1.X + v*b2.X,
						Y: u*b1.Y + v*b2.Y,
					}
					e := band.Dispersion(k, p, mode, g)
					part.deposit(e.Valence, weight, opts, binWidth)
					part.deposit(e.Conduction, weight, opts, binWidth)
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	hist := make([]float64, opts.Bins)
	var states, integral float64
	for _, part := range parts {
		states += part.states
		for b, h := range part.hist {
			hist[b] += h
		}
	}
	for _, h := range hist {
		integral += h * binWidth
	}
	if states == 0 || integral == 0 {
		return nil, ErrEmptySpectrum
	}

	// Rescale so the histogram integrates to the in-window state count,
	// absorbing the discretization error of the sampled kernels.
	scale := states / integral

	vF, err := band.FermiVelocity(p)
	if err != nil {
		return nil, err
	}
	linear := linearPrefactor(p, vF)

	res := &Result{
		Samples:     make([]Sample, opts.Bins),
		BinWidth:    binWidth,
		TotalStates: states,
	}
	for b := range res.Samples {
		energy := opts.EMin + (float64(b)+0.5)*binWidth
		res.Samples[b] = Sample{
			Energy:  energy,
			Density: hist[b] * scale,
			Linear:  linear * math.Abs(energy-p.Onsite),
		}
	}

	return res, nil
}

// deposit adds a normalized Gaussian kernel centered at energy e into the
// bins within ±kernelSupport·σ, and tracks in-window weight.
func (pt *partial) deposit(e, weight float64, opts Options, binWidth float64) {
	if e >= opts.EMin && e <= opts.EMax {
		pt.states += weight
	}

	sigma := opts.Broadening
	lo := int(math.Floor((e - kernelSupport*sigma - opts.EMin) / binWidth))
	hi := int(math.Ceil((e + kernelSupport*sigma - opts.EMin) / binWidth))
	if lo < 0 {
		lo = 0
	}
	if hi > opts.Bins-1 {
		hi = opts.Bins - 1
	}
	norm := weight / (sigma * math.Sqrt(2*math.Pi))
	inv2s2 := 1 / (2 * sigma * sigma)
	for b := lo; b <= hi; b++ {
		x := opts.EMin + (float64(b)+0.5)*binWidth - e
		pt.hist[b] += norm * math.Exp(-x*x*inv2s2)
	}
}

// linearPrefactor returns A_cell/(π·(ħ·v_F)²) in states/eV²/cell, so that
// ρ_lin(E) = prefactor·|E−E_D|. The strained cell area and the strained
// Fermi velocity enter together; for the unstrained default this reduces
// to the textbook 2/(√3·π·t1²).
func linearPrefactor(p lattice.Parameters, vF float64) float64 {
	a := lattice.LatticeConstant * lattice.Angstrom
	cellArea := math.Sqrt(3) / 2 * a * a * p.Strain.Determinant()
	hbarVF := lattice.HBar * vF

	return cellArea / (math.Pi * hbarVF * hbarVF)
}
