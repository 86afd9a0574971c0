package band

import (
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// StructureFactor is the complex NN phase sum f1(k) = Σ exp(i·k·δ1).
type StructureFactor struct {
	Real, Imag float64
	// Magnitude is |f1(k)|; it vanishes exactly at the Dirac points.
	Magnitude float64
}

// NNStructureFactor sums the three nearest-neighbor phase factors at k.
// The geometry must be the one derived from the same parameter set the
// caller uses everywhere else: a new strain invalidates cached vectors.
//
// Symmetry: f1(−k) = conj(f1(k)).
func NNStructureFactor(k lattice.Vec2, g lattice.Geometry) StructureFactor {
	var re, im float64
	for _, d := range g.NN {
		phase := k.Dot(d)
		re += math.Cos(phase)
		im += math.Sin(phase)
	}

	return StructureFactor{Real: re, Imag: im, Magnitude: math.Hypot(re, im)}
}

// NNNStructureFactor sums cosines over the six next-nearest-neighbor
// vectors: f2(k) = Σ cos(k·δ2). Only the real part exists because the NNN
// coupling connects a sublattice to itself, pairing every vector with its
// negative. f2(Γ) = 6; f2(K) = −3.
func NNNStructureFactor(k lattice.Vec2, g lattice.Geometry) float64 {
	var sum float64
	for _, d := range g.NNN {
		sum += math.Cos(k.Dot(d))
	}

	return sum
}

// nnnChiralFactor sums sines over the three counterclockwise NNN vectors.
// It is the k-dependent part of the Kane-Mele spin-orbit mass and vanishes
// at Γ and M while taking the value −3√3/2 at the K point.
func nnnChiralFactor(k lattice.Vec2, g lattice.Geometry) float64 {
	var sum float64
	for _, d := range g.NNN[:3] {
		sum += math.Sin(k.Dot(d))
	}

	return sum
}
