package lattice

import "math"

// Mode selects which hopping shells enter the dispersion.
type Mode int

const (
	// NNOnly uses nearest-neighbor hopping only; t2 is ignored.
	NNOnly Mode = iota
	// NNPlusNNN includes the next-nearest-neighbor shell, with the spectrum
	// re-centered so the Dirac point stays at the onsite energy.
	NNPlusNNN
)

// String returns a short human-readable mode name.
func (m Mode) String() string {
	if m == NNOnly {
		return "nn"
	}

	return "nnn"
}

// Vec2 is a 2-vector in either real space (Å) or reciprocal space (1/Å).
type Vec2 struct {
	X, Y float64
}

// Dot returns the scalar product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Scale returns v scaled by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{X: v.X - w.X, Y: v.Y - w.Y} }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// StrainTensor holds dimensionless linear strain components. The induced
// real-space transform is the 2×2 matrix [[1+Exx, Exy], [Exy, 1+Eyy]].
type StrainTensor struct {
	Exx, Eyy, Exy float64
}

// Determinant returns det(I+ε), the area scaling of the strained lattice.
func (s StrainTensor) Determinant() float64 {
	return (1+s.Exx)*(1+s.Eyy) - s.Exy*s.Exy
}

// ScaleFactor returns sqrt(det(I+ε)), the factor by which strain rescales
// the Fermi velocity.
func (s StrainTensor) ScaleFactor() float64 {
	return math.Sqrt(s.Determinant())
}

// Apply returns (I+ε)·v.
func (s StrainTensor) Apply(v Vec2) Vec2 {
	return Vec2{
		X: (1+s.Exx)*v.X + s.Exy*v.Y,
		Y: s.Exy*v.X + (1+s.Eyy)*v.Y,
	}
}

// Parameters is the immutable physical configuration of the engine.
// Callers construct one (or start from Default) and pass it by value;
// there is no process-wide default state.
type Parameters struct {
	// T1 is the nearest-neighbor hopping, in eV. Must be positive.
	T1 float64
	// T2 is the next-nearest-neighbor hopping, in eV. Zero selects a pure
	// NN model even under Mode NNPlusNNN.
	T2 float64
	// Onsite is the sublattice onsite energy, in eV.
	Onsite float64
	// SOC is the intrinsic spin-orbit coupling strength λ, in eV. Zero
	// disables the spin-orbit mass term entirely.
	SOC float64
	// Strain deforms every displacement vector as δ' = (I+ε)·δ.
	Strain StrainTensor
}

// Default returns the canonical graphene parameter set: t1=2.8 eV,
// t2=0.28 eV, zero onsite energy, no spin-orbit term, unstrained.
func Default() Parameters {
	return Parameters{T1: DefaultT1, T2: DefaultT2}
}

// Validate rejects physically meaningless parameter sets: non-finite
// fields, t1 ≤ 0, or a strain transform with non-positive determinant.
func (p Parameters) Validate() error {
	for _, f := range []float64{p.T1, p.T2, p.Onsite, p.SOC, p.Strain.Exx, p.Strain.Eyy, p.Strain.Exy} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNonFiniteParameter
		}
	}
	if p.T1 <= 0 {
		return ErrNonPositiveHopping
	}
	if p.Strain.Determinant() <= 0 {
		return ErrSingularStrain
	}

	return nil
}
