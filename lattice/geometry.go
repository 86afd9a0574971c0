package lattice

import "math"

// Geometry holds the strain-transformed displacement and primitive vectors
// of the honeycomb lattice for one parameter set. It is derived once per
// parameter change and threaded through every structure-factor evaluation;
// a new strain value invalidates any previously derived Geometry.
type Geometry struct {
	// NN are the three nearest-neighbor (A→B sublattice) vectors, in Å.
	NN [3]Vec2
	// NNN are the six next-nearest-neighbor vectors (±a1, ±a2, ±(a2−a1)).
	NNN [6]Vec2
	// A1, A2 are the strained primitive lattice vectors.
	A1, A2 Vec2
}

// unstrained honeycomb basis, oriented with a1 along +x so the canonical
// K point sits at (4π/3a, 0).
func unstrainedBasis() (a1, a2 Vec2, nn [3]Vec2) {
	a1 = Vec2{X: LatticeConstant}
	a2 = Vec2{X: LatticeConstant / 2, Y: LatticeConstant * math.Sqrt(3) / 2}
	nn = [3]Vec2{
		{X: 0, Y: BondLength},
		{X: LatticeConstant / 2, Y: -BondLength / 2},
		{X: -LatticeConstant / 2, Y: -BondLength / 2},
	}

	return a1, a2, nn
}

// NewGeometry derives the strained neighbor geometry δ' = (I+ε)·δ.
// Any strain tensor is accepted; singularity is rejected upstream by
// Parameters.Validate.
func NewGeometry(s StrainTensor) Geometry {
	a1, a2, nn := unstrainedBasis()

	var g Geometry
	g.A1 = s.Apply(a1)
	g.A2 = s.Apply(a2)
	for i, d := range nn {
		g.NN[i] = s.Apply(d)
	}

	// The NNN shell is the six lattice translations around a site. The
	// first three carry the counterclockwise chirality used by the
	// spin-orbit mass term; the rest are their negatives.
	half := [3]Vec2{g.A1, g.A2.Sub(g.A1), g.A2.Scale(-1)}
	for i, d := range half {
		g.NNN[i] = d
		g.NNN[i+3] = d.Scale(-1)
	}

	return g
}

// Reciprocal returns the primitive reciprocal vectors b1, b2 of the
// strained lattice (bi·aj = 2π·δij). Sampling k = u·b1 + v·b2 with u,v
// uniform on [0,1) covers exactly one Brillouin zone.
func (g Geometry) Reciprocal() (b1, b2 Vec2) {
	det := g.A1.X*g.A2.Y - g.A1.Y*g.A2.X
	f := 2 * math.Pi / det
	b1 = Vec2{X: g.A2.Y * f, Y: -g.A2.X * f}
	b2 = Vec2{X: -g.A1.Y * f, Y: g.A1.X * f}

	return b1, b2
}
