// Package lattice defines the physical inputs of the tight-binding engine:
// hopping parameters, strain tensors, coupling modes, physical constants,
// and the strain-transformed neighbor geometry of the honeycomb lattice.
//
// 🚀 What lives here?
//
//   - Parameters — the immutable configuration value every computation
//     consumes: NN hopping t1, NNN hopping t2, onsite energy, an optional
//     spin-orbit coupling strength, and a linear strain tensor.
//   - StrainTensor — a dimensionless 2×2 linear deformation applied to all
//     displacement vectors as δ' = (I+ε)·δ.
//   - Geometry — the three NN and six NNN displacement vectors of a
//     (possibly strained) honeycomb lattice, derived once per parameter
//     set and threaded through every structure-factor evaluation.
//   - Named constants — lattice constant, carbon-carbon bond length,
//     default hoppings, ħ — so no derived quantity rests on a magic number.
//
// ⚙️ Conventions:
//
//	Distances are in Ångström, energies in eV, reciprocal-space vectors in
//	1/Å. The lattice is oriented with a primitive vector along +x, putting
//	the canonical K point at (4π/3a, 0).
//
// Validation is fail-fast: Parameters.Validate rejects a non-positive t1
// and any strain whose transform determinant is not positive, so that
// downstream histograms never see NaN or a degenerate lattice.
package lattice
