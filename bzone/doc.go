// Package bzone constructs the first Brillouin zone of the honeycomb
// lattice: the closed hexagonal boundary, named high-symmetry points
// (Γ, K, K′, M), the Γ→M→K→Γ symmetry path, and the irreducible wedge.
//
// The construction is purely geometric — hexagon vertices sit at 60°
// increments from the zone radius 4π/(3a) — and depends on nothing but
// the lattice constant. In particular it does NOT respond to strain: the
// dispersion and Dirac diagnostics account for strained neighbor vectors
// while the zone drawn here stays the unstrained hexagon. That asymmetry
// is a documented approximation (see the repository DESIGN notes), kept
// so zone overlays stay comparable across strain sweeps.
package bzone
