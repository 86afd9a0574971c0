// Package hexband is a tight-binding electronic-structure engine for
// two-dimensional honeycomb (graphene-like) lattices — band dispersion,
// density of states, Brillouin-zone geometry and Dirac-point diagnostics
// from a handful of physical parameters.
//
// 🚀 What is hexband?
//
//	A small, pure-Go numerical library that brings together:
//		• Lattice geometry: strain-transformed NN / NNN displacement vectors
//		• Structure factors: complex phase sums over neighbor shells
//		• Dispersion: the two-band spectrum E±(k), NN-only or NN+NNN,
//		  with an optional spin-orbit mass term
//		• Band structures: sampled Γ→M→K→Γ paths with display clamping
//		• DOS: Gaussian-broadened Brillouin-zone histograms, parallel and
//		  cancellable, with an analytic linear-DOS reference
//		• Zone geometry: hexagonal boundary, high-symmetry points, IBZ
//
// ✨ Why choose hexband?
//
//   - Plain data in, plain data out – parameters go in as a value, results
//     come back as slices; no handles, no callbacks, no global state
//   - Pure functions – every computation is referentially transparent,
//     trivially memoizable and parallel-safe
//   - Fail fast – invalid hoppings and singular strain tensors are rejected
//     at the boundary with sentinel errors, never propagated as NaN
//
// Everything is organized under four subpackages:
//
//	lattice/ — parameters, strain tensors, physical constants, geometry
//	band/    — structure factors, dispersion, k-paths, band structures,
//	           Dirac validation and Fermi velocity
//	dos/     — density-of-states histograms with Gaussian broadening
//	bzone/   — Brillouin-zone boundary, named points, symmetry path, IBZ
//
// Quick ASCII example:
//
//	  K'────M────K
//	 /           \
//	M      Γ      M      the first Brillouin zone of the
//	 \           /       honeycomb lattice, traced Γ→M→K→Γ
//	  K────M────K'
//
// The root package re-exports the full call surface as five convenience
// functions (ComputeBandStructure, ComputeDOS, BuildBrillouinZone,
// ValidateDiracPoint, FermiVelocity) for callers that want defaults.
//
//	go get github.com/quantica-dev/hexband
package hexband
