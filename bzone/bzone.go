package bzone

import (
	"errors"
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// ErrBadLatticeConstant indicates a non-positive or non-finite lattice
// constant.
var ErrBadLatticeConstant = errors.New("bzone: lattice constant must be positive and finite")

// NamedPoint is a high-symmetry point with its conventional label.
type NamedPoint struct {
	Name string
	K    lattice.Vec2
}

// ZoneData is the geometric description of the first Brillouin zone.
// It is parameter-independent beyond the lattice constant.
type ZoneData struct {
	// Hexagon is the closed zone boundary: 7 points, first == last.
	Hexagon []lattice.Vec2
	// Points are the named Γ, K, K′ and M coordinates.
	Points []NamedPoint
	// Path traces Γ→M→K→Γ.
	Path []lattice.Vec2
	// IBZ is the closed irreducible wedge: the Γ-M-K triangle, 4 points.
	IBZ []lattice.Vec2
}

// Build constructs the zone for lattice constant a (in Å). Hexagon
// vertices sit at 60° increments from the zone radius 4π/(3a); the M
// point is the midpoint of a hexagon edge at radius 2π/(√3·a).
func Build(a float64) (*ZoneData, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return nil, ErrBadLatticeConstant
	}

	radius := 4 * math.Pi / (3 * a)
	gamma := lattice.Vec2{}
	kPt := lattice.Vec2{X: radius}
	kPrime := lattice.Vec2{X: radius * 0.5, Y: radius * math.Sqrt(3) / 2}
	mPt := lattice.Vec2{X: math.Pi / a, Y: math.Pi / (math.Sqrt(3) * a)}

	z := &ZoneData{
		Hexagon: make([]lattice.Vec2, 0, 7),
		Points: []NamedPoint{
			{Name: "Γ", K: gamma},
			{Name: "K", K: kPt},
			{Name: "K′", K: kPrime},
			{Name: "M", K: mPt},
		},
		Path: []lattice.Vec2{gamma, mPt, kPt, gamma},
		IBZ:  []lattice.Vec2{gamma, mPt, kPt, gamma},
	}
	for i := 0; i <= 6; i++ {
		theta := float64(i) * math.Pi / 3
		z.Hexagon = append(z.Hexagon, lattice.Vec2{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		})
	}

	return z, nil
}
