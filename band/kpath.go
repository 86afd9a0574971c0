package band

import (
	"math"

	"github.com/quantica-dev/hexband/lattice"
)

// KPoint is one sample along a reciprocal-space path, carrying the
// cumulative Euclidean distance from the path start.
type KPoint struct {
	K        lattice.Vec2
	Distance float64
}

// PathLabel marks the distance of a high-symmetry point along the path,
// used by renderers to place axis tick labels.
type PathLabel struct {
	Name     string
	Distance float64
}

// KPath is a sampled, distance-parameterized Γ→M→K→Γ path.
type KPath struct {
	Points []KPoint
	// Labels are Γ, M, K, Γ in path order. They are recorded from the same
	// accumulated-distance state as Points, never recomputed.
	Labels []PathLabel
}

// highSymmetryCorners returns the Γ→M→K→Γ corner sequence for lattice
// constant a.
func highSymmetryCorners(a float64) [4]lattice.Vec2 {
	gamma := lattice.Vec2{}
	m := lattice.Vec2{X: math.Pi / a, Y: math.Pi / (math.Sqrt(3) * a)}
	k := lattice.Vec2{X: 4 * math.Pi / (3 * a)}

	return [4]lattice.Vec2{gamma, m, k, gamma}
}

// BuildKPath samples n points along the three segments Γ→M→K→Γ of the
// honeycomb Brillouin zone with lattice constant a. Sample counts are
// split evenly across segments; shared corners are emitted once.
//
// Invariant: the returned distance sequence is strictly increasing. A
// zero-length segment between two distinct corners indicates a collapsed
// lattice constant and yields ErrDegeneratePath.
//
// Complexity: O(n) time and space.
func BuildKPath(a float64, n int) (*KPath, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || a <= 0 {
		return nil, ErrBadLatticeConstant
	}
	if n < 4 {
		return nil, ErrBadPointCount
	}

	corners := highSymmetryCorners(a)
	names := [4]string{"Γ", "M", "K", "Γ"}
	for s := 0; s < 3; s++ {
		if corners[s+1].Sub(corners[s]).Norm() == 0 {
			return nil, ErrDegeneratePath
		}
	}

	// Split n−1 intervals across the three segments, remainder first.
	intervals := n - 1
	counts := [3]int{intervals / 3, intervals / 3, intervals / 3}
	for s := 0; s < intervals%3; s++ {
		counts[s]++
	}

	path := &KPath{
		Points: make([]KPoint, 0, n),
		Labels: make([]PathLabel, 0, 4),
	}
	var dist float64
	prev := corners[0]
	for s := 0; s < 3; s++ {
		from, to := corners[s], corners[s+1]
		step := to.Sub(from)
		for j := 0; j < counts[s]; j++ {
			t := float64(j) / float64(counts[s])
			pt := lattice.Vec2{X: from.X + step.X*t, Y: from.Y + step.Y*t}
			dist += pt.Sub(prev).Norm()
			if j == 0 {
				// segment boundary: label shares the accumulator state
				path.Labels = append(path.Labels, PathLabel{Name: names[s], Distance: dist})
			}
			path.Points = append(path.Points, KPoint{K: pt, Distance: dist})
			prev = pt
		}
	}
	dist += corners[3].Sub(prev).Norm()
	path.Labels = append(path.Labels, PathLabel{Name: names[3], Distance: dist})
	path.Points = append(path.Points, KPoint{K: corners[3], Distance: dist})

	return path, nil
}
