package average

import (
	"math"

	"github.com/cwbudde/algo-geoavg/geo/grid"
)

// Kernel identifies the distance weighting used by SMean.
type Kernel int

const (
	// KernelGaussian weights by exp(-d²/(2s²)).
	KernelGaussian Kernel = iota
	// KernelTriangular weights by max(0, 1-d/s).
	KernelTriangular
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelGaussian:
		return "gaussian"
	case KernelTriangular:
		return "triangular"
	default:
		return "unknown"
	}
}

// havSlack widens the radius test so that neighbours at exactly r survive
// rounding in the haversine.
const havSlack = 1e-9

// weightFn maps the haversine of a central angle to a kernel weight.
type weightFn func(h float64) float64

// support is the largest haversine with nonzero weight, or +Inf.
type support float64

// radiusWeight returns the hard-cutoff weight for a radius of rRad radians.
func radiusWeight(rRad float64) (weightFn, support) {
	if rRad >= math.Pi {
		return func(float64) float64 { return 1 }, support(math.Inf(1))
	}
	limit := grid.Hav(rRad) * (1 + havSlack)
	return func(h float64) float64 {
		if h <= limit {
			return 1
		}
		return 0
	}, support(limit)
}

// scaleWeight returns the smoothing weight for kernel k with scale s, where
// distances are converted from radians by unitScale.
func scaleWeight(k Kernel, s, unitScale float64) (weightFn, support) {
	if math.IsInf(s, 1) {
		return func(float64) float64 { return 1 }, support(math.Inf(1))
	}

	switch k {
	case KernelTriangular:
		sRad := s / unitScale
		sup := support(math.Inf(1))
		if sRad < math.Pi {
			sup = support(grid.Hav(sRad) * (1 + havSlack))
		}
		return func(h float64) float64 {
			d := grid.ArcFromHav(h) * unitScale
			if d >= s {
				return 0
			}
			return 1 - d/s
		}, sup
	default:
		inv := 1 / (2 * s * s)
		return func(h float64) float64 {
			d := grid.ArcFromHav(h) * unitScale
			return expNeg(d * d * inv)
		}, support(math.Inf(1))
	}
}

// excluded reports whether a whole source row is out of reach: every cell of
// a row at latitude offset dPhi has haversine at least Hav(dPhi).
func (s support) excluded(havDPhi float64) bool {
	return havDPhi > float64(s)
}
