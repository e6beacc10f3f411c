// Package grid describes rectangular longitude/latitude grids: coordinate
// axes, the memory layout of flattened fields, validity masks, cell areas on
// the sphere and great-circle distances between grid points.
//
// Coordinates are in degrees. Each axis must be strictly monotonic, either
// increasing or decreasing. Longitudes are not wrapped: a grid crossing the
// antimeridian must be given as an unwrapped sequence such as 170..190.
package grid

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// lonTol is the tolerance, in degrees, used when classifying longitude spacing.
const lonTol = 1e-7

// Layout identifies how a 2-D field is flattened into a slice.
type Layout int

const (
	// LatMajor stores one row per latitude: field[j*NLon+i].
	LatMajor Layout = iota
	// LonMajor stores one row per longitude: field[i*NLat+j].
	LonMajor
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LatMajor:
		return "lat-major"
	case LonMajor:
		return "lon-major"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Transposed returns the other layout.
func (l Layout) Transposed() Layout {
	if l == LonMajor {
		return LatMajor
	}
	return LonMajor
}

// Grid is a rectangular longitude/latitude grid.
type Grid struct {
	Lon    []float64 // NLon longitudes, degrees
	Lat    []float64 // NLat latitudes, degrees
	Layout Layout    // flattening order of fields on this grid
}

// New returns a validated grid with the given coordinates and layout.
func New(lon, lat []float64, layout Layout) (Grid, error) {
	g := Grid{Lon: lon, Lat: lat, Layout: layout}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// NLon returns the number of longitudes.
func (g Grid) NLon() int { return len(g.Lon) }

// NLat returns the number of latitudes.
func (g Grid) NLat() int { return len(g.Lat) }

// Size returns the number of cells, NLon*NLat.
func (g Grid) Size() int { return len(g.Lon) * len(g.Lat) }

// Validate checks the grid invariants.
func (g Grid) Validate() error {
	if err := checkAxis("longitude", g.Lon); err != nil {
		return err
	}
	if err := checkAxis("latitude", g.Lat); err != nil {
		return err
	}
	for j, lat := range g.Lat {
		if lat < -90 || lat > 90 {
			return fmt.Errorf("%w: latitude[%d] = %v", ErrLatitudeRange, j, lat)
		}
	}
	if g.Layout != LatMajor && g.Layout != LonMajor {
		return fmt.Errorf("grid: unknown layout %v", g.Layout)
	}
	return nil
}

// Index returns the flat index of cell (i, j), with i along longitude and
// j along latitude.
func (g Grid) Index(i, j int) int {
	return IndexOf(g.Layout, len(g.Lon), len(g.Lat), i, j)
}

// IndexOf returns the flat index of cell (i, j) for the given layout.
func IndexOf(layout Layout, nLon, nLat, i, j int) int {
	if layout == LonMajor {
		return i*nLat + j
	}
	return j*nLon + i
}

// CheckField verifies that field and mask hold one value per cell.
// A nil mask is accepted.
func (g Grid) CheckField(field []float64, mask Mask) error {
	n := g.Size()
	if err := checkLength("field", len(field), n); err != nil {
		return err
	}
	if mask != nil {
		if err := checkLength("mask", len(mask), n); err != nil {
			return err
		}
	}
	return nil
}

// CheckOutput verifies that dst can hold one value per cell.
func (g Grid) CheckOutput(dst []float64) error {
	return checkLength("output", len(dst), g.Size())
}

// lonSpacing returns the signed mean step and the wrap gap of the longitude axis.
func (g Grid) lonSpacing() (step, gap, maxStep float64) {
	n := len(g.Lon)
	if n < 2 {
		return 0, 0, 0
	}
	span := g.Lon[n-1] - g.Lon[0]
	step = span / float64(n-1)
	gap = 360 - math.Abs(span)
	for i := 1; i < n; i++ {
		maxStep = math.Max(maxStep, math.Abs(g.Lon[i]-g.Lon[i-1]))
	}
	return step, gap, maxStep
}

// Periodic reports whether the longitude axis closes around the globe: the
// gap between the last and the first longitude is positive and no wider than
// the widest interior spacing.
func (g Grid) Periodic() bool {
	if len(g.Lon) < 3 {
		return false
	}
	_, gap, maxStep := g.lonSpacing()
	return gap > lonTol && gap <= maxStep+lonTol
}

// UniformPeriodic reports whether longitudes are equally spaced all the way
// around the globe, including across the wrap.
func (g Grid) UniformPeriodic() bool {
	if !g.Periodic() {
		return false
	}
	step, gap, _ := g.lonSpacing()
	if math.Abs(gap-math.Abs(step)) > lonTol {
		return false
	}
	for i := 1; i < len(g.Lon); i++ {
		if math.Abs(g.Lon[i]-g.Lon[i-1]-step) > lonTol {
			return false
		}
	}
	return true
}

// LonStep returns the mean signed longitude spacing in degrees, or 0 for a
// single-column grid.
func (g Grid) LonStep() float64 {
	step, _, _ := g.lonSpacing()
	return step
}

// LatRadians returns the latitudes in radians.
func (g Grid) LatRadians() []float64 {
	out := make([]float64, len(g.Lat))
	for j, lat := range g.Lat {
		out[j] = core.DegToRad(lat)
	}
	return out
}

// LonRadians returns the longitudes in radians.
func (g Grid) LonRadians() []float64 {
	out := make([]float64, len(g.Lon))
	for i, lon := range g.Lon {
		out[i] = core.DegToRad(lon)
	}
	return out
}
