package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// LonWidths returns the angular width in radians of each longitude column.
//
// Column edges sit halfway between neighbouring longitudes. On a periodic
// axis the end columns share the wrap gap; otherwise they extend half the
// adjacent spacing. A single column gets unit width.
func (g Grid) LonWidths() []float64 {
	n := len(g.Lon)
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = (g.Lon[i-1] + g.Lon[i]) / 2
	}

	dir := 1.0
	if g.Lon[1] < g.Lon[0] {
		dir = -1
	}
	if g.Periodic() {
		_, gap, _ := g.lonSpacing()
		edges[0] = g.Lon[0] - dir*gap/2
		edges[n] = g.Lon[n-1] + dir*gap/2
	} else {
		edges[0] = g.Lon[0] - (g.Lon[1]-g.Lon[0])/2
		edges[n] = g.Lon[n-1] + (g.Lon[n-1]-g.Lon[n-2])/2
	}

	for i := range out {
		out[i] = core.DegToRad(math.Abs(edges[i+1] - edges[i]))
	}
	return out
}

// LatWeights returns, for each latitude row, |sin φ₂ − sin φ₁| of the band
// bounded by the row edges. Edges sit halfway between neighbouring latitudes,
// the outer ones extend half the adjacent spacing, and all are clamped to the
// poles. A single row gets weight cos φ.
func (g Grid) LatWeights() []float64 {
	n := len(g.Lat)
	out := make([]float64, n)
	if n == 1 {
		out[0] = math.Cos(core.DegToRad(g.Lat[0]))
		return out
	}

	edges := make([]float64, n+1)
	for j := 1; j < n; j++ {
		edges[j] = (g.Lat[j-1] + g.Lat[j]) / 2
	}
	edges[0] = g.Lat[0] - (g.Lat[1]-g.Lat[0])/2
	edges[n] = g.Lat[n-1] + (g.Lat[n-1]-g.Lat[n-2])/2

	for j := range edges {
		edges[j] = core.Clamp(edges[j], -90, 90)
	}
	for j := range out {
		s0 := math.Sin(core.DegToRad(edges[j]))
		s1 := math.Sin(core.DegToRad(edges[j+1]))
		out[j] = math.Abs(s1 - s0)
	}
	return out
}

// CellAreas returns the area of every cell on the unit sphere, in the grid
// layout. Multiply by R² for physical units.
func (g Grid) CellAreas() []float64 {
	widths := g.LonWidths()
	bands := g.LatWeights()
	out := make([]float64, g.Size())
	for j, b := range bands {
		for i, w := range widths {
			out[g.Index(i, j)] = w * b
		}
	}
	return out
}

// TotalArea returns the summed unit-sphere area of all cells.
func (g Grid) TotalArea() float64 {
	return floats.Sum(g.CellAreas())
}
