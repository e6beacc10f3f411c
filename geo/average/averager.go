package average

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-geoavg/geo/core"
	"github.com/cwbudde/algo-geoavg/geo/grid"
)

// Averager computes area-weighted averages of fields on one grid.
// It is immutable after New and safe for concurrent use.
type Averager struct {
	g    grid.Grid
	cfg  config
	nLon int
	nLat int

	// LatMajor cell areas on the unit sphere.
	areas []float64

	latRad []float64
	cosLat []float64
	lonRad []float64

	spectralOK bool
	unitScale  float64 // distance units per radian
}

// New validates g and precomputes the geometry shared by all averages.
func New(g grid.Grid, opts ...Option) (*Averager, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	a := &Averager{
		g:    g,
		cfg:  cfg,
		nLon: g.NLon(),
		nLat: g.NLat(),
	}

	widths := g.LonWidths()
	bands := g.LatWeights()
	a.areas = make([]float64, a.nLon*a.nLat)
	for j, b := range bands {
		vecmath.ScaleBlock(a.areas[j*a.nLon:(j+1)*a.nLon], widths, b)
	}

	a.latRad = g.LatRadians()
	a.cosLat = make([]float64, a.nLat)
	for j, phi := range a.latRad {
		a.cosLat[j] = math.Cos(phi)
	}
	a.lonRad = g.LonRadians()

	a.spectralOK = g.UniformPeriodic() && core.IsPowerOfTwo(a.nLon)

	switch cfg.unit {
	case UnitKilometers:
		a.unitScale = cfg.earthRadius
	default:
		a.unitScale = core.RadToDeg(1)
	}

	if cfg.strategy == StrategySpectral && !a.spectralOK {
		return nil, fmt.Errorf("%w: %d longitudes, uniform periodic=%v",
			ErrSpectralUnsupported, a.nLon, g.UniformPeriodic())
	}

	cfg.logger.Debug("averager ready",
		"nlon", a.nLon,
		"nlat", a.nLat,
		"layout", g.Layout.String(),
		"periodic", g.Periodic(),
		"spectral", a.spectralOK,
		"unit", cfg.unit.String(),
	)

	return a, nil
}

// Grid returns the grid the averager was built for.
func (a *Averager) Grid() grid.Grid {
	return a.g
}

// Arit returns the area-weighted mean of the valid cells of field. field and
// mask are read in the grid layout; a nil mask treats every cell as valid.
//
// When no cell is valid the result is NaN and the error wraps
// ErrAllCellsMasked.
func (a *Averager) Arit(field []float64, mask grid.Mask) (float64, error) {
	return a.arit(field, mask, a.g.Layout)
}

// Arit2 is Arit with field and mask read in the transposed layout: LonMajor
// for a LatMajor grid and LatMajor for a LonMajor grid.
func (a *Averager) Arit2(field []float64, mask grid.Mask) (float64, error) {
	return a.arit(field, mask, a.g.Layout.Transposed())
}

func (a *Averager) arit(field []float64, mask grid.Mask, layout grid.Layout) (float64, error) {
	w, err := a.prepare(field, mask, layout)
	if err != nil {
		return math.NaN(), err
	}
	if w.valid == 0 {
		return math.NaN(), fmt.Errorf("%w: %d cells", ErrAllCellsMasked, len(field))
	}

	den := floats.Sum(w.aw)
	if den == 0 {
		return math.NaN(), fmt.Errorf("%w: valid cells have zero area", ErrAllCellsMasked)
	}
	return floats.Sum(w.vw) / den, nil
}

// weighted holds LatMajor rows of area·value (vw) and area (aw), with masked
// cells zeroed in both.
type weighted struct {
	vw     []float64
	aw     []float64
	valid  int
	hasNaN bool
}

func (a *Averager) prepare(field []float64, mask grid.Mask, layout grid.Layout) (weighted, error) {
	if err := a.g.CheckField(field, mask); err != nil {
		return weighted{}, err
	}

	field = grid.Relayout(field, a.nLon, a.nLat, layout, grid.LatMajor)
	mask = grid.Relayout(mask, a.nLon, a.nLat, layout, grid.LatMajor)

	n := len(field)
	w := weighted{
		vw: make([]float64, n),
		aw: make([]float64, n),
	}

	values := make([]float64, n)
	flags := make([]float64, n)
	for k, v := range field {
		if !mask.Valid(k) || (a.cfg.nanAsMissing && math.IsNaN(v)) {
			continue
		}
		values[k] = v
		flags[k] = 1
		w.valid++
		if math.IsNaN(v) {
			w.hasNaN = true
		}
	}

	vecmath.MulBlock(w.aw, a.areas, flags)
	vecmath.MulBlock(w.vw, w.aw, values)

	return w, nil
}
