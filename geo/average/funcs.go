package average

import (
	"math"

	"github.com/cwbudde/algo-geoavg/geo/grid"
)

// Arit returns the area-weighted mean of field over the valid cells of g.
// See [Averager.Arit].
func Arit(g grid.Grid, field []float64, mask grid.Mask, opts ...Option) (float64, error) {
	a, err := New(g, opts...)
	if err != nil {
		return math.NaN(), err
	}
	return a.Arit(field, mask)
}

// Arit2 returns the area-weighted mean with field and mask read in the
// transposed layout. See [Averager.Arit2].
func Arit2(g grid.Grid, field []float64, mask grid.Mask, opts ...Option) (float64, error) {
	a, err := New(g, opts...)
	if err != nil {
		return math.NaN(), err
	}
	return a.Arit2(field, mask)
}

// RMean returns the hard-radius local mean of field. See [Averager.RMean].
func RMean(g grid.Grid, field []float64, mask grid.Mask, r float64, opts ...Option) ([]float64, error) {
	a, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	return a.RMean(field, mask, r)
}

// SMean returns the kernel-weighted local mean of field. See [Averager.SMean].
func SMean(g grid.Grid, field []float64, mask grid.Mask, s float64, opts ...Option) ([]float64, error) {
	a, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	return a.SMean(field, mask, s)
}
