package average

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-geoavg/geo/grid"
	"github.com/cwbudde/algo-geoavg/internal/kernel"
)

// RMean returns, for every grid point, the area-weighted mean of the valid
// cells within great-circle distance r. The output is laid out like field.
// Points with no valid cell in range are NaN. r = 0 reproduces field at
// valid points.
func (a *Averager) RMean(field []float64, mask grid.Mask, r float64) ([]float64, error) {
	dst := make([]float64, a.nLon*a.nLat)
	return dst, a.RMeanTo(dst, field, mask, r)
}

// RMeanTo is RMean writing into the caller-owned dst.
func (a *Averager) RMeanTo(dst, field []float64, mask grid.Mask, r float64) error {
	if math.IsNaN(r) || r < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, r)
	}
	fn, sup := radiusWeight(r / a.unitScale)
	return a.local(dst, field, mask, fn, sup, "rmean", r)
}

// SMean returns, for every grid point, the mean of the valid cells weighted
// by cell area and the configured kernel at scale s. The output is laid out
// like field. s = +Inf yields the Arit value everywhere.
func (a *Averager) SMean(field []float64, mask grid.Mask, s float64) ([]float64, error) {
	dst := make([]float64, a.nLon*a.nLat)
	return dst, a.SMeanTo(dst, field, mask, s)
}

// SMeanTo is SMean writing into the caller-owned dst.
func (a *Averager) SMeanTo(dst, field []float64, mask grid.Mask, s float64) error {
	if math.IsNaN(s) || s <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	fn, sup := scaleWeight(a.cfg.kernel, s, a.unitScale)
	return a.local(dst, field, mask, fn, sup, "smean", s)
}

func (a *Averager) local(dst, field []float64, mask grid.Mask, fn weightFn, sup support, op string, param float64) error {
	if err := a.g.CheckOutput(dst); err != nil {
		return err
	}

	w, err := a.prepare(field, mask, a.g.Layout)
	if err != nil {
		return err
	}

	out := dst
	if a.g.Layout != grid.LatMajor {
		out = make([]float64, len(dst))
	}

	if w.valid == 0 {
		fillNaN(dst)
		return fmt.Errorf("%w: %d cells", ErrAllCellsMasked, len(field))
	}

	strategy := a.pickStrategy()
	if strategy == StrategySpectral && w.hasNaN {
		// The FFT would smear a NaN across whole rows.
		strategy = StrategyDirect
	}
	a.cfg.logger.Debug("local mean",
		"op", op,
		"param", param,
		"strategy", strategy.String(),
		"kernel", kernel.Selected(),
		"workers", a.cfg.workers,
	)

	if strategy == StrategySpectral {
		err = a.spectral(out, w, fn, sup)
	} else {
		err = a.direct(out, w, fn, sup)
	}
	if err != nil {
		return err
	}

	if a.g.Layout != grid.LatMajor {
		grid.Transpose(dst, out, a.nLon, a.nLat, grid.LatMajor)
	}
	return nil
}

func (a *Averager) pickStrategy() Strategy {
	switch a.cfg.strategy {
	case StrategyDirect, StrategySpectral:
		return a.cfg.strategy
	}
	if a.spectralOK && a.nLon >= spectralThreshold {
		return StrategySpectral
	}
	return StrategyDirect
}

// direct evaluates every (target, source) pair. Each output row is one task.
func (a *Averager) direct(out []float64, w weighted, fn weightFn, sup support) error {
	var eg errgroup.Group
	eg.SetLimit(a.cfg.workers)

	for row := 0; row < a.nLat; row++ {
		eg.Go(func() error {
			a.directRow(out[row*a.nLon:(row+1)*a.nLon], row, w, fn, sup)
			return nil
		})
	}

	return eg.Wait()
}

func (a *Averager) directRow(out []float64, row int, w weighted, fn weightFn, sup support) {
	nLon := a.nLon
	havLon := make([]float64, nLon)
	kw := make([]float64, nLon)

	havLat := make([]float64, a.nLat)
	for b := range havLat {
		havLat[b] = grid.Hav(a.latRad[b] - a.latRad[row])
	}

	for i := 0; i < nLon; i++ {
		for k := range havLon {
			havLon[k] = grid.Hav(a.lonRad[k] - a.lonRad[i])
		}

		var num, den float64
		for b := 0; b < a.nLat; b++ {
			if sup.excluded(havLat[b]) {
				continue
			}
			cc := a.cosLat[row] * a.cosLat[b]
			for k, hl := range havLon {
				kw[k] = fn(havLat[b] + cc*hl)
			}
			vw := w.vw[b*nLon : (b+1)*nLon]
			aw := w.aw[b*nLon : (b+1)*nLon]
			var sx, sy float64
			if w.hasNaN {
				sx, sy = dotPairInSupport(kw, vw, aw)
			} else {
				sx, sy = kernel.DotPair(kw, vw, aw)
			}
			num += sx
			den += sy
		}

		out[i] = ratio(num, den)
	}
}

// dotPairInSupport is kernel.DotPair restricted to nonzero weights, so a NaN
// outside the kernel support does not turn 0·NaN into NaN.
func dotPairInSupport(kw, vw, aw []float64) (sx, sy float64) {
	for k, wk := range kw {
		if wk == 0 {
			continue
		}
		sx += wk * vw[k]
		sy += wk * aw[k]
	}
	return sx, sy
}

func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return math.NaN()
}

func fillNaN(dst []float64) {
	nan := math.NaN()
	for i := range dst {
		dst[i] = nan
	}
}
