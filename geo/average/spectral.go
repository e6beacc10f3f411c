package average

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-geoavg/geo/conv"
	"github.com/cwbudde/algo-geoavg/geo/core"
	"github.com/cwbudde/algo-geoavg/geo/grid"
)

// spectralTol is the weight total, relative to the whole grid, below which
// a spectral output cell counts as empty. FFT round-off leaves residues of
// about 1e-16 where the exact total is zero.
const spectralTol = 1e-12

// spectral evaluates local means on a uniform periodic longitude axis. For a
// pair of rows the kernel depends only on the column offset, so each row
// pair contributes a circular convolution, accumulated in the frequency
// domain and inverted once per output row.
func (a *Averager) spectral(out []float64, w weighted, fn weightFn, sup support) error {
	n := a.nLon
	step := core.DegToRad(a.g.LonStep())
	havLon := make([]float64, n)
	for d := range havLon {
		havLon[d] = grid.Hav(float64(d) * step)
	}

	specV := make([][]complex128, a.nLat)
	specA := make([][]complex128, a.nLat)

	var eg errgroup.Group
	eg.SetLimit(a.cfg.workers)
	for b := 0; b < a.nLat; b++ {
		eg.Go(func() error {
			p, err := conv.NewPlan(n)
			if err != nil {
				return err
			}
			specV[b] = make([]complex128, n)
			specA[b] = make([]complex128, n)
			if err := p.Spectrum(specV[b], w.vw[b*n:(b+1)*n]); err != nil {
				return err
			}
			return p.Spectrum(specA[b], w.aw[b*n:(b+1)*n])
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	tol := spectralTol * floats.Sum(w.aw)

	var rows errgroup.Group
	rows.SetLimit(a.cfg.workers)
	for row := 0; row < a.nLat; row++ {
		rows.Go(func() error {
			p, err := conv.NewPlan(n)
			if err != nil {
				return err
			}

			kw := make([]float64, n)
			kspec := make([]complex128, n)
			accV := make([]complex128, n)
			accA := make([]complex128, n)

			for b := 0; b < a.nLat; b++ {
				havLat := grid.Hav(a.latRad[b] - a.latRad[row])
				if sup.excluded(havLat) {
					continue
				}
				cc := a.cosLat[row] * a.cosLat[b]
				for d, hl := range havLon {
					kw[d] = fn(havLat + cc*hl)
				}
				if err := p.Spectrum(kspec, kw); err != nil {
					return err
				}
				conv.MulAccumulate(accV, kspec, specV[b])
				conv.MulAccumulate(accA, kspec, specA[b])
			}

			num := out[row*n : (row+1)*n]
			den := make([]float64, n)
			if err := p.Real(num, accV); err != nil {
				return err
			}
			if err := p.Real(den, accA); err != nil {
				return err
			}

			for i := range num {
				if den[i] > tol {
					num[i] /= den[i]
				} else {
					num[i] = math.NaN()
				}
			}
			return nil
		})
	}

	return rows.Wait()
}
