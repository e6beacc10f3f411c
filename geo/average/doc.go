// Package average computes spatial averages of scalar fields on
// longitude/latitude grids, honouring a validity mask.
//
// Four averages are provided:
//
//   - Arit: one global mean, each valid cell weighted by its area on the sphere
//   - Arit2: Arit with the field read in the transposed layout
//   - RMean: per-point mean over valid cells within a great-circle radius
//   - SMean: per-point mean weighted by a smoothing kernel of a given scale
//
// # Usage
//
//	g := grid.Grid{Lon: lon, Lat: lat} // LatMajor: field[j*len(lon)+i]
//	a, err := average.New(g, average.WithDistanceUnit(average.UnitKilometers))
//	mean, err := a.Arit(field, mask)
//	local, err := a.RMean(field, mask, 500)
//	smooth, err := a.SMean(field, mask, 250)
//
// # Missing data
//
// Masked cells never contribute. Points whose neighbourhood holds no valid
// cell come out as NaN. When no cell is valid at all, results are NaN and the
// error wraps [ErrAllCellsMasked].
//
// # Algorithm Selection
//
// Local means are evaluated pairwise (O(N²) in the cell count) or, on grids
// whose longitudes are equally spaced around the whole globe with a
// power-of-two count, by FFT circular convolution along longitude. The
// default [StrategyAuto] uses the FFT from 64 longitudes upward. Both paths
// split output rows across goroutines.
package average
