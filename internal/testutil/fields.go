package testutil

import (
	"math"
	"math/rand"
)

// Axis returns n equally spaced coordinates starting at start.
func Axis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// GlobalLon returns n periodic longitudes covering the globe from 0.
func GlobalLon(n int) []float64 {
	return Axis(0, 360/float64(n), n)
}

// GlobalLat returns n cell-centred latitudes from south to north, so that
// the cell edges run from -90 to 90.
func GlobalLat(n int) []float64 {
	step := 180 / float64(n)
	return Axis(-90+step/2, step, n)
}

// Constant returns n copies of v.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DeterministicField returns n values uniformly drawn from [-amplitude,
// amplitude) with a fixed seed.
func DeterministicField(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicMask returns n flags, each valid with probability frac, with
// a fixed seed.
func DeterministicMask(seed int64, frac float64, n int) []bool {
	out := make([]bool, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Float64() < frac
	}
	return out
}

// LatField returns a LatMajor field whose value at each cell is f(lon, lat).
func LatField(lon, lat []float64, f func(lon, lat float64) float64) []float64 {
	out := make([]float64, len(lon)*len(lat))
	for j, phi := range lat {
		for i, lambda := range lon {
			out[j*len(lon)+i] = f(lambda, phi)
		}
	}
	return out
}

// SinLat is a smooth test field varying with latitude only.
func SinLat(_, lat float64) float64 {
	return math.Sin(lat * math.Pi / 180)
}
