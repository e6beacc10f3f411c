// Package conv provides circular convolution of real sequences.
//
// Circular convolution is the building block of the spectral averaging
// strategy: on a longitude axis that closes around the globe, a distance
// kernel depends only on the column offset, so smoothing a row is a
// convolution modulo the row length.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.CircularDirect(a, b) // O(N²)
//	result, err := conv.CircularFFT(a, b)    // O(N log N), power-of-two lengths
//	result, err := conv.Circular(a, b)       // picks one of the above
//
// For repeated convolution with the same length, create a reusable plan:
//
//	p, err := conv.NewPlan(n)
//	err = p.Spectrum(spec, x)
//	err = p.Real(out, spec)
//
// # Algorithm Selection
//
// [Circular] uses the FFT for power-of-two lengths of at least
// [DirectThreshold] and direct evaluation otherwise.
package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrInvalidSize    = errors.New("conv: FFT size must be a power of two")
)

// DirectThreshold is the smallest length for which [Circular] uses the FFT.
const DirectThreshold = 64

// CircularDirect returns the circular convolution of a and b:
// out[i] = Σ_k a[k]·b[(i-k) mod n].
func CircularDirect(a, b []float64) ([]float64, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	out := make([]float64, len(a))
	CircularDirectTo(out, a, b)
	return out, nil
}

// CircularDirectTo writes the circular convolution of a and b into dst.
// All three slices must have the same length.
func CircularDirectTo(dst, a, b []float64) {
	n := len(a)
	for i := 0; i < n; i++ {
		var sum float64
		for k := 0; k < n; k++ {
			idx := i - k
			if idx < 0 {
				idx += n
			}
			sum += a[k] * b[idx]
		}
		dst[i] = sum
	}
}

// CircularFFT returns the circular convolution of a and b computed through
// the FFT. The length must be a power of two.
func CircularFFT(a, b []float64) ([]float64, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}

	p, err := NewPlan(len(a))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	if err := p.Convolve(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// Circular returns the circular convolution of a and b, choosing the FFT for
// long power-of-two inputs and direct evaluation otherwise.
func Circular(a, b []float64) ([]float64, error) {
	if err := checkPair(a, b); err != nil {
		return nil, err
	}
	if len(a) >= DirectThreshold && core.IsPowerOfTwo(len(a)) {
		return CircularFFT(a, b)
	}
	return CircularDirect(a, b)
}

func checkPair(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}
