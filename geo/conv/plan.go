package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// Plan performs repeated circular convolutions of a fixed length.
// A Plan holds scratch buffers and is not safe for concurrent use.
type Plan struct {
	n       int
	fft     *algofft.Plan[complex128]
	scratch []complex128
	specA   []complex128
	specB   []complex128
}

// NewPlan returns a plan for length n, which must be a power of two.
func NewPlan(n int) (*Plan, error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	fft, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	return &Plan{
		n:       n,
		fft:     fft,
		scratch: make([]complex128, n),
		specA:   make([]complex128, n),
		specB:   make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Spectrum writes the forward transform of the real sequence x into dst.
func (p *Plan) Spectrum(dst []complex128, x []float64) error {
	if len(dst) != p.n || len(x) != p.n {
		return fmt.Errorf("%w: plan %d, dst %d, x %d", ErrLengthMismatch, p.n, len(dst), len(x))
	}

	for i, v := range x {
		p.scratch[i] = complex(v, 0)
	}

	if err := p.fft.Forward(dst, p.scratch); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	return nil
}

// Real writes the real part of the inverse transform of spec into dst.
// spec is left untouched.
func (p *Plan) Real(dst []float64, spec []complex128) error {
	if len(dst) != p.n || len(spec) != p.n {
		return fmt.Errorf("%w: plan %d, dst %d, spec %d", ErrLengthMismatch, p.n, len(dst), len(spec))
	}

	if err := p.fft.Inverse(p.scratch, spec); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	for i := range dst {
		dst[i] = real(p.scratch[i])
	}
	return nil
}

// Convolve writes the circular convolution of a and b into dst.
func (p *Plan) Convolve(dst, a, b []float64) error {
	if err := p.Spectrum(p.specA, a); err != nil {
		return err
	}
	if err := p.Spectrum(p.specB, b); err != nil {
		return err
	}

	for i := range p.specA {
		p.specA[i] *= p.specB[i]
	}

	return p.Real(dst, p.specA)
}

// MulAccumulate adds x[i]*y[i] to acc[i] for every bin.
func MulAccumulate(acc, x, y []complex128) {
	for i := range acc {
		acc[i] += x[i] * y[i]
	}
}
