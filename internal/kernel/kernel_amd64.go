//go:build amd64 && !purego

package kernel

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"gonum.org/v1/gonum/floats"
)

func init() {
	Global.Register(OpEntry{
		Name:      "unrolled4",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		DotPair:   dotPairUnrolled4,
	})
	Global.Register(OpEntry{
		Name:      "gonum",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		DotPair:   dotPairGonum,
	})
}

// dotPairUnrolled4 keeps four independent partial sums per output to break
// the add dependency chain.
func dotPairUnrolled4(w, x, y []float64) (sx, sy float64) {
	n := len(w)
	x = x[:n]
	y = y[:n]

	var x0, x1, x2, x3 float64
	var y0, y1, y2, y3 float64

	i := 0
	for ; i+3 < n; i += 4 {
		w0, w1, w2, w3 := w[i], w[i+1], w[i+2], w[i+3]
		x0 += w0 * x[i]
		x1 += w1 * x[i+1]
		x2 += w2 * x[i+2]
		x3 += w3 * x[i+3]
		y0 += w0 * y[i]
		y1 += w1 * y[i+1]
		y2 += w2 * y[i+2]
		y3 += w3 * y[i+3]
	}

	for ; i < n; i++ {
		x0 += w[i] * x[i]
		y0 += w[i] * y[i]
	}

	return (x0 + x1) + (x2 + x3), (y0 + y1) + (y2 + y3)
}

// dotPairGonum delegates to gonum's assembly dot product.
func dotPairGonum(w, x, y []float64) (sx, sy float64) {
	n := len(w)
	return floats.Dot(w, x[:n]), floats.Dot(w, y[:n])
}
