//go:build !fastmath

package average

import "math"

// expNeg returns exp(-x) for x >= 0.
func expNeg(x float64) float64 {
	return math.Exp(-x)
}
