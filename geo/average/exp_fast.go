//go:build fastmath

package average

import "github.com/meko-christian/algo-approx"

// expNeg returns an approximation of exp(-x) for x >= 0.
// Arguments beyond the float64 range of exp are flushed to zero.
func expNeg(x float64) float64 {
	if x > 700 {
		return 0
	}
	return approx.FastExp(-x)
}
