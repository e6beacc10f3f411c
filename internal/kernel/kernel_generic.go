package kernel

import "github.com/cwbudde/algo-vecmath/cpu"

func init() {
	Global.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		DotPair:   dotPairGeneric,
	})
}

func dotPairGeneric(w, x, y []float64) (sx, sy float64) {
	x = x[:len(w)]
	y = y[:len(w)]
	for i, wi := range w {
		sx += wi * x[i]
		sy += wi * y[i]
	}
	return sx, sy
}
