package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selected     *OpEntry
	selectedOnce sync.Once
)

func initSelected() {
	entry := Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no DotPair kernel registered (missing generic fallback?)")
	}
	if entry.DotPair == nil {
		panic("kernel: selected kernel missing DotPair")
	}
	selected = entry
}

// DotPair returns Σ w[i]*x[i] and Σ w[i]*y[i] using the best kernel for
// this CPU.
func DotPair(w, x, y []float64) (sx, sy float64) {
	selectedOnce.Do(initSelected)
	return selected.DotPair(w, x, y)
}

// Selected returns the name of the kernel DotPair dispatches to.
func Selected() string {
	selectedOnce.Do(initSelected)
	return selected.Name
}

// resetSelection forgets the cached choice so tests can force CPU features.
func resetSelection() {
	selected = nil
	selectedOnce = sync.Once{}
}
