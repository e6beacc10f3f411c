package grid

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Mask flags the cells of a field that take part in an average.
// true marks a valid cell. A nil Mask treats every cell as valid.
type Mask []bool

// AllValid returns a mask of n valid cells.
func AllValid(n int) Mask {
	m := make(Mask, n)
	for i := range m {
		m[i] = true
	}
	return m
}

// MaskFromInts converts a legacy integer mask (nonzero = valid).
func MaskFromInts[T constraints.Integer](flags []T) Mask {
	m := make(Mask, len(flags))
	for i, f := range flags {
		m[i] = f != 0
	}
	return m
}

// MaskFromBytes converts a byte-per-cell mask such as a C bool array
// (nonzero = valid).
func MaskFromBytes(flags []byte) Mask {
	return MaskFromInts(flags)
}

// MaskFromNaN marks every non-NaN value of field as valid. This matches
// fields whose missing cells were filled with NaN, as decoded GRIB bitmaps are.
func MaskFromNaN(field []float64) Mask {
	m := make(Mask, len(field))
	for i, v := range field {
		m[i] = !math.IsNaN(v)
	}
	return m
}

// Valid reports whether cell k is valid.
func (m Mask) Valid(k int) bool {
	return m == nil || m[k]
}

// Count returns the number of valid cells among n cells.
func (m Mask) Count(n int) int {
	if m == nil {
		return n
	}
	c := 0
	for _, v := range m {
		if v {
			c++
		}
	}
	return c
}

// Ints returns the mask in the legacy integer convention (1 = valid).
func (m Mask) Ints() []int32 {
	out := make([]int32, len(m))
	for i, v := range m {
		if v {
			out[i] = 1
		}
	}
	return out
}
