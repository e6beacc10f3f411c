package grid

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimensions is returned when a grid axis has no coordinates.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")
	// ErrBufferSizeMismatch is returned when a field, mask or output buffer
	// does not hold exactly NLon*NLat cells.
	ErrBufferSizeMismatch = errors.New("grid: buffer size mismatch")
	// ErrNonMonotonic is returned when a coordinate axis is not strictly monotonic.
	ErrNonMonotonic = errors.New("grid: coordinates must be strictly monotonic")
	// ErrLatitudeRange is returned for latitudes outside [-90, 90].
	ErrLatitudeRange = errors.New("grid: latitude out of range")
	// ErrNonFinite is returned for NaN or infinite coordinates.
	ErrNonFinite = errors.New("grid: coordinates must be finite")
)

func checkAxis(name string, coords []float64) error {
	if len(coords) == 0 {
		return fmt.Errorf("%w: %s has no coordinates", ErrInvalidDimensions, name)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, name, i, c)
		}
	}
	if len(coords) < 2 {
		return nil
	}

	increasing := coords[1] > coords[0]
	for i := 1; i < len(coords); i++ {
		d := coords[i] - coords[i-1]
		if d == 0 || (d > 0) != increasing {
			return fmt.Errorf("%w: %s[%d] = %v after %v", ErrNonMonotonic, name, i, coords[i], coords[i-1])
		}
	}
	return nil
}

func checkLength(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d cells, want %d", ErrBufferSizeMismatch, what, got, want)
	}
	return nil
}
