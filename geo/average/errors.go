package average

import "errors"

var (
	// ErrInvalidRadius is returned for a negative or NaN RMean radius.
	ErrInvalidRadius = errors.New("average: radius must be >= 0")
	// ErrInvalidScale is returned for a non-positive or NaN SMean scale.
	ErrInvalidScale = errors.New("average: scale must be > 0")
	// ErrSpectralUnsupported is returned when StrategySpectral is forced on a
	// grid without equally spaced periodic power-of-two longitudes.
	ErrSpectralUnsupported = errors.New("average: grid does not support the spectral strategy")
	// ErrAllCellsMasked is returned, together with NaN results, when no cell
	// carries weight.
	ErrAllCellsMasked = errors.New("average: no valid cells")
)
