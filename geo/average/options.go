package average

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// Unit selects how radius and scale parameters are measured.
type Unit int

const (
	// UnitDegrees measures great-circle arcs in degrees, the unit of the
	// grid coordinates.
	UnitDegrees Unit = iota
	// UnitKilometers measures great-circle distance on a sphere of the
	// configured Earth radius.
	UnitKilometers
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitDegrees:
		return "degrees"
	case UnitKilometers:
		return "km"
	default:
		return "unknown"
	}
}

// Strategy selects how local means are evaluated.
type Strategy int

const (
	// StrategyAuto uses the spectral path on eligible grids with at least
	// spectralThreshold longitudes and the direct path otherwise.
	StrategyAuto Strategy = iota
	// StrategyDirect evaluates every pair of cells.
	StrategyDirect
	// StrategySpectral convolves rows through the FFT. It requires equally
	// spaced periodic longitudes and a power-of-two longitude count.
	StrategySpectral
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDirect:
		return "direct"
	case StrategySpectral:
		return "spectral"
	default:
		return "unknown"
	}
}

const spectralThreshold = 64

// Option configures an Averager.
type Option func(*config)

type config struct {
	unit         Unit
	earthRadius  float64
	kernel       Kernel
	strategy     Strategy
	workers      int
	nanAsMissing bool
	logger       *slog.Logger
}

func defaultConfig() config {
	return config{
		unit:        UnitDegrees,
		earthRadius: core.EarthRadiusKm,
		kernel:      KernelGaussian,
		strategy:    StrategyAuto,
		workers:     runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithDistanceUnit sets the unit of radius and scale parameters.
func WithDistanceUnit(u Unit) Option {
	return func(c *config) {
		if u == UnitDegrees || u == UnitKilometers {
			c.unit = u
		}
	}
}

// WithEarthRadius sets the sphere radius in kilometres used by UnitKilometers.
func WithEarthRadius(km float64) Option {
	return func(c *config) {
		if km > 0 && core.IsFinite(km) {
			c.earthRadius = km
		}
	}
}

// WithKernel sets the SMean weighting kernel.
func WithKernel(k Kernel) Option {
	return func(c *config) {
		if k == KernelGaussian || k == KernelTriangular {
			c.kernel = k
		}
	}
}

// WithStrategy forces the evaluation strategy of local means.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		if s >= StrategyAuto && s <= StrategySpectral {
			c.strategy = s
		}
	}
}

// WithWorkers caps the number of goroutines computing output rows.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithNaNAsMissing treats NaN values at valid cells as masked. By default
// they propagate into every average that includes them.
func WithNaNAsMissing(enabled bool) Option {
	return func(c *config) {
		c.nanAsMissing = enabled
	}
}

// WithLogger sets the logger receiving debug records about strategy and
// kernel selection.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
