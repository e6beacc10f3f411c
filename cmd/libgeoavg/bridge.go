package main

import (
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/cwbudde/algo-geoavg/geo/average"
	"github.com/cwbudde/algo-geoavg/geo/grid"
)

var logger = newLogger(os.Getenv("GEOAVG_LOG"), os.Stderr)

func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// call holds the arguments of one C call converted to Go slices.
type call struct {
	lon, lat []float64
	field    []float64
	mask     grid.Mask
}

func (c call) grid() (grid.Grid, error) {
	return grid.New(c.lon, c.lat, grid.LatMajor)
}

func (c call) opts() []average.Option {
	return []average.Option{average.WithLogger(logger)}
}

// arit returns the mean for a C call, or NaN on error.
func arit(op string, c call, transposed bool) float64 {
	fn := average.Arit
	if transposed {
		fn = average.Arit2
	}
	g, err := c.grid()
	if err != nil {
		logger.Warn("invalid grid", "op", op, "err", err)
		return math.NaN()
	}
	v, err := fn(g, c.field, c.mask, c.opts()...)
	if err != nil {
		logger.Warn("average failed", "op", op, "err", err)
		return math.NaN()
	}
	return v
}

// localMean runs RMean or SMean into m, filling m with NaN on error.
func localMean(op string, c call, param float64, m []float64) {
	g, err := c.grid()
	var a *average.Averager
	if err == nil {
		a, err = average.New(g, c.opts()...)
	}
	if err == nil {
		if op == "rmean" {
			err = a.RMeanTo(m, c.field, c.mask, param)
		} else {
			err = a.SMeanTo(m, c.field, c.mask, param)
		}
	}
	if err != nil {
		logger.Warn("average failed", "op", op, "param", param, "err", err)
		for i := range m {
			m[i] = math.NaN()
		}
	}
}
