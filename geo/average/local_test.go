package average

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-geoavg/geo/core"
	"github.com/cwbudde/algo-geoavg/geo/grid"
	"github.com/cwbudde/algo-geoavg/internal/testutil"
)

// ring is four equatorial cells 90° apart; all cells have equal area.
func ring() grid.Grid {
	return grid.Grid{Lon: []float64{0, 90, 180, 270}, Lat: []float64{0}}
}

func TestRMeanRing(t *testing.T) {
	field := []float64{1, 2, 3, 4}
	want := []float64{7.0 / 3, 2, 3, 8.0 / 3}

	for _, r := range []float64{90, 100, 179} {
		got, err := RMean(ring(), field, nil, r)
		if err != nil {
			t.Fatalf("r=%v: %v", r, err)
		}
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
	}

	got, err := RMean(ring(), field, nil, 89)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, field, 1e-12)
}

func TestRMeanKilometres(t *testing.T) {
	field := []float64{1, 2, 3, 4}
	want := []float64{7.0 / 3, 2, 3, 8.0 / 3}

	// 100° of arc is about 11119 km on a 6371 km sphere.
	got, err := RMean(ring(), field, nil, 11000, WithDistanceUnit(UnitKilometers))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)

	// On a sphere twice as large the same radius covers only 50°.
	got, err = RMean(ring(), field, nil, 11000,
		WithDistanceUnit(UnitKilometers), WithEarthRadius(2*core.EarthRadiusKm))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, field, 1e-12)
}

func TestRMeanZeroRadiusIsIdentity(t *testing.T) {
	g := globalGrid(24, 12)
	field := testutil.DeterministicField(11, 5, g.Size())
	mask := grid.Mask(testutil.DeterministicMask(12, 0.6, g.Size()))

	got, err := RMean(g, field, mask, 0)
	if err != nil {
		t.Fatal(err)
	}

	for k := range field {
		if !mask[k] {
			if !math.IsNaN(got[k]) {
				t.Fatalf("cell %d is masked: got %v, want NaN", k, got[k])
			}
			continue
		}
		if math.Abs(got[k]-field[k]) > 1e-12 {
			t.Fatalf("cell %d: got %v, want %v", k, got[k], field[k])
		}
	}
}

func TestRMeanWholeSphereEqualsArit(t *testing.T) {
	g := globalGrid(24, 12)
	field := testutil.DeterministicField(3, 2, g.Size())
	mask := grid.Mask(testutil.DeterministicMask(4, 0.5, g.Size()))

	mean, err := Arit(g, field, mask)
	if err != nil {
		t.Fatal(err)
	}
	got, err := RMean(g, field, mask, 180)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.Constant(mean, g.Size()), 1e-12)
}

func TestSMeanRingGaussian(t *testing.T) {
	field := []float64{1, 2, 3, 4}
	w1 := math.Exp(-0.5) // 90° at s = 90°
	w2 := math.Exp(-2)   // 180°
	den := 1 + 2*w1 + w2

	want := []float64{
		(1 + w1*(2+4) + w2*3) / den,
		(2 + w1*(1+3) + w2*4) / den,
		(3 + w1*(2+4) + w2*1) / den,
		(4 + w1*(3+1) + w2*2) / den,
	}

	got, err := SMean(ring(), field, nil, 90)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSMeanRingTriangular(t *testing.T) {
	field := []float64{1, 2, 3, 4}
	// Weights 1, 0.5, 0 at 0°, 90°, 180°.
	want := []float64{2, 2, 3, 3}

	got, err := SMean(ring(), field, nil, 180, WithKernel(KernelTriangular))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestSMeanLargeScaleApproachesArit(t *testing.T) {
	g := globalGrid(24, 12)
	field := testutil.DeterministicField(5, 1, g.Size())
	mask := grid.Mask(testutil.DeterministicMask(6, 0.7, g.Size()))

	mean, err := Arit(g, field, mask)
	if err != nil {
		t.Fatal(err)
	}

	got, err := SMean(g, field, mask, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.Constant(mean, g.Size()), 1e-12)

	for _, k := range []Kernel{KernelGaussian, KernelTriangular} {
		got, err = SMean(g, field, mask, 1e10, WithKernel(k))
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, testutil.Constant(mean, g.Size()), 1e-6)
	}
}

func TestLocalMeansIgnoreMaskedValues(t *testing.T) {
	g := globalGrid(16, 8)
	field := testutil.DeterministicField(8, 1, g.Size())
	mask := grid.AllValid(g.Size())
	mask[37] = false

	spiked := append([]float64(nil), field...)
	spiked[37] = 1e9

	for _, op := range []string{"rmean", "smean"} {
		var a, b []float64
		var err error
		if op == "rmean" {
			a, err = RMean(g, field, mask, 40)
			if err == nil {
				b, err = RMean(g, spiked, mask, 40)
			}
		} else {
			a, err = SMean(g, field, mask, 30)
			if err == nil {
				b, err = SMean(g, spiked, mask, 30)
			}
		}
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
		testutil.RequireSliceNearlyEqual(t, b, a, 0)
	}
}

func TestLocalMeansAllMasked(t *testing.T) {
	g := globalGrid(8, 4)
	field := testutil.Constant(1, g.Size())
	mask := make(grid.Mask, g.Size())

	got, err := RMean(g, field, mask, 30)
	if !errors.Is(err, ErrAllCellsMasked) {
		t.Fatalf("RMean error = %v, want ErrAllCellsMasked", err)
	}
	testutil.RequireAllNaN(t, got)

	got, err = SMean(g, field, mask, 30)
	if !errors.Is(err, ErrAllCellsMasked) {
		t.Fatalf("SMean error = %v, want ErrAllCellsMasked", err)
	}
	testutil.RequireAllNaN(t, got)
}

func TestLocalMeansParameterErrors(t *testing.T) {
	a, err := New(globalGrid(8, 4))
	if err != nil {
		t.Fatal(err)
	}
	field := testutil.Constant(1, 32)

	for _, r := range []float64{-1, math.NaN()} {
		if _, err := a.RMean(field, nil, r); !errors.Is(err, ErrInvalidRadius) {
			t.Fatalf("r=%v: error = %v", r, err)
		}
	}
	for _, s := range []float64{0, -2, math.NaN()} {
		if _, err := a.SMean(field, nil, s); !errors.Is(err, ErrInvalidScale) {
			t.Fatalf("s=%v: error = %v", s, err)
		}
	}
	if err := a.RMeanTo(make([]float64, 31), field, nil, 10); !errors.Is(err, grid.ErrBufferSizeMismatch) {
		t.Fatalf("short dst: error = %v", err)
	}
	if err := a.SMeanTo(make([]float64, 32), field[:30], nil, 10); !errors.Is(err, grid.ErrBufferSizeMismatch) {
		t.Fatalf("short field: error = %v", err)
	}
}

func TestSpectralMatchesDirect(t *testing.T) {
	g := globalGrid(32, 16)
	field := testutil.DeterministicField(21, 3, g.Size())
	mask := grid.Mask(testutil.DeterministicMask(22, 0.7, g.Size()))

	direct, err := New(g, WithStrategy(StrategyDirect))
	if err != nil {
		t.Fatal(err)
	}
	spectral, err := New(g, WithStrategy(StrategySpectral))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		run  func(a *Averager) ([]float64, error)
	}{
		{"rmean", func(a *Averager) ([]float64, error) { return a.RMean(field, mask, 25.3) }},
		{"rmean whole sphere", func(a *Averager) ([]float64, error) { return a.RMean(field, mask, 200) }},
		{"smean gaussian", func(a *Averager) ([]float64, error) { return a.SMean(field, mask, 15) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := tt.run(direct)
			if err != nil {
				t.Fatal(err)
			}
			got, err := tt.run(spectral)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}

	tri := func(s Strategy) []float64 {
		a, err := New(g, WithStrategy(s), WithKernel(KernelTriangular))
		if err != nil {
			t.Fatal(err)
		}
		out, err := a.SMean(field, mask, 40)
		if err != nil {
			t.Fatal(err)
		}
		return out
	}
	testutil.RequireSliceNearlyEqual(t, tri(StrategySpectral), tri(StrategyDirect), 1e-9)
}

func TestSpectralFallsBackOnNaN(t *testing.T) {
	g := globalGrid(32, 8)
	field := testutil.DeterministicField(2, 1, g.Size())
	field[5] = math.NaN()

	want, err := RMean(g, field, nil, 20, WithStrategy(StrategyDirect))
	if err != nil {
		t.Fatal(err)
	}
	got, err := RMean(g, field, nil, 20, WithStrategy(StrategySpectral))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestLonMajorMatchesLatMajor(t *testing.T) {
	lon := testutil.Axis(0, 12, 10)
	lat := testutil.Axis(-50, 20, 6)
	field := testutil.DeterministicField(9, 1, 60)
	mask := grid.Mask(testutil.DeterministicMask(10, 0.8, 60))

	latMajor, err := SMean(grid.Grid{Lon: lon, Lat: lat}, field, mask, 25)
	if err != nil {
		t.Fatal(err)
	}

	lonGrid := grid.Grid{Lon: lon, Lat: lat, Layout: grid.LonMajor}
	lonMajor, err := SMean(lonGrid,
		grid.Relayout(field, 10, 6, grid.LatMajor, grid.LonMajor),
		grid.Relayout(mask, 10, 6, grid.LatMajor, grid.LonMajor), 25)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t,
		grid.Relayout(lonMajor, 10, 6, grid.LonMajor, grid.LatMajor), latMajor, 0)
}

func TestWorkerCountDoesNotChangeResults(t *testing.T) {
	g := globalGrid(20, 10)
	field := testutil.DeterministicField(13, 1, g.Size())

	one, err := RMean(g, field, nil, 33, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}
	many, err := RMean(g, field, nil, 33, WithWorkers(7))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, many, one, 0)
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := RMean(ring(), []float64{1, 2, 3, 4}, nil, 10, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"averager ready", "op=rmean", "strategy=direct"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestNaNStaysInsideSupport(t *testing.T) {
	// Longitudes 0, 45, ..., 315 and latitudes -60, 0, 60.
	g := globalGrid(8, 3)
	field := testutil.Constant(1, g.Size())
	nanCell := g.Index(0, 1) // (0°, 0°)
	field[nanCell] = math.NaN()

	far := g.Index(4, 1)      // (180°, 0°)
	farNorth := g.Index(4, 2) // (180°, 60°)
	near := g.Index(0, 1)

	tests := []struct {
		name string
		run  func(a *Averager) ([]float64, error)
	}{
		{"rmean", func(a *Averager) ([]float64, error) { return a.RMean(field, nil, 10) }},
		{"smean triangular", func(a *Averager) ([]float64, error) { return a.SMean(field, nil, 5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(g, WithStrategy(StrategyDirect), WithKernel(KernelTriangular))
			if err != nil {
				t.Fatal(err)
			}
			got, err := tt.run(a)
			if err != nil {
				t.Fatal(err)
			}
			if !math.IsNaN(got[near]) {
				t.Fatalf("cell holding NaN: got %v, want NaN", got[near])
			}
			for _, k := range []int{far, farNorth} {
				if math.Abs(got[k]-1) > 1e-12 {
					t.Fatalf("cell %d outside the support: got %v, want 1", k, got[k])
				}
			}
		})
	}
}
