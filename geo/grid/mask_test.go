package grid

import (
	"math"
	"testing"
)

func TestMaskFromInts(t *testing.T) {
	m := MaskFromInts([]int32{0, 1, -3, 0})
	want := Mask{false, true, true, false}
	for i := range want {
		if m[i] != want[i] {
			t.Fatalf("mask[%d] = %v, want %v", i, m[i], want[i])
		}
	}
	if got := m.Count(4); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	ints := m.Ints()
	if ints[0] != 0 || ints[1] != 1 || ints[2] != 1 {
		t.Fatalf("Ints() = %v", ints)
	}
}

func TestMaskFromBytes(t *testing.T) {
	m := MaskFromBytes([]byte{1, 0, 255})
	if !m[0] || m[1] || !m[2] {
		t.Fatalf("MaskFromBytes = %v", m)
	}
}

func TestMaskFromNaN(t *testing.T) {
	m := MaskFromNaN([]float64{1, math.NaN(), 0})
	if !m[0] || m[1] || !m[2] {
		t.Fatalf("MaskFromNaN = %v", m)
	}
}

func TestNilMaskIsAllValid(t *testing.T) {
	var m Mask
	if !m.Valid(12) {
		t.Fatal("nil mask should treat every cell as valid")
	}
	if m.Count(5) != 5 {
		t.Fatalf("nil mask Count(5) = %d", m.Count(5))
	}
	if AllValid(3).Count(3) != 3 {
		t.Fatal("AllValid(3) has invalid cells")
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6} // LatMajor, nLon=3, nLat=2
	lonMajor := Relayout(src, 3, 2, LatMajor, LonMajor)
	want := []float64{1, 4, 2, 5, 3, 6}
	for i := range want {
		if lonMajor[i] != want[i] {
			t.Fatalf("LonMajor = %v, want %v", lonMajor, want)
		}
	}

	back := Relayout(lonMajor, 3, 2, LonMajor, LatMajor)
	for i := range src {
		if back[i] != src[i] {
			t.Fatalf("round trip = %v, want %v", back, src)
		}
	}

	var nilMask Mask
	if Relayout(nilMask, 3, 2, LatMajor, LonMajor) != nil {
		t.Fatal("nil mask should stay nil")
	}
}
