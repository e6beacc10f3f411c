package main

/*
#include <stdbool.h>
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-geoavg/geo/grid"
)

func doubles(p *C.double, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(p)), n)
}

func intMask(p *C.int, n int) grid.Mask {
	if p == nil || n <= 0 {
		return nil
	}
	return grid.MaskFromInts(unsafe.Slice((*int32)(unsafe.Pointer(p)), n))
}

func boolMask(p *C.bool, n int) grid.Mask {
	if p == nil || n <= 0 {
		return nil
	}
	return grid.MaskFromBytes(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

func newCall(nLong, nLat C.int, lon, lat, field *C.double, mask grid.Mask) (call, bool) {
	nx, ny := int(nLong), int(nLat)
	if nx <= 0 || ny <= 0 || lon == nil || lat == nil || field == nil {
		logger.Warn("invalid arguments", "n_long", nx, "n_lat", ny)
		return call{}, false
	}
	return call{
		lon:   doubles(lon, nx),
		lat:   doubles(lat, ny),
		field: doubles(field, nx*ny),
		mask:  mask,
	}, true
}

func cells(nLong, nLat C.int) int {
	if nLong <= 0 || nLat <= 0 {
		return 0
	}
	return int(nLong) * int(nLat)
}

func writeMean(op string, r *C.double, c call, ok, transposed bool) {
	if r == nil {
		return
	}
	v := math.NaN()
	if ok {
		v = arit(op, c, transposed)
	}
	*r = C.double(v)
}

func writeLocal(op string, m *C.double, n int, c call, ok bool, param float64) {
	out := doubles(m, n)
	if !ok {
		for i := range out {
			out[i] = math.NaN()
		}
		return
	}
	localMean(op, c, param, out)
}

//export averages_arit
func averages_arit(nLong, nLat C.int, lon, lat, field *C.double, mask *C.int, r *C.double) {
	c, ok := newCall(nLong, nLat, lon, lat, field, intMask(mask, cells(nLong, nLat)))
	writeMean("arit", r, c, ok, false)
}

//export averages_arit2
func averages_arit2(nLong, nLat C.int, lon, lat, field *C.double, mask *C.int, r *C.double) {
	c, ok := newCall(nLong, nLat, lon, lat, field, intMask(mask, cells(nLong, nLat)))
	writeMean("arit2", r, c, ok, true)
}

//export averages_rmean
func averages_rmean(nLong, nLat C.int, lon, lat, field *C.double, mask *C.int, r C.double, m *C.double) {
	n := cells(nLong, nLat)
	c, ok := newCall(nLong, nLat, lon, lat, field, intMask(mask, n))
	writeLocal("rmean", m, n, c, ok, float64(r))
}

//export averages_smean
func averages_smean(nLong, nLat C.int, lon, lat, field *C.double, mask *C.int, s C.double, m *C.double) {
	n := cells(nLong, nLat)
	c, ok := newCall(nLong, nLat, lon, lat, field, intMask(mask, n))
	writeLocal("smean", m, n, c, ok, float64(s))
}

//export averages_arit_b
func averages_arit_b(nLong, nLat C.int, lon, lat, field *C.double, mask *C.bool, r *C.double) {
	c, ok := newCall(nLong, nLat, lon, lat, field, boolMask(mask, cells(nLong, nLat)))
	writeMean("arit", r, c, ok, false)
}

//export averages_arit2_b
func averages_arit2_b(nLong, nLat C.int, lon, lat, field *C.double, mask *C.bool, r *C.double) {
	c, ok := newCall(nLong, nLat, lon, lat, field, boolMask(mask, cells(nLong, nLat)))
	writeMean("arit2", r, c, ok, true)
}

//export averages_rmean_b
func averages_rmean_b(nLong, nLat C.int, lon, lat, field *C.double, mask *C.bool, r C.double, m *C.double) {
	n := cells(nLong, nLat)
	c, ok := newCall(nLong, nLat, lon, lat, field, boolMask(mask, n))
	writeLocal("rmean", m, n, c, ok, float64(r))
}

//export averages_smean_b
func averages_smean_b(nLong, nLat C.int, lon, lat, field *C.double, mask *C.bool, s C.double, m *C.double) {
	n := cells(nLong, nLat)
	c, ok := newCall(nLong, nLat, lon, lat, field, boolMask(mask, n))
	writeLocal("smean", m, n, c, ok, float64(s))
}
