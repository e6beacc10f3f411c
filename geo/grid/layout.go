package grid

// Transpose copies src, laid out as from on an nLon x nLat grid, into dst in
// the other layout. dst and src must not overlap and must both hold
// nLon*nLat values.
func Transpose[T any](dst, src []T, nLon, nLat int, from Layout) {
	to := from.Transposed()
	for j := 0; j < nLat; j++ {
		for i := 0; i < nLon; i++ {
			dst[IndexOf(to, nLon, nLat, i, j)] = src[IndexOf(from, nLon, nLat, i, j)]
		}
	}
}

// Relayout returns src converted from layout from to layout to. When the
// layouts match src is returned unchanged.
func Relayout[T any](src []T, nLon, nLat int, from, to Layout) []T {
	if from == to || src == nil {
		return src
	}
	dst := make([]T, len(src))
	Transpose(dst, src, nLon, nLat, from)
	return dst
}
