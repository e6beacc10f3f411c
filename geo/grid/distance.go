package grid

import (
	"math"

	"github.com/cwbudde/algo-geoavg/geo/core"
)

// Hav returns the haversine of theta, sin²(theta/2).
func Hav(theta float64) float64 {
	s := math.Sin(theta / 2)
	return s * s
}

// ArcFromHav inverts a haversine value to a central angle in radians.
func ArcFromHav(h float64) float64 {
	return 2 * math.Asin(math.Sqrt(core.Clamp(h, 0, 1)))
}

// CentralAngle returns the great-circle angle in radians between two points
// given in degrees. Identical points give exactly zero.
func CentralAngle(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := core.DegToRad(lat1)
	phi2 := core.DegToRad(lat2)
	h := Hav(phi2-phi1) + math.Cos(phi1)*math.Cos(phi2)*Hav(core.DegToRad(lon2-lon1))
	return ArcFromHav(h)
}
