package geo

import (
	"math"

	bgeo "github.com/blevesearch/bleve/geo"
)

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(rad float64) float64 { return bgeo.RadiansToDegrees(rad) }

// Destination returns the latitude and longitude in degrees reached by travelling
// distanceKm along the great circle leaving the start point at the given initial
// bearing. Bearings are measured clockwise from north. The returned longitude is
// normalized into [-180, 180].
func Destination(latDegrees, lonDegrees, distanceKm, bearingDegrees float64) (float64, float64) {
	var (
		angular = distanceKm * metersPerKm / EarthRadiusMeters
		lat1    = DegreesToRadians(latDegrees)
		lon1    = DegreesToRadians(lonDegrees)
		bearing = DegreesToRadians(bearingDegrees)
	)
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lon2 := lon1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)
	lon2 = math.Remainder(lon2, 2*math.Pi)
	return RadiansToDegrees(lat2), RadiansToDegrees(lon2)
}
