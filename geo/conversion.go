package geo

import (
	"fmt"
	"math"

	bgeo "github.com/blevesearch/bleve/geo"
)

const (
	// EarthRadiusMeters is the mean earth radius in meters.
	EarthRadiusMeters = 6371009.0

	// UnitsPerMeter is the number of integer cartesian units per meter.
	// One unit is one centimeter.
	UnitsPerMeter = 100.0

	// EarthRadiusUnits is the earth radius in integer cartesian units.
	EarthRadiusUnits = int64(EarthRadiusMeters * UnitsPerMeter)

	metersPerKm = 1000.0
)

// CartesianCoordinate is a point on the earth's surface quantized into
// the integer cartesian coordinate system centered at the earth's center.
type CartesianCoordinate struct {
	X int32
	Y int32
	Z int32
}

// String returns the string representation of the coordinate.
func (c CartesianCoordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 { return bgeo.DegreesToRadians(deg) }

// ToCartesian converts a latitude and longitude given in radians into
// the integer cartesian coordinate system.
// Precondition: neither input is NaN or infinite.
func ToCartesian(latRadians, lonRadians float64) CartesianCoordinate {
	mustBeFinite(latRadians, "latitude")
	mustBeFinite(lonRadians, "longitude")
	r := float64(EarthRadiusUnits)
	cosLat := math.Cos(latRadians)
	return CartesianCoordinate{
		X: int32(math.Round(r * cosLat * math.Cos(lonRadians))),
		Y: int32(math.Round(r * cosLat * math.Sin(lonRadians))),
		Z: int32(math.Round(r * math.Sin(latRadians))),
	}
}

// FromDegrees converts a latitude and longitude given in degrees into
// the integer cartesian coordinate system.
func FromDegrees(latDegrees, lonDegrees float64) CartesianCoordinate {
	return ToCartesian(DegreesToRadians(latDegrees), DegreesToRadians(lonDegrees))
}

// RadiusToUnits converts a radius in kilometers into integer units, rounding up
// so that a box built from the result never shrinks below the requested radius.
// Precondition: radiusKm is finite and non-negative.
func RadiusToUnits(radiusKm float64) int64 {
	mustBeFinite(radiusKm, "radius")
	if radiusKm < 0 {
		panic(fmt.Errorf("negative radius %f", radiusKm))
	}
	units := math.Ceil(radiusKm * metersPerKm * UnitsPerMeter)
	// A chord can never be longer than the diameter.
	if maxUnits := float64(2 * EarthRadiusUnits); units > maxUnits {
		units = maxUnits
	}
	return int64(units)
}

// UnitsToMeters converts a distance in integer units into meters.
func UnitsToMeters(distanceUnits float64) float64 { return distanceUnits / UnitsPerMeter }

// DistanceSquared returns the squared straight-line distance in units between two coordinates.
// All coordinates lie within one earth radius of the origin, so the result fits in an int64.
func DistanceSquared(a, b CartesianCoordinate) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	dz := int64(a.Z) - int64(b.Z)
	return dx*dx + dy*dy + dz*dz
}

func mustBeFinite(v float64, name string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Errorf("invalid %s %f", name, v))
	}
}
