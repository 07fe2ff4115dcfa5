package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToCartesianAxes(t *testing.T) {
	inputs := []struct {
		latDegrees float64
		lonDegrees float64
		expected   CartesianCoordinate
	}{
		{latDegrees: 0, lonDegrees: 0, expected: CartesianCoordinate{X: int32(EarthRadiusUnits)}},
		{latDegrees: 0, lonDegrees: 90, expected: CartesianCoordinate{Y: int32(EarthRadiusUnits)}},
		{latDegrees: 0, lonDegrees: 180, expected: CartesianCoordinate{X: -int32(EarthRadiusUnits)}},
		{latDegrees: 90, lonDegrees: 0, expected: CartesianCoordinate{Z: int32(EarthRadiusUnits)}},
		{latDegrees: -90, lonDegrees: 45, expected: CartesianCoordinate{Z: -int32(EarthRadiusUnits)}},
	}
	for _, input := range inputs {
		require.Equal(t, input.expected, FromDegrees(input.latDegrees, input.lonDegrees))
	}
}

func TestToCartesianDeterministic(t *testing.T) {
	lat, lon := DegreesToRadians(37.7749), DegreesToRadians(-122.4194)
	require.Equal(t, ToCartesian(lat, lon), ToCartesian(lat, lon))
	require.Equal(t, int64(0), DistanceSquared(ToCartesian(lat, lon), ToCartesian(lat, lon)))
}

func TestToCartesianStaysOnSphere(t *testing.T) {
	for lat := -90.0; lat <= 90.0; lat += 7.5 {
		for lon := -180.0; lon <= 180.0; lon += 15 {
			c := FromDegrees(lat, lon)
			dist := math.Sqrt(float64(DistanceSquared(c, CartesianCoordinate{})))
			require.InDelta(t, float64(EarthRadiusUnits), dist, 2.0)
		}
	}
}

func TestToCartesianInvalidInputPanics(t *testing.T) {
	require.Panics(t, func() { ToCartesian(math.NaN(), 0) })
	require.Panics(t, func() { ToCartesian(0, math.Inf(1)) })
}

func TestRadiusToUnits(t *testing.T) {
	require.Equal(t, int64(0), RadiusToUnits(0))
	require.Equal(t, int64(100000), RadiusToUnits(1))
	require.Equal(t, int64(1), RadiusToUnits(0.000001))
	require.Equal(t, 2*EarthRadiusUnits, RadiusToUnits(1e9))
	require.Panics(t, func() { RadiusToUnits(-1) })
	require.Panics(t, func() { RadiusToUnits(math.NaN()) })
}

func TestUnitsToMeters(t *testing.T) {
	require.Equal(t, 0.0, UnitsToMeters(0))
	require.Equal(t, 1.0, UnitsToMeters(100))
	require.Equal(t, 1000.0, UnitsToMeters(100000))
}

func TestDistanceSquaredAntipodal(t *testing.T) {
	a := FromDegrees(0, 0)
	b := FromDegrees(0, 180)
	expected := 2 * EarthRadiusUnits
	require.Equal(t, expected*expected, DistanceSquared(a, b))
}
