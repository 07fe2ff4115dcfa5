package geo

import (
	"math/rand"
	"testing"

	bgeo "github.com/blevesearch/bleve/geo"
	"github.com/stretchr/testify/require"
)

func TestNewBoundingBox(t *testing.T) {
	centroid := CartesianCoordinate{X: 1000, Y: -2000, Z: 3000}
	box := NewBoundingBox(centroid, 0.001)
	require.Equal(t, BoundingBox{
		MinX: 1000 - 101, MaxX: 1000 + 101,
		MinY: -2000 - 101, MaxY: -2000 + 101,
		MinZ: 3000 - 101, MaxZ: 3000 + 101,
	}, box)
}

func TestNewBoundingBoxZeroRadiusContainsCentroid(t *testing.T) {
	centroid := FromDegrees(48.8566, 2.3522)
	box := NewBoundingBox(centroid, 0)
	require.True(t, box.Contains(centroid))
	require.True(t, box.Contains(CartesianCoordinate{X: centroid.X + 1, Y: centroid.Y - 1, Z: centroid.Z}))
	require.False(t, box.Contains(CartesianCoordinate{X: centroid.X + 2, Y: centroid.Y, Z: centroid.Z}))
}

func TestNewBoundingBoxClampsToSphere(t *testing.T) {
	box := NewBoundingBox(FromDegrees(0, 0), 1e6)
	limit := int32(EarthRadiusUnits + 1)
	require.Equal(t, BoundingBox{
		MinX: -limit, MaxX: limit,
		MinY: -limit, MaxY: limit,
		MinZ: -limit, MaxZ: limit,
	}, box)
	for lat := -90.0; lat <= 90.0; lat += 30 {
		for lon := -180.0; lon <= 180.0; lon += 30 {
			require.True(t, box.Contains(FromDegrees(lat, lon)))
		}
	}
}

func TestBoundingBoxNoFalseNegatives(t *testing.T) {
	inputs := []struct {
		name        string
		centroidLat float64
		centroidLon float64
		radiusKm    float64
	}{
		{name: "mid latitude", centroidLat: 40, centroidLon: -74, radiusKm: 5},
		{name: "equator", centroidLat: 0, centroidLon: 0, radiusKm: 20},
		{name: "near north pole", centroidLat: 89.99, centroidLon: 30, radiusKm: 5},
		{name: "south pole", centroidLat: -90, centroidLon: 0, radiusKm: 3},
		{name: "antimeridian east", centroidLat: 10, centroidLon: 179.999, radiusKm: 5},
		{name: "antimeridian west", centroidLat: -45, centroidLon: -179.99, radiusKm: 10},
	}

	for _, input := range inputs {
		t.Run(input.name, func(t *testing.T) {
			var (
				centroid = FromDegrees(input.centroidLat, input.centroidLon)
				box      = NewBoundingBox(centroid, input.radiusKm)
			)
			for bearing := 0.0; bearing < 360; bearing += 15 {
				for _, frac := range []float64{0, 0.25, 0.5, 0.99, 0.999, 1} {
					lat, lon := Destination(input.centroidLat, input.centroidLon, input.radiusKm*frac, bearing)
					require.True(t, box.Contains(FromDegrees(lat, lon)),
						"bearing %f fraction %f point (%f,%f)", bearing, frac, lat, lon)

					// Haversin uses an ellipsoidal earth, so allow 1% of the radius.
					h := bgeo.Haversin(lon, lat, input.centroidLon, input.centroidLat)
					require.InDelta(t, input.radiusKm*frac, h, 0.01*input.radiusKm)
				}

				// Beyond the box diagonal.
				lat, lon := Destination(input.centroidLat, input.centroidLon, 2*input.radiusKm, bearing)
				require.False(t, box.Contains(FromDegrees(lat, lon)), "bearing %f", bearing)
			}
		})
	}
}

func TestBoundingBoxContainsHaversinNeighbors(t *testing.T) {
	var (
		rng         = rand.New(rand.NewSource(42))
		centroidLat = 10.0
		centroidLon = 179.995
		radiusKm    = 2.0
		box         = NewBoundingBox(FromDegrees(centroidLat, centroidLon), radiusKm)
		numInside   int
	)
	for i := 0; i < 5000; i++ {
		lat := centroidLat + (rng.Float64()-0.5)*0.1
		lon := centroidLon + (rng.Float64()-0.5)*0.1
		if lon > 180 {
			lon -= 360
		}
		if bgeo.Haversin(lon, lat, centroidLon, centroidLat) > 0.99*radiusKm {
			continue
		}
		numInside++
		require.True(t, box.Contains(FromDegrees(lat, lon)), "point (%f,%f)", lat, lon)
	}
	require.True(t, numInside > 100)
}

func TestBoundingBoxMaxDistanceSquared(t *testing.T) {
	box := BoundingBox{MinX: -1, MaxX: 1, MinY: -2, MaxY: 2, MinZ: 0, MaxZ: 3}
	require.Equal(t, int64(4+16+9), box.MaxDistanceSquared())
}
