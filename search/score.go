package search

import (
	"math"

	"github.com/xichen2020/geosearch/geo"
)

const (
	// DefaultMinimumDistanceMeters is the distance at and below which a document
	// scores 1.0. It is roughly 0.0001 miles.
	DefaultMinimumDistanceMeters = 0.16
)

// ScoreSquaredDistance converts a squared distance in cartesian units into a
// relevance score. Documents within minimumDistanceMeters score 1.0, and beyond it
// the score is minimumDistanceMeters / distance, which lies in (0, 1).
func ScoreSquaredDistance(squaredDistanceUnits int64, minimumDistanceMeters float64) float64 {
	if squaredDistanceUnits <= 0 {
		return 1.0
	}
	distanceMeters := geo.UnitsToMeters(math.Sqrt(float64(squaredDistanceUnits)))
	if distanceMeters <= minimumDistanceMeters {
		return 1.0
	}
	return minimumDistanceMeters / distanceMeters
}

// minDistanceSquared returns the smallest squared distance between the centroid
// and any of the coordinates.
func minDistanceSquared(centroid geo.CartesianCoordinate, coords []geo.CartesianCoordinate) int64 {
	min := int64(math.MaxInt64)
	for _, c := range coords {
		if d := geo.DistanceSquared(centroid, c); d < min {
			min = d
		}
	}
	return min
}
