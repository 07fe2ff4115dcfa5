package geo

import "fmt"

// quantizationSlackUnits accounts for rounding both the centroid and a
// candidate point to the nearest unit on every axis.
const quantizationSlackUnits = 1

// BoundingBox is an axis-aligned cuboid in the integer cartesian coordinate system.
// All bounds are inclusive.
type BoundingBox struct {
	MinX, MaxX int32
	MinY, MaxY int32
	MinZ, MaxZ int32
}

// NewBoundingBox returns the smallest box enclosing every point on the earth's surface
// whose arc distance from the centroid is at most radiusKm. Since a chord is never
// longer than its arc, the box may admit points beyond the radius but never rejects
// a point within it.
func NewBoundingBox(centroid CartesianCoordinate, radiusKm float64) BoundingBox {
	delta := RadiusToUnits(radiusKm) + quantizationSlackUnits
	return BoundingBox{
		MinX: clampToSphere(int64(centroid.X) - delta),
		MaxX: clampToSphere(int64(centroid.X) + delta),
		MinY: clampToSphere(int64(centroid.Y) - delta),
		MaxY: clampToSphere(int64(centroid.Y) + delta),
		MinZ: clampToSphere(int64(centroid.Z) - delta),
		MaxZ: clampToSphere(int64(centroid.Z) + delta),
	}
}

// Contains returns true if the coordinate falls inside the box.
func (b BoundingBox) Contains(c CartesianCoordinate) bool {
	return c.X >= b.MinX && c.X <= b.MaxX &&
		c.Y >= b.MinY && c.Y <= b.MaxY &&
		c.Z >= b.MinZ && c.Z <= b.MaxZ
}

// MaxDistanceSquared returns the squared length of the box's longest diagonal.
func (b BoundingBox) MaxDistanceSquared() int64 {
	return DistanceSquared(
		CartesianCoordinate{X: b.MinX, Y: b.MinY, Z: b.MinZ},
		CartesianCoordinate{X: b.MaxX, Y: b.MaxY, Z: b.MaxZ},
	)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf(
		"x:[%d,%d] y:[%d,%d] z:[%d,%d]",
		b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ,
	)
}

func clampToSphere(v int64) int32 {
	// Coordinates are rounded, so allow one unit past the radius.
	limit := EarthRadiusUnits + quantizationSlackUnits
	if v > limit {
		return int32(limit)
	}
	if v < -limit {
		return int32(-limit)
	}
	return int32(v)
}
