package search

import (
	"fmt"
	"math"
)

// Query is a geo radius query.
type Query struct {
	CentroidLatDegrees float64
	CentroidLonDegrees float64
	RadiusKm           float64
}

// Validate validates the query.
func (q Query) Validate() error {
	if !isFinite(q.CentroidLatDegrees) || q.CentroidLatDegrees < -90 || q.CentroidLatDegrees > 90 {
		return fmt.Errorf("invalid centroid latitude %f", q.CentroidLatDegrees)
	}
	if !isFinite(q.CentroidLonDegrees) || q.CentroidLonDegrees < -180 || q.CentroidLonDegrees > 180 {
		return fmt.Errorf("invalid centroid longitude %f", q.CentroidLonDegrees)
	}
	if !isFinite(q.RadiusKm) || q.RadiusKm < 0 {
		return fmt.Errorf("invalid radius %f", q.RadiusKm)
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("{lat:%f lon:%f radiusKm:%f}", q.CentroidLatDegrees, q.CentroidLonDegrees, q.RadiusKm)
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
