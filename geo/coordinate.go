// Package geo provides pure geographic computations over GPS fixes:
// great-circle distance and bearing, spatial queries, point-set statistics,
// and route analysis. All functions are stateless and safe for concurrent use.
//
// Positions use decimal degrees (WGS 84). The planar approximations used by
// CenterPoint and the bounding-box helpers do not handle the antimeridian or
// polar regions; a point set straddling longitude ±180° will produce a center
// and box on the wrong side of the globe.
package geo

// EarthRadiusKm is the mean Earth radius used by all great-circle math.
// It is part of the package contract: distances are only reproducible
// against other implementations using the same radius.
const EarthRadiusKm = 6371.0

// Validation bounds for coordinate fields. Accuracy and altitude are in
// meters as reported by GPS receivers.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	MinAccuracyMeters = 0.0
	MaxAccuracyMeters = 10000.0

	MinAltitudeMeters = -500.0
	MaxAltitudeMeters = 10000.0
)

// Coordinate is a single GPS fix. Accuracy (horizontal, meters) and
// Altitude (meters) are optional; nil means the receiver did not report them.
// A Coordinate is a plain value: functions in this package never mutate one.
type Coordinate struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// BoundingBox is an axis-aligned lat/lon rectangle. NorthEast holds the
// maxima of both axes, SouthWest the minima.
type BoundingBox struct {
	NorthEast Coordinate `json:"north_east"`
	SouthWest Coordinate `json:"south_west"`
}

// Contains reports whether c lies inside the box, borders included.
// Structurally invalid coordinates are never contained.
func (b BoundingBox) Contains(c Coordinate) bool {
	if !c.Valid() {
		return false
	}
	return c.Latitude >= b.SouthWest.Latitude && c.Latitude <= b.NorthEast.Latitude &&
		c.Longitude >= b.SouthWest.Longitude && c.Longitude <= b.NorthEast.Longitude
}

// CoordinateWithDistance annotates a coordinate with its distance in
// kilometers from a query point.
type CoordinateWithDistance struct {
	Coordinate
	Distance float64 `json:"distance"`
}

// CoordinateWithBearing additionally carries the initial bearing in degrees
// from the query point toward the coordinate.
type CoordinateWithBearing struct {
	Coordinate
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
}

// DistanceRange is a point distance together with the uncertainty interval
// implied by the reported GPS accuracy of the two endpoints.
type DistanceRange struct {
	Distance float64 `json:"distance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// SpreadStats summarises how dispersed a point set is around its center.
// Distances are kilometers from the center point.
type SpreadStats struct {
	Center      Coordinate  `json:"center"`
	Count       int         `json:"count"`
	MinDistance float64     `json:"min_distance"`
	MaxDistance float64     `json:"max_distance"`
	AvgDistance float64     `json:"avg_distance"`
	Bounds      BoundingBox `json:"bounds"`
}

// RouteInfo describes a coordinate sequence interpreted as a path in input
// order. StartBearing and EndBearing are the bearings of the first and last
// legs, not of the overall start→end vector. WaypointCount is the number of
// interior points (total valid points minus the two endpoints).
type RouteInfo struct {
	TotalDistance float64     `json:"total_distance"`
	StartPoint    Coordinate  `json:"start_point"`
	EndPoint      Coordinate  `json:"end_point"`
	WaypointCount int         `json:"waypoint_count"`
	Bounds        BoundingBox `json:"bounds"`
	StartBearing  float64     `json:"start_bearing"`
	EndBearing    float64     `json:"end_bearing"`
}
