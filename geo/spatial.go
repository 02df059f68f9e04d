package geo

import (
	"math"
	"sort"
)

// DefaultNearestLimit is used by FindNearest when the caller passes a limit
// of zero.
const DefaultNearestLimit = 10

// MaxNearestLimit bounds FindNearest result sizes.
const MaxNearestLimit = 1000

// FindWithinRadius returns the valid coordinates within radiusKm of the
// center, each annotated with its distance, sorted nearest first. The center
// and radius are validated eagerly; bad entries in coords are dropped.
func FindWithinRadius(centerLat, centerLon, radiusKm float64, coords []Coordinate) ([]CoordinateWithDistance, error) {
	if err := ValidateCoordinates(centerLat, centerLon, "center point"); err != nil {
		return nil, err
	}
	if !finite(radiusKm) || radiusKm <= 0 {
		return nil, validationErrorf("search radius", "must be a positive number of kilometers, got %v", radiusKm)
	}

	within := make([]CoordinateWithDistance, 0)
	for _, c := range validCoordinates(coords) {
		d := roundTo(haversineKm(centerLat, centerLon, c.Latitude, c.Longitude), 3)
		if d <= radiusKm {
			within = append(within, CoordinateWithDistance{Coordinate: c, Distance: d})
		}
	}

	sort.SliceStable(within, func(i, j int) bool { return within[i].Distance < within[j].Distance })
	return within, nil
}

// FindNearbyLocations is FindWithinRadius under the name used by
// location-listing call sites.
func FindNearbyLocations(centerLat, centerLon, radiusKm float64, coords []Coordinate) ([]CoordinateWithDistance, error) {
	return FindWithinRadius(centerLat, centerLon, radiusKm, coords)
}

// FindNearest returns up to limit valid coordinates closest to the target,
// sorted nearest first and annotated with distance and bearing from the
// target. A limit of zero means DefaultNearestLimit; anything else outside
// [1, MaxNearestLimit] is a validation error.
func FindNearest(targetLat, targetLon float64, coords []Coordinate, limit int) ([]CoordinateWithBearing, error) {
	if err := ValidateCoordinates(targetLat, targetLon, "target point"); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = DefaultNearestLimit
	}
	if limit < 1 || limit > MaxNearestLimit {
		return nil, validationErrorf("result limit", "must be between 1 and %d, got %d", MaxNearestLimit, limit)
	}

	valid := validCoordinates(coords)
	nearest := make([]CoordinateWithBearing, 0, len(valid))
	for _, c := range valid {
		nearest = append(nearest, CoordinateWithBearing{
			Coordinate: c,
			Distance:   roundTo(haversineKm(targetLat, targetLon, c.Latitude, c.Longitude), 3),
			Bearing:    roundBearing(initialBearing(targetLat, targetLon, c.Latitude, c.Longitude)),
		})
	}

	sort.SliceStable(nearest, func(i, j int) bool { return nearest[i].Distance < nearest[j].Distance })
	if len(nearest) > limit {
		nearest = nearest[:limit]
	}
	return nearest, nil
}

// BoundingBoxAround approximates the square box of half-width radiusKm
// centered on the given point. Longitude degrees shrink with latitude, so
// the longitude delta is widened by 1/cos(lat); both axes are clamped to the
// global bounds.
func BoundingBoxAround(centerLat, centerLon, radiusKm float64) (BoundingBox, error) {
	if err := ValidateCoordinates(centerLat, centerLon, "center point"); err != nil {
		return BoundingBox{}, err
	}
	if !finite(radiusKm) || radiusKm <= 0 {
		return BoundingBox{}, validationErrorf("box radius", "must be a positive number of kilometers, got %v", radiusKm)
	}

	latDelta := radiansToDegrees(radiusKm / EarthRadiusKm)
	lonDelta := latDelta / math.Cos(degreesToRadians(centerLat))

	return BoundingBox{
		NorthEast: Coordinate{
			Latitude:  clamp(centerLat+latDelta, MinLatitude, MaxLatitude),
			Longitude: clamp(centerLon+lonDelta, MinLongitude, MaxLongitude),
		},
		SouthWest: Coordinate{
			Latitude:  clamp(centerLat-latDelta, MinLatitude, MaxLatitude),
			Longitude: clamp(centerLon-lonDelta, MinLongitude, MaxLongitude),
		},
	}, nil
}

// BoundingBoxFromCoordinates returns the tight axis-aligned box enclosing
// all valid input points.
func BoundingBoxFromCoordinates(coords []Coordinate) (BoundingBox, error) {
	valid := validCoordinates(coords)
	if len(valid) == 0 {
		return BoundingBox{}, validationErrorf("coordinates", "no valid coordinates found")
	}

	minLat, maxLat := valid[0].Latitude, valid[0].Latitude
	minLon, maxLon := valid[0].Longitude, valid[0].Longitude
	for _, c := range valid[1:] {
		minLat = math.Min(minLat, c.Latitude)
		maxLat = math.Max(maxLat, c.Latitude)
		minLon = math.Min(minLon, c.Longitude)
		maxLon = math.Max(maxLon, c.Longitude)
	}

	return BoundingBox{
		NorthEast: Coordinate{Latitude: maxLat, Longitude: maxLon},
		SouthWest: Coordinate{Latitude: minLat, Longitude: minLon},
	}, nil
}

// FindClosest returns the valid candidate nearest to the target, annotated
// with its distance. An empty valid-candidate set yields (nil, nil): "no
// answer" is not an error, unlike an invalid target.
func FindClosest(targetLat, targetLon float64, coords []Coordinate) (*CoordinateWithDistance, error) {
	return scanForExtremum(targetLat, targetLon, coords, func(d, best float64) bool { return d < best })
}

// FindFarthest is FindClosest's counterpart for the most distant candidate.
func FindFarthest(targetLat, targetLon float64, coords []Coordinate) (*CoordinateWithDistance, error) {
	return scanForExtremum(targetLat, targetLon, coords, func(d, best float64) bool { return d > best })
}

// scanForExtremum walks candidates left to right and replaces the current
// pick only on strict improvement, so ties resolve to the earliest entry.
func scanForExtremum(targetLat, targetLon float64, coords []Coordinate, better func(d, best float64) bool) (*CoordinateWithDistance, error) {
	if err := ValidateCoordinates(targetLat, targetLon, "target point"); err != nil {
		return nil, err
	}

	var pick *CoordinateWithDistance
	for _, c := range coords {
		if !c.Valid() {
			continue
		}
		d := roundTo(haversineKm(targetLat, targetLon, c.Latitude, c.Longitude), 3)
		if pick == nil || better(d, pick.Distance) {
			pick = &CoordinateWithDistance{Coordinate: c, Distance: d}
		}
	}
	return pick, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
