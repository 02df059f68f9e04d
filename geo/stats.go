package geo

// CenterPoint returns the arithmetic mean of the valid points' latitudes and
// longitudes, rounded to 6 decimal places. This is a planar approximation of
// the centroid, fine at city/regional scale but wrong for point sets
// straddling the antimeridian or near the poles.
func CenterPoint(coords []Coordinate) (Coordinate, error) {
	valid := validCoordinates(coords)
	if len(valid) == 0 {
		return Coordinate{}, validationErrorf("coordinates", "no valid coordinates found")
	}

	var sumLat, sumLon float64
	for _, c := range valid {
		sumLat += c.Latitude
		sumLon += c.Longitude
	}

	n := float64(len(valid))
	return Coordinate{
		Latitude:  roundTo(sumLat/n, 6),
		Longitude: roundTo(sumLon/n, 6),
	}, nil
}

// Spread reports how dispersed a point set is: the min/max/avg distance of
// each valid point from the set's center, the point count, and the enclosing
// bounding box. A single point spreads to all zeros around itself.
func Spread(coords []Coordinate) (SpreadStats, error) {
	valid := validCoordinates(coords)

	center, err := CenterPoint(valid)
	if err != nil {
		return SpreadStats{}, err
	}
	bounds, err := BoundingBoxFromCoordinates(valid)
	if err != nil {
		return SpreadStats{}, err
	}

	stats := SpreadStats{Center: center, Count: len(valid), Bounds: bounds}
	var sum float64
	for i, c := range valid {
		d := roundTo(haversineKm(center.Latitude, center.Longitude, c.Latitude, c.Longitude), 3)
		if i == 0 || d < stats.MinDistance {
			stats.MinDistance = d
		}
		if d > stats.MaxDistance {
			stats.MaxDistance = d
		}
		sum += d
	}
	stats.AvgDistance = roundTo(sum/float64(len(valid)), 3)

	return stats, nil
}
