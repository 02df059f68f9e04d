package geo

// ComputeRouteInfo summarises a coordinate sequence traversed in input
// order: total path length, bounding box, and the bearings of the first and
// last legs. At least two valid points are required.
func ComputeRouteInfo(coords []Coordinate) (RouteInfo, error) {
	valid := validCoordinates(coords)
	if len(valid) < 2 {
		return RouteInfo{}, validationErrorf("route coordinates", "at least 2 valid coordinates required, got %d", len(valid))
	}

	bounds, err := BoundingBoxFromCoordinates(valid)
	if err != nil {
		return RouteInfo{}, err
	}

	n := len(valid)
	return RouteInfo{
		TotalDistance: TotalDistance(valid),
		StartPoint:    valid[0],
		EndPoint:      valid[n-1],
		WaypointCount: n - 2,
		Bounds:        bounds,
		StartBearing:  roundBearing(initialBearing(valid[0].Latitude, valid[0].Longitude, valid[1].Latitude, valid[1].Longitude)),
		EndBearing:    roundBearing(initialBearing(valid[n-2].Latitude, valid[n-2].Longitude, valid[n-1].Latitude, valid[n-1].Longitude)),
	}, nil
}

// OptimizeRouteOrder reorders the valid coordinates with the greedy
// nearest-neighbor heuristic: starting at start, repeatedly hop to the
// closest unvisited point. O(n²), and deliberately not an optimal TSP
// solver — a far outlier can end up last even when visiting it mid-route
// would be shorter. Ties go to the earliest remaining entry.
func OptimizeRouteOrder(start Coordinate, coords []Coordinate) ([]Coordinate, error) {
	if !start.Valid() {
		return nil, validationErrorf("start coordinate", "invalid position %v, %v", start.Latitude, start.Longitude)
	}

	remaining := validCoordinates(coords)
	ordered := make([]Coordinate, 0, len(remaining))
	current := start

	for len(remaining) > 0 {
		best := 0
		bestDist := haversineKm(current.Latitude, current.Longitude, remaining[0].Latitude, remaining[0].Longitude)
		for i := 1; i < len(remaining); i++ {
			d := haversineKm(current.Latitude, current.Longitude, remaining[i].Latitude, remaining[i].Longitude)
			if d < bestDist {
				best, bestDist = i, d
			}
		}

		current = remaining[best]
		ordered = append(ordered, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered, nil
}

// OptimizedRouteDistance returns the length in kilometers of the path that
// starts at start and visits the coordinates in nearest-neighbor order.
func OptimizedRouteDistance(start Coordinate, coords []Coordinate) (float64, error) {
	ordered, err := OptimizeRouteOrder(start, coords)
	if err != nil {
		return 0, err
	}
	return TotalDistance(append([]Coordinate{start}, ordered...)), nil
}
