package geo

import "math"

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// haversineKm is the unvalidated, unrounded great-circle distance in
// kilometers between two points in decimal degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance returns the great-circle (Haversine) distance in kilometers
// between two points, rounded to 3 decimal places. Symmetric in its
// endpoints; zero only when both points coincide.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := ValidateCoordinates(lat1, lon1, "origin point"); err != nil {
		return 0, err
	}
	if err := ValidateCoordinates(lat2, lon2, "destination point"); err != nil {
		return 0, err
	}
	return roundTo(haversineKm(lat1, lon1, lat2, lon2), 3), nil
}

// DistanceBetween is Distance over Coordinate values.
func DistanceBetween(a, b Coordinate) (float64, error) {
	if !a.Valid() {
		return 0, validationErrorf("first coordinate", "invalid position %v, %v", a.Latitude, a.Longitude)
	}
	if !b.Valid() {
		return 0, validationErrorf("second coordinate", "invalid position %v, %v", b.Latitude, b.Longitude)
	}
	return roundTo(haversineKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude), 3), nil
}

// TotalDistance returns the length in kilometers of the path visiting the
// valid coordinates in input order. Invalid entries are dropped, not
// reported. Fewer than two valid points is a zero-length path, not an error.
func TotalDistance(coords []Coordinate) float64 {
	valid := validCoordinates(coords)
	if len(valid) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(valid); i++ {
		total += roundTo(haversineKm(
			valid[i-1].Latitude, valid[i-1].Longitude,
			valid[i].Latitude, valid[i].Longitude,
		), 3)
	}
	return roundTo(total, 3)
}

// DistanceWithAccuracy returns the distance between two fixes together with
// the interval implied by the worse of their reported accuracies. The lower
// bound is clamped at zero. Fixes without a usable accuracy contribute no
// uncertainty.
func DistanceWithAccuracy(a, b Coordinate) (DistanceRange, error) {
	d, err := DistanceBetween(a, b)
	if err != nil {
		return DistanceRange{}, err
	}

	maxAccuracyKm := 0.0
	for _, acc := range []*float64{a.Accuracy, b.Accuracy} {
		if acc != nil && IsValidAccuracy(*acc) && *acc/1000 > maxAccuracyKm {
			maxAccuracyKm = *acc / 1000
		}
	}

	return DistanceRange{
		Distance: d,
		Min:      roundTo(math.Max(0, d-maxAccuracyKm), 3),
		Max:      roundTo(d+maxAccuracyKm, 3),
	}, nil
}
