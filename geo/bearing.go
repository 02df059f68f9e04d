package geo

import "math"

var (
	compass16Labels = [16]string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	compass8Labels = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

	// 8-point compass labels as used on Japanese operation reports.
	compassJapaneseLabels = [8]string{"北", "北東", "東", "南東", "南", "南西", "西", "北西"}
)

// Bearing returns the initial great-circle bearing in degrees from point 1
// toward point 2, normalized to [0, 360) and rounded to 1 decimal place.
// Zero points due north. Not symmetric: the reciprocal bearing generally
// differs from bearing+180°.
func Bearing(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := ValidateCoordinates(lat1, lon1, "origin point"); err != nil {
		return 0, err
	}
	if err := ValidateCoordinates(lat2, lon2, "destination point"); err != nil {
		return 0, err
	}
	return roundBearing(initialBearing(lat1, lon1, lat2, lon2)), nil
}

// roundBearing rounds to 1 decimal and keeps the result inside [0, 360):
// bearings just under due north would otherwise round up to 360.0.
func roundBearing(b float64) float64 {
	r := roundTo(b, 1)
	if r >= 360 {
		return 0
	}
	return r
}

func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)
	dLon := degreesToRadians(lon2 - lon1)

	y := math.Sin(dLon) * math.Cos(rLat2)
	x := math.Cos(rLat1)*math.Sin(rLat2) - math.Sin(rLat1)*math.Cos(rLat2)*math.Cos(dLon)

	return math.Mod(radiansToDegrees(math.Atan2(y, x))+360, 360)
}

// Compass16 maps a bearing in degrees to the nearest of the 16 compass
// points (N, NNE, NE, ...).
func Compass16(bearing float64) string {
	idx := int(math.Round(bearing/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return compass16Labels[idx]
}

// Compass8 maps a bearing in degrees to the nearest of the 8 compass points
// (N, NE, E, ...).
func Compass8(bearing float64) string {
	return compass8Labels[compass8Index(bearing)]
}

// CompassJapanese maps a bearing to the Japanese label of its 8-point sector.
func CompassJapanese(bearing float64) string {
	return compassJapaneseLabels[compass8Index(bearing)]
}

func compass8Index(bearing float64) int {
	idx := int(math.Round(bearing/45.0)) % 8
	if idx < 0 {
		idx += 8
	}
	return idx
}
