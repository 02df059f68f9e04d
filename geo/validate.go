package geo

import (
	"fmt"
	"math"
)

// ValidationError reports an input that failed a range or structural check.
// Context names the offending value from the caller's point of view
// (e.g. "origin point", "search radius").
type ValidationError struct {
	Context string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Context, e.Message)
}

func validationErrorf(context, format string, args ...any) *ValidationError {
	return &ValidationError{Context: context, Message: fmt.Sprintf(format, args...)}
}

// finite rejects NaN and ±Inf, which would otherwise pass naive range checks
// or poison downstream trigonometry.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// IsValidLatitude reports whether lat is a finite value in [-90, 90].
func IsValidLatitude(lat float64) bool {
	return finite(lat) && lat >= MinLatitude && lat <= MaxLatitude
}

// IsValidLongitude reports whether lon is a finite value in [-180, 180].
func IsValidLongitude(lon float64) bool {
	return finite(lon) && lon >= MinLongitude && lon <= MaxLongitude
}

// IsValidCoordinate reports whether the lat/lon pair is within bounds.
func IsValidCoordinate(lat, lon float64) bool {
	return IsValidLatitude(lat) && IsValidLongitude(lon)
}

// IsValidAccuracy reports whether a horizontal accuracy in meters is plausible.
func IsValidAccuracy(v float64) bool {
	return finite(v) && v >= MinAccuracyMeters && v <= MaxAccuracyMeters
}

// IsValidAltitude reports whether an altitude in meters is plausible.
func IsValidAltitude(v float64) bool {
	return finite(v) && v >= MinAltitudeMeters && v <= MaxAltitudeMeters
}

// Valid reports whether the coordinate's position is usable. Batch functions
// use this to drop bad fixes from noisy GPS logs instead of failing the whole
// call; optional accuracy/altitude never affect validity.
func (c Coordinate) Valid() bool {
	return IsValidCoordinate(c.Latitude, c.Longitude)
}

// ValidateCoordinates returns a *ValidationError when the pair is out of
// bounds, nil otherwise. Every function taking raw lat/lon values runs this
// gate before computing, so invalid input never silently produces NaN.
func ValidateCoordinates(lat, lon float64, context string) error {
	if !IsValidLatitude(lat) {
		return validationErrorf(context, "latitude %v out of range [%v, %v]", lat, MinLatitude, MaxLatitude)
	}
	if !IsValidLongitude(lon) {
		return validationErrorf(context, "longitude %v out of range [%v, %v]", lon, MinLongitude, MaxLongitude)
	}
	return nil
}

// validCoordinates returns the subset of coords with a usable position,
// preserving input order.
func validCoordinates(coords []Coordinate) []Coordinate {
	valid := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		if c.Valid() {
			valid = append(valid, c)
		}
	}
	return valid
}
