package geo

import (
	"errors"
	"testing"
)

func TestBearing(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		want       float64
	}{
		{"due east along the equator", 0, 0, 0, 90, 90.0},
		{"due north along a meridian", 0, 0, 10, 0, 0.0},
		{"due south along a meridian", 10, 0, 0, 0, 180.0},
		{"Tokyo Station toward Osaka Station", 35.6812, 139.7671, 34.6937, 135.5023, 255.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bearing(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if err != nil {
				t.Fatalf("Bearing() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Bearing() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestBearing_WrapsBelow360(t *testing.T) {
	// A hair west of due north rounds to 360.0 without wrapping; the
	// contract is [0, 360).
	got, err := Bearing(0, 0, 10, -0.00001)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Bearing() = %f, want 0 (wrapped)", got)
	}
}

func TestBearing_NotSymmetric(t *testing.T) {
	forward, err := Bearing(35.6812, 139.7671, 34.6937, 135.5023)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Bearing(34.6937, 135.5023, 35.6812, 139.7671)
	if err != nil {
		t.Fatal(err)
	}
	if back == forward+180 || back == forward-180 {
		t.Errorf("reciprocal bearing %f should not be exactly opposite %f", back, forward)
	}
}

func TestBearing_InvalidInput(t *testing.T) {
	_, err := Bearing(0, 0, -90.5, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Context != "destination point" {
		t.Errorf("error context = %q, want %q", verr.Context, "destination point")
	}
}

func TestCompass8(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{44, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{337.4, "NW"},
		{338, "N"},
		{359.9, "N"},
	}

	for _, tt := range tests {
		if got := Compass8(tt.bearing); got != tt.want {
			t.Errorf("Compass8(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}

func TestCompass16(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "N"},
		{22.5, "NNE"},
		{45, "NE"},
		{67.5, "ENE"},
		{90, "E"},
		{202.5, "SSW"},
		{348.7, "NNW"},
		{349, "N"},
	}

	for _, tt := range tests {
		if got := Compass16(tt.bearing); got != tt.want {
			t.Errorf("Compass16(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}

func TestCompassJapanese(t *testing.T) {
	tests := []struct {
		bearing float64
		want    string
	}{
		{0, "北"},
		{45, "北東"},
		{90, "東"},
		{135, "南東"},
		{180, "南"},
		{225, "南西"},
		{270, "西"},
		{315, "北西"},
	}

	for _, tt := range tests {
		if got := CompassJapanese(tt.bearing); got != tt.want {
			t.Errorf("CompassJapanese(%v) = %q, want %q", tt.bearing, got, tt.want)
		}
	}
}
