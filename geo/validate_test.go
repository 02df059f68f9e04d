package geo

import (
	"errors"
	"math"
	"testing"
)

func TestIsValidLatitude(t *testing.T) {
	tests := []struct {
		lat  float64
		want bool
	}{
		{0, true},
		{90, true},
		{-90, true},
		{90.0001, false},
		{-90.0001, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for _, tt := range tests {
		if got := IsValidLatitude(tt.lat); got != tt.want {
			t.Errorf("IsValidLatitude(%v) = %v, want %v", tt.lat, got, tt.want)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	tests := []struct {
		lon  float64
		want bool
	}{
		{0, true},
		{180, true},
		{-180, true},
		{180.0001, false},
		{-180.0001, false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsValidLongitude(tt.lon); got != tt.want {
			t.Errorf("IsValidLongitude(%v) = %v, want %v", tt.lon, got, tt.want)
		}
	}
}

func TestIsValidAccuracy(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{10000, true},
		{-0.1, false},
		{10000.1, false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsValidAccuracy(tt.v); got != tt.want {
			t.Errorf("IsValidAccuracy(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsValidAltitude(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{-500, true},
		{10000, true},
		{0, true},
		{-500.1, false},
		{10000.1, false},
	}

	for _, tt := range tests {
		if got := IsValidAltitude(tt.v); got != tt.want {
			t.Errorf("IsValidAltitude(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"in bounds", Coordinate{Latitude: 35.68, Longitude: 139.76}, true},
		{"on both boundaries", Coordinate{Latitude: -90, Longitude: 180}, true},
		{"latitude out of range", Coordinate{Latitude: 95, Longitude: 0}, false},
		{"longitude out of range", Coordinate{Latitude: 0, Longitude: -181}, false},
		{"NaN position", Coordinate{Latitude: math.NaN(), Longitude: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	if err := ValidateCoordinates(35.68, 139.76, "origin point"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateCoordinates(120, 139.76, "origin point")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Context != "origin point" {
		t.Errorf("Context = %q, want %q", verr.Context, "origin point")
	}
}
