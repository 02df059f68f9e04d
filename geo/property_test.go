package geo

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

// Property checks over randomly generated (seeded) coordinates.

func randomCoordinate(f *gofakeit.Faker) Coordinate {
	return Coordinate{Latitude: f.Latitude(), Longitude: f.Longitude()}
}

func TestDistanceProperties(t *testing.T) {
	f := gofakeit.New(42)

	for i := 0; i < 200; i++ {
		a := randomCoordinate(f)
		b := randomCoordinate(f)

		ab, err := DistanceBetween(a, b)
		require.NoError(t, err)
		ba, err := DistanceBetween(b, a)
		require.NoError(t, err)

		require.GreaterOrEqual(t, ab, 0.0, "distance must be non-negative")
		require.Equal(t, ab, ba, "distance must be symmetric")

		self, err := DistanceBetween(a, a)
		require.NoError(t, err)
		require.Zero(t, self, "distance from a point to itself must be zero")
	}
}

func TestTriangleInequality(t *testing.T) {
	f := gofakeit.New(7)

	// Distances are rounded to 3 decimals, so allow the rounding slack of
	// three terms.
	const eps = 0.002

	for i := 0; i < 200; i++ {
		a := randomCoordinate(f)
		b := randomCoordinate(f)
		c := randomCoordinate(f)

		ab, err := DistanceBetween(a, b)
		require.NoError(t, err)
		bc, err := DistanceBetween(b, c)
		require.NoError(t, err)
		ac, err := DistanceBetween(a, c)
		require.NoError(t, err)

		require.LessOrEqual(t, ac, ab+bc+eps,
			"triangle inequality violated for %+v %+v %+v", a, b, c)
	}
}

func TestBearingRangeProperty(t *testing.T) {
	f := gofakeit.New(11)

	for i := 0; i < 200; i++ {
		a := randomCoordinate(f)
		b := randomCoordinate(f)

		bearing, err := Bearing(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
		require.NoError(t, err)
		require.GreaterOrEqual(t, bearing, 0.0)
		require.Less(t, bearing, 360.0)
	}
}

func TestBoundingBoxContainmentProperty(t *testing.T) {
	f := gofakeit.New(23)

	for i := 0; i < 50; i++ {
		coords := make([]Coordinate, 0, 20)
		for j := 0; j < 20; j++ {
			coords = append(coords, randomCoordinate(f))
		}

		box, err := BoundingBoxFromCoordinates(coords)
		require.NoError(t, err)

		for _, c := range coords {
			require.True(t, box.Contains(c), "box %+v must contain input point %+v", box, c)
		}
	}
}

func TestRadiusSearchMatchesDirectDistance(t *testing.T) {
	f := gofakeit.New(31)

	center := Coordinate{Latitude: 35.6812, Longitude: 139.7671}
	coords := make([]Coordinate, 0, 100)
	for i := 0; i < 100; i++ {
		coords = append(coords, randomCoordinate(f))
	}

	const radius = 5000.0
	results, err := FindWithinRadius(center.Latitude, center.Longitude, radius, coords)
	require.NoError(t, err)

	// Exactly the subset within the radius, sorted ascending.
	wantCount := 0
	for _, c := range coords {
		d, err := DistanceBetween(center, c)
		require.NoError(t, err)
		if d <= radius {
			wantCount++
		}
	}
	require.Len(t, results, wantCount)

	for i, r := range results {
		d, err := DistanceBetween(center, r.Coordinate)
		require.NoError(t, err)
		require.Equal(t, d, r.Distance)
		require.LessOrEqual(t, r.Distance, radius)
		if i > 0 {
			require.GreaterOrEqual(t, r.Distance, results[i-1].Distance, "results must be sorted ascending")
		}
	}
}
