package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fleetops/geokit/geo"
	"github.com/fleetops/geokit/internal/pkg/config"
)

// compassLabel renders a bearing per the configured locale and resolution.
func compassLabel(cfg *config.Config, bearing float64) string {
	if cfg.Compass.Locale == "ja" {
		return geo.CompassJapanese(bearing)
	}
	if cfg.Compass.Points == 8 {
		return geo.Compass8(bearing)
	}
	return geo.Compass16(bearing)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("encoding report: %v", err)
	}
}

func printRouteInfo(cfg *config.Config, info geo.RouteInfo) {
	if cfg.Output.Format == "json" {
		printJSON(info)
		return
	}

	fmt.Printf("total distance: %.3f km\n", info.TotalDistance)
	fmt.Printf("start:          %.6f, %.6f (first leg %s %.1f°)\n",
		info.StartPoint.Latitude, info.StartPoint.Longitude, compassLabel(cfg, info.StartBearing), info.StartBearing)
	fmt.Printf("end:            %.6f, %.6f (last leg %s %.1f°)\n",
		info.EndPoint.Latitude, info.EndPoint.Longitude, compassLabel(cfg, info.EndBearing), info.EndBearing)
	fmt.Printf("waypoints:      %d\n", info.WaypointCount)
	printBoundsText(info.Bounds)
}

func printOptimizedRoute(cfg *config.Config, start geo.Coordinate, ordered []geo.Coordinate, optimized, original float64) {
	if cfg.Output.Format == "json" {
		printJSON(struct {
			Start             geo.Coordinate   `json:"start"`
			Order             []geo.Coordinate `json:"order"`
			OptimizedDistance float64          `json:"optimized_distance"`
			OriginalDistance  float64          `json:"original_distance"`
		}{start, ordered, optimized, original})
		return
	}

	fmt.Printf("optimized distance: %.3f km (input order: %.3f km)\n", optimized, original)
	fmt.Printf("visit order from %.6f, %.6f:\n", start.Latitude, start.Longitude)
	for i, c := range ordered {
		fmt.Printf("  %2d. %.6f, %.6f\n", i+1, c.Latitude, c.Longitude)
	}
}

func printSpread(cfg *config.Config, stats geo.SpreadStats) {
	if cfg.Output.Format == "json" {
		printJSON(stats)
		return
	}

	fmt.Printf("fixes:    %d\n", stats.Count)
	fmt.Printf("center:   %.6f, %.6f\n", stats.Center.Latitude, stats.Center.Longitude)
	fmt.Printf("distance: min %.3f km, max %.3f km, avg %.3f km\n",
		stats.MinDistance, stats.MaxDistance, stats.AvgDistance)
	printBoundsText(stats.Bounds)
}

func printNearby(cfg *config.Config, results []geo.CoordinateWithDistance) {
	if cfg.Output.Format == "json" {
		printJSON(results)
		return
	}

	for _, r := range results {
		fmt.Printf("%.6f, %.6f  %8.3f km\n", r.Latitude, r.Longitude, r.Distance)
	}
	fmt.Printf("%d fixes in range\n", len(results))
}

func printNearest(cfg *config.Config, results []geo.CoordinateWithBearing) {
	if cfg.Output.Format == "json" {
		printJSON(results)
		return
	}

	for _, r := range results {
		fmt.Printf("%.6f, %.6f  %8.3f km  %s %.1f°\n",
			r.Latitude, r.Longitude, r.Distance, compassLabel(cfg, r.Bearing), r.Bearing)
	}
}

func printDistance(cfg *config.Config, rng geo.DistanceRange, bearing float64) {
	if cfg.Output.Format == "json" {
		printJSON(struct {
			geo.DistanceRange
			Bearing float64 `json:"bearing"`
			Compass string  `json:"compass"`
		}{rng, bearing, compassLabel(cfg, bearing)})
		return
	}

	fmt.Printf("distance: %.3f km", rng.Distance)
	if rng.Min != rng.Distance || rng.Max != rng.Distance {
		fmt.Printf(" (accuracy range %.3f to %.3f km)", rng.Min, rng.Max)
	}
	fmt.Printf("\nbearing:  %.1f° %s\n", bearing, compassLabel(cfg, bearing))
}

func printBoundsText(b geo.BoundingBox) {
	fmt.Printf("bounds:         %.6f, %.6f .. %.6f, %.6f\n",
		b.SouthWest.Latitude, b.SouthWest.Longitude, b.NorthEast.Latitude, b.NorthEast.Longitude)
}
