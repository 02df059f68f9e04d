package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/fleetops/geokit/geo"
	"github.com/fleetops/geokit/gpslog"
	"github.com/fleetops/geokit/internal/pkg/config"
	"github.com/fleetops/geokit/internal/pkg/logging"
)

const usage = `usage: geoctl <command> [flags] <fixlog>

commands:
  route    path summary of a fix log, optionally nearest-neighbor reordered
  spread   dispersion statistics of a fix log
  nearby   fixes within a radius of a point
  nearest  closest fixes to a point, with bearings
  distance distance and bearing between two points (no fix log)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	switch os.Args[1] {
	case "route":
		runRoute(cfg, os.Args[2:])
	case "spread":
		runSpread(cfg, os.Args[2:])
	case "nearby":
		runNearby(cfg, os.Args[2:])
	case "nearest":
		runNearest(cfg, os.Args[2:])
	case "distance":
		runDistance(cfg, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n%s", os.Args[1], usage)
		os.Exit(2)
	}
}

func runRoute(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("route", flag.ExitOnError)
	optimize := fs.Bool("optimize", false, "reorder fixes with the nearest-neighbor heuristic")
	start := fs.String("start", "", "start point as lat,lon (required with -optimize)")
	parseArgs(fs, args)

	coords := loadFixes(fs)

	if *optimize {
		startCoord, err := parseLatLonPair(*start)
		if err != nil {
			fatal(fmt.Errorf("-start: %w", err))
		}

		ordered, err := geo.OptimizeRouteOrder(startCoord, coords)
		if err != nil {
			fatal(err)
		}
		optimized, err := geo.OptimizedRouteDistance(startCoord, coords)
		if err != nil {
			fatal(err)
		}

		printOptimizedRoute(cfg, startCoord, ordered, optimized, geo.TotalDistance(coords))
		return
	}

	info, err := geo.ComputeRouteInfo(coords)
	if err != nil {
		fatal(err)
	}
	printRouteInfo(cfg, info)
}

func runSpread(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("spread", flag.ExitOnError)
	parseArgs(fs, args)

	stats, err := geo.Spread(loadFixes(fs))
	if err != nil {
		fatal(err)
	}
	printSpread(cfg, stats)
}

func runNearby(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("nearby", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "center latitude")
	lon := fs.Float64("lon", 0, "center longitude")
	radius := fs.Float64("radius", cfg.Query.RadiusKm, "search radius in km")
	parseArgs(fs, args)

	results, err := geo.FindWithinRadius(*lat, *lon, *radius, loadFixes(fs))
	if err != nil {
		fatal(err)
	}
	printNearby(cfg, results)
}

func runNearest(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("nearest", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "target latitude")
	lon := fs.Float64("lon", 0, "target longitude")
	limit := fs.Int("limit", cfg.Query.NearestLimit, "maximum results")
	parseArgs(fs, args)

	results, err := geo.FindNearest(*lat, *lon, loadFixes(fs), *limit)
	if err != nil {
		fatal(err)
	}
	printNearest(cfg, results)
}

func runDistance(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	from := fs.String("from", "", "origin as lat,lon")
	to := fs.String("to", "", "destination as lat,lon")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	origin, err := parseLatLonPair(*from)
	if err != nil {
		fatal(fmt.Errorf("-from: %w", err))
	}
	dest, err := parseLatLonPair(*to)
	if err != nil {
		fatal(fmt.Errorf("-to: %w", err))
	}

	rng, err := geo.DistanceWithAccuracy(origin, dest)
	if err != nil {
		fatal(err)
	}
	bearing, err := geo.Bearing(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)
	if err != nil {
		fatal(err)
	}

	printDistance(cfg, rng, bearing)
}

// parseArgs parses flags and requires exactly one positional fix log path.
func parseArgs(fs *flag.FlagSet, args []string) {
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "expected one fix log path, got %d arguments\n", fs.NArg())
		os.Exit(2)
	}
}

func loadFixes(fs *flag.FlagSet) []geo.Coordinate {
	path := fs.Arg(0)
	coords, err := gpslog.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	slog.Debug("loaded fix log", "path", path, "fixes", len(coords))
	return coords
}

// parseLatLonPair parses "lat,lon" into a coordinate without range checks;
// the geo functions validate.
func parseLatLonPair(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected lat,lon, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("bad latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("bad longitude %q", parts[1])
	}
	return geo.Coordinate{Latitude: lat, Longitude: lon}, nil
}

// fatal reports the error and exits non-zero. Validation failures from the
// geo package surface here with their context label intact.
func fatal(err error) {
	slog.Error("geoctl failed", "error", err)
	os.Exit(1)
}
