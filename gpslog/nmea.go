package gpslog

import (
	"bufio"
	"fmt"
	"io"

	"github.com/adrianmo/go-nmea"

	"github.com/fleetops/geokit/geo"
)

// Horizontal accuracy estimate per unit of HDOP, in meters. The usual rule
// of thumb for consumer GPS receivers.
const metersPerHDOP = 5.0

// readNMEA extracts positions from GGA, RMC, and GLL sentences. Sentences
// that fail to parse, carry an invalid fix, or are of other types are
// skipped — device logs routinely interleave sentences we do not need.
func readNMEA(r io.Reader) ([]geo.Coordinate, error) {
	var coords []geo.Coordinate

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			continue
		}

		switch s := sentence.(type) {
		case nmea.GGA:
			if s.FixQuality == nmea.Invalid {
				continue
			}
			c := geo.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
			alt := s.Altitude
			c.Altitude = &alt
			if s.HDOP > 0 {
				acc := s.HDOP * metersPerHDOP
				c.Accuracy = &acc
			}
			coords = append(coords, c)

		case nmea.RMC:
			if s.Validity != nmea.ValidRMC {
				continue
			}
			coords = append(coords, geo.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude})

		case nmea.GLL:
			if s.Validity != nmea.ValidGLL {
				continue
			}
			coords = append(coords, geo.Coordinate{Latitude: s.Latitude, Longitude: s.Longitude})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading NMEA log: %w", err)
	}

	return coords, nil
}
