package gpslog

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fleetops/geokit/geo"
)

// readJSON decodes either a single JSON array of coordinate records or
// newline-delimited JSON, one record per line. NDJSON lines that fail to
// decode are skipped.
func readJSON(r io.Reader) ([]geo.Coordinate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON log: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var coords []geo.Coordinate
		if err := json.Unmarshal(trimmed, &coords); err != nil {
			return nil, fmt.Errorf("decoding JSON array: %w", err)
		}
		return coords, nil
	}

	var coords []geo.Coordinate
	scanner := bufio.NewScanner(bytes.NewReader(trimmed))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var c geo.Coordinate
		if err := json.Unmarshal(line, &c); err != nil {
			continue
		}
		coords = append(coords, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading NDJSON log: %w", err)
	}

	return coords, nil
}
