package gpslog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fleetops/geokit/geo"
)

// Column aliases seen across device and fleet-console CSV exports.
var (
	latColumns = []string{"latitude", "lat"}
	lonColumns = []string{"longitude", "lon", "lng"}
	accColumns = []string{"accuracy", "acc"}
	altColumns = []string{"altitude", "alt", "elevation"}
)

// readCSV decodes a header-first CSV export. Rows whose position fields are
// missing or non-numeric are skipped.
func readCSV(r io.Reader) ([]geo.Coordinate, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := indexColumns(header)

	latIdx, ok := findColumn(cols, latColumns)
	if !ok {
		return nil, fmt.Errorf("CSV header has no latitude column (looked for %v)", latColumns)
	}
	lonIdx, ok := findColumn(cols, lonColumns)
	if !ok {
		return nil, fmt.Errorf("CSV header has no longitude column (looked for %v)", lonColumns)
	}
	accIdx, hasAcc := findColumn(cols, accColumns)
	altIdx, hasAlt := findColumn(cols, altColumns)

	var coords []geo.Coordinate
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		lat, latErr := parseField(record, latIdx)
		lon, lonErr := parseField(record, lonIdx)
		if latErr != nil || lonErr != nil {
			continue
		}

		c := geo.Coordinate{Latitude: lat, Longitude: lon}
		if hasAcc {
			if v, err := parseField(record, accIdx); err == nil {
				c.Accuracy = &v
			}
		}
		if hasAlt {
			if v, err := parseField(record, altIdx); err == nil {
				c.Altitude = &v
			}
		}
		coords = append(coords, c)
	}

	return coords, nil
}

// indexColumns maps normalized header names to their positions, stripping
// the BOM some exports prepend to the first column.
func indexColumns(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimPrefix(col, "\xef\xbb\xbf")
		m[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return m
}

func findColumn(cols map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := cols[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

func parseField(record []string, idx int) (float64, error) {
	if idx >= len(record) {
		return 0, fmt.Errorf("missing field %d", idx)
	}
	return strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
}
