// Package gpslog reads GPS fix logs produced by field devices and turns them
// into coordinate slices for the geo package. Supported formats are NMEA 0183
// sentence logs, CSV exports, and JSON (a single array or one record per
// line).
//
// Readers only decode; they do not range-check positions. Lines or rows that
// cannot be decoded are skipped, mirroring the geo package's tolerance for
// noisy batch input. Range validation happens in the geo functions that
// consume the result.
package gpslog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetops/geokit/geo"
)

// Format identifies a fix log encoding.
type Format string

const (
	FormatNMEA Format = "nmea"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat maps a file name to its log format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nme", ".nmea", ".log":
		return FormatNMEA, nil
	case ".csv":
		return FormatCSV, nil
	case ".json", ".ndjson":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unrecognized fix log extension %q", filepath.Ext(path))
	}
}

// ReadFile reads a fix log, detecting the format from the file extension.
func ReadFile(path string) ([]geo.Coordinate, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fix log: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}

// Read decodes a fix log of the given format.
func Read(r io.Reader, format Format) ([]geo.Coordinate, error) {
	switch format {
	case FormatNMEA:
		return readNMEA(r)
	case FormatCSV:
		return readCSV(r)
	case FormatJSON:
		return readJSON(r)
	default:
		return nil, fmt.Errorf("unsupported fix log format %q", format)
	}
}
