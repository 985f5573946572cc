package array

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source selects the on-disk format of an array file.
type Source int

const (
	// SourceAuto picks the format from the file extension (.csv and .txt
	// load as delimited text, everything else as a binary dump).
	SourceAuto Source = iota
	SourceBinary
	SourceCSV
)

// ParseSource maps a CLI flag value to a Source.
func ParseSource(s string) (Source, error) {
	switch s {
	case "", "auto":
		return SourceAuto, nil
	case "binary", "npy":
		return SourceBinary, nil
	case "csv", "text":
		return SourceCSV, nil
	default:
		return SourceAuto, fmt.Errorf("unknown source format %q (binary|csv)", s)
	}
}

// Load reads a numeric array from path using the given source format.
func Load(path string, source Source) (*Array, error) {
	switch source {
	case SourceBinary:
		return LoadNPY(path)
	case SourceCSV:
		return LoadCSV(path)
	default:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".txt":
			return LoadCSV(path)
		default:
			return LoadNPY(path)
		}
	}
}
