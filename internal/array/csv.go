package array

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a headerless delimited table of numeric rows as a 2D array.
func LoadCSV(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Wrapped: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	defer f.Close()

	a, err := ReadCSV(f)
	if err != nil {
		return nil, &LoadError{Path: path, Wrapped: err}
	}
	return a, nil
}

// ReadCSV decodes comma-separated numeric rows. Every row must carry the
// same number of fields; the result is always rank 2.
func ReadCSV(r io.Reader) (*Array, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.TrimLeadingSpace = true

	var data []float64
	rows := 0
	cols := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		if cols == 0 {
			cols = len(record)
		}
		for _, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %q is not numeric", ErrFormat, rows, field)
			}
			data = append(data, v)
		}
		rows++
	}

	if rows == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrFormat)
	}
	return New(data, rows, cols)
}
