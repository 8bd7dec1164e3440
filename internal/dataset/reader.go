package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMissingInput indicates a required upstream artifact is absent.
var ErrMissingInput = errors.New("required input file missing")

// ReadFile reads a CSV artifact, checks its header against want, and returns
// the data rows. Every row is guaranteed to have len(want) fields; a row
// with the wrong field count surfaces as a csv.ParseError carrying the line
// number.
func ReadFile(path string, want []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (run the generator first)", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(want)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty file, header row expected", path)
		}
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	for i, col := range want {
		if header[i] != col {
			return nil, fmt.Errorf("%s: header column %d is %q, want %q", path, i+1, header[i], col)
		}
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, rec)
	}
}
