// Package dataset loads CSV measurement files into an immutable in-memory table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Dataset holds ordered rows of named numeric columns parsed from a CSV file
// with a header row. It is read-only after loading.
type Dataset struct {
	cols []string
	idx  map[string]int
	data [][]float64 // column-major: data[col][row]
}

// Load reads a CSV file from disk into a Dataset.
func Load(path string) (*Dataset, error) {
	defer TimeTrack(time.Now(), "load "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	Debugf("loaded %s: %d columns, %d rows", path, len(d.cols), d.Len())
	return d, nil
}

// Read parses CSV data with a header row. Every data cell must parse as a
// float64; measurement files carry only numeric columns.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(header))
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty name for column %d", i+1)
		}
		if _, dup := idx[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		cols[i] = name
		idx[name] = i
	}
	data := make([][]float64, len(cols))
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		for i, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %q is not numeric", line, cols[i], cell)
			}
			data[i] = append(data[i], v)
		}
	}
	return &Dataset{cols: cols, idx: idx, data: data}, nil
}

// Columns returns the column names in header order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.cols))
	copy(out, d.cols)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if len(d.data) == 0 {
		return 0
	}
	return len(d.data[0])
}

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.idx[name]
	return ok
}

// Column returns a copy of the named column's values in row order.
func (d *Dataset) Column(name string) ([]float64, bool) {
	i, ok := d.idx[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(d.data[i]))
	copy(out, d.data[i])
	return out, true
}
