package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/podesmap/internal/geo"
)

// MissingResourceError reports that the input document does not exist.
type MissingResourceError struct {
	Path string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("input file %q not found", e.Path)
}

// Table is an ordered list of rows with the union of their field names.
type Table struct {
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// Flatten converts every feature into a row, keeping input order.
// Columns list field names in first-appearance order.
func Flatten(fc *geo.FeatureCollection) *Table {
	t := &Table{
		Columns: []string{},
		Rows:    make([]Row, 0, len(fc.Features)),
	}

	seen := make(map[string]bool)
	for i := range fc.Features {
		row := rowFromFeature(&fc.Features[i])
		for _, f := range row.fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				t.Columns = append(t.Columns, f.Name)
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// Load opens path and flattens the feature collection it contains.
// An absent file yields *MissingResourceError before anything is parsed.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingResourceError{Path: path}
		}
		return nil, err
	}

	// Read-only handle, close errors carry no information
	defer func() { _ = f.Close() }()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("rows", t.Len()).
		Int("columns", len(t.Columns)).
		Msg("Dataset loaded")

	return t, nil
}

// Read decodes a feature collection from r and flattens it.
func Read(r io.Reader) (*Table, error) {
	fc, err := geo.Decode(r)
	if err != nil {
		return nil, err
	}

	return Flatten(fc), nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// WithCoordinates returns the rows that carry both latitude and longitude.
func (t *Table) WithCoordinates() []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if _, _, ok := r.Coordinates(); ok {
			out = append(out, r)
		}
	}

	return out
}
