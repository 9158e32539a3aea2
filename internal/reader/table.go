package reader

import (
	"context"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrNoHeader is returned for an empty file.
	ErrNoHeader = eris.New("no header row")
	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = eris.New("missing required column")
)

// Table is a parsed CSV file: a header and its data rows.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds an empty table for header.
func NewTable(header []string) *Table {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := idx[col]; !dup {
			idx[col] = i
		}
	}
	return &Table{Header: header, index: idx}
}

// ReadFile opens and parses the CSV file at path.
func ReadFile(ctx context.Context, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "reader: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	t, err := ReadCSV(ctx, f, CSVOptions{LazyQuotes: true})
	if err != nil {
		return nil, eris.Wrapf(err, "reader: parse %s", path)
	}
	t.Path = path
	return t, nil
}

// Has reports whether the header contains col.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Missing returns the columns of cols absent from the header.
func (t *Table) Missing(cols ...string) []string {
	var missing []string
	for _, col := range cols {
		if !t.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// Require fails with ErrMissingColumn unless every col is in the header.
func (t *Table) Require(cols ...string) error {
	if missing := t.Missing(cols...); len(missing) > 0 {
		return eris.Wrapf(ErrMissingColumn, "%s: %s", t.name(), strings.Join(missing, ", "))
	}
	return nil
}

// Get returns the cell of row under col, or "" when the column or cell is absent.
func (t *Table) Get(row []string, col string) string {
	idx, ok := t.index[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// First returns the cell under the first of cols present in the header.
func (t *Table) First(row []string, cols ...string) string {
	for _, col := range cols {
		if t.Has(col) {
			return t.Get(row, col)
		}
	}
	return ""
}

// Record returns row as a header-keyed map.
func (t *Table) Record(row []string) map[string]string {
	rec := make(map[string]string, len(t.Header))
	for _, col := range t.Header {
		rec[col] = t.Get(row, col)
	}
	return rec
}

func (t *Table) name() string {
	if t.Path == "" {
		return "csv"
	}
	return t.Path
}
