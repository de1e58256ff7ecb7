// Package records reads row-oriented tabular sources into header-keyed
// records. The first row of a source names the columns; every later row
// becomes one Record.
//
// Supported formats are CSV (UTF-8, with or without a byte order mark, or
// UTF-16 with a byte order mark) and XLSX (first worksheet only). Header names
// and cell values are converted to Unicode NFC so that labels typed with
// combining accents compare equal to their precomposed form.
package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for record reading.
var (
	ErrUnsupportedFormat = errors.New("unsupported source format")
	ErrReadSource        = errors.New("failed to read source")
)

// Extensions lists the accepted source file extensions.
var Extensions = []string{".csv", ".xlsx"}

// Record is one data row keyed by header name.
// Columns missing from a short row are absent; cells beyond the header are dropped.
type Record map[string]string

// ReadFile reads all records from the source at path, choosing the format by extension.
// A missing path returns an error wrapping os.ErrNotExist.
func ReadFile(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path) // #nosec G304 -- user-provided source path
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(f)
	case ".xlsx":
		f, err := os.Open(path) // #nosec G304 -- user-provided source path
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// buildRecords pairs every data row with the header.
// Rows whose cells are all blank are skipped, mirroring how CSV readers skip blank lines.
func buildRecords(header []string, rows [][]string) []Record {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = norm.NFC.String(strings.TrimSpace(h))
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		rec := make(Record, len(keys))
		for i, key := range keys {
			if key == "" || i >= len(row) {
				continue
			}
			rec[key] = norm.NFC.String(row[i])
		}
		records = append(records, rec)
	}
	return records
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
