package csv2docx

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-csv2docx/internal/records"
)

// SourceExtensions lists the accepted source file extensions.
var SourceExtensions = records.Extensions

// Columns each document kind needs in the source header.
var (
	LetterColumns = []string{FieldTitle, FieldContent}
	CVColumns     = []string{FieldSection, FieldTitle, FieldSubtitle, FieldDescription, FieldStartDate, FieldEndDate}
)

// ReadRows reads a .csv or .xlsx source and normalizes every value.
func ReadRows(path string) ([]Row, error) {
	if path == "" {
		return nil, ErrEmptySource
	}

	recs, err := records.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		case errors.Is(err, records.ErrUnsupportedFormat):
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
		default:
			return nil, fmt.Errorf("%w: %s: %v", ErrReadSource, path, err)
		}
	}
	return toRows(recs), nil
}

// ReadCSV reads CSV rows from r and normalizes every value.
func ReadCSV(r io.Reader) ([]Row, error) {
	recs, err := records.ReadCSV(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return toRows(recs), nil
}

func toRows(recs []records.Record) []Row {
	rows := make([]Row, len(recs))
	for i, rec := range recs {
		rows[i] = NormalizeRow(rec)
	}
	return rows
}

// requireColumn fails when rows exist but none carries column.
func requireColumn(rows []Row, column string) error {
	if len(rows) == 0 {
		return nil
	}
	for _, row := range rows {
		if _, ok := row[column]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrMissingColumns, column)
}
