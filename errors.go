package csv2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Source errors.
	ErrEmptySource       = errors.New("source path cannot be empty")
	ErrSourceNotFound    = errors.New("source not found")
	ErrUnsupportedSource = errors.New("unsupported source format")
	ErrReadSource        = errors.New("failed to read source")
	ErrMissingColumns    = errors.New("source is missing required columns")

	// Document errors.
	ErrDocumentWritten = errors.New("document already written")
	ErrEmptyOutput     = errors.New("output path cannot be empty")
	ErrWriteDocument   = errors.New("failed to write document")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Style validation errors.
	ErrInvalidStyles = errors.New("invalid styles")

	// Layout errors.
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidSkills     = errors.New("invalid skills layout")
)
