package main

import (
	"errors"
	"os"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/assets"
	"github.com/alnah/go-csv2docx/internal/config"
	"github.com/alnah/go-csv2docx/internal/ooxml"
)

// Exit codes for csv2docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Source not found or unreadable, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, csv2docx.ErrSourceNotFound) ||
		errors.Is(err, csv2docx.ErrReadSource) ||
		errors.Is(err, csv2docx.ErrWriteDocument) ||
		errors.Is(err, ooxml.ErrNotDocx) ||
		errors.Is(err, ooxml.ErrMissingPart) ||
		errors.Is(err, ErrReadStyle) ||
		errors.Is(err, ErrGenerationFailed) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputIsFile) ||
		errors.Is(err, ErrOutputExists) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, csv2docx.ErrEmptySource) ||
		errors.Is(err, csv2docx.ErrUnsupportedSource) ||
		errors.Is(err, csv2docx.ErrMissingColumns) ||
		errors.Is(err, csv2docx.ErrInvalidPageSize) ||
		errors.Is(err, csv2docx.ErrInvalidOrientation) ||
		errors.Is(err, csv2docx.ErrInvalidMargin) ||
		errors.Is(err, csv2docx.ErrInvalidStyles) ||
		errors.Is(err, csv2docx.ErrInvalidDateFormat) ||
		errors.Is(err, csv2docx.ErrInvalidSkills) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrSampleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) {
		return ExitUsage
	}

	return ExitGeneral
}
