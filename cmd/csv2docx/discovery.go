package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/fileutil"
	"github.com/alnah/go-csv2docx/internal/hints"
)

// docxExt is the extension of generated documents.
const docxExt = ".docx"

// Sentinel errors for source discovery.
var (
	ErrNoInput            = errors.New("no source specified")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputIsFile       = errors.New("output must be a directory when the source is a directory")
)

// SourceFile is one source to generate and where its document goes.
type SourceFile struct {
	InputPath  string
	OutputPath string
}

// discoverSources lists the sources to generate. A file source yields itself;
// a directory yields every .csv and .xlsx file below it, with outputs mirroring
// the directory layout under output.
func discoverSources(inputPath, output string) ([]SourceFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.HasExtension(inputPath, csv2docx.SourceExtensions...) {
			return nil, fmt.Errorf("%w: %s%s", csv2docx.ErrUnsupportedSource, inputPath,
				hints.ForUnsupportedSource(csv2docx.SourceExtensions))
		}
		return []SourceFile{{InputPath: inputPath, OutputPath: resolveOutputPath(inputPath, output, "")}}, nil
	}

	if fileutil.HasExtension(output, docxExt) {
		return nil, fmt.Errorf("%w: %s", ErrOutputIsFile, output)
	}

	var files []SourceFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.HasExtension(path, csv2docx.SourceExtensions...) || isLockFile(path) {
			return nil
		}
		files = append(files, SourceFile{InputPath: path, OutputPath: resolveOutputPath(path, output, inputPath)})
		return nil
	})

	return files, err
}

// isLockFile reports office lock files ("~$cv.xlsx") that sit next to open workbooks.
func isLockFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "~$")
}

// resolveOutputPath determines the .docx path for a source file.
func resolveOutputPath(inputPath, output, baseInputDir string) string {
	name := fileutil.ReplaceExtension(filepath.Base(inputPath), docxExt)

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if fileutil.HasExtension(output, docxExt) {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(output, name)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
