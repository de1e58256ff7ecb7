// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-csv2docx") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingSource returns a hint for a source path that does not exist.
func ForMissingSource() string {
	return format("run 'csv2docx init letter' or 'csv2docx init cv' to create a sample source")
}

// ForUnsupportedSource returns a hint listing accepted source extensions.
func ForUnsupportedSource(accepted []string) string {
	if len(accepted) == 0 {
		return ""
	}
	return format("accepted extensions: " + strings.Join(accepted, ", "))
}

// ForMissingColumns returns a hint naming the header columns a source should carry.
func ForMissingColumns(columns []string) string {
	if len(columns) == 0 {
		return ""
	}
	return format("the first row must name the columns, e.g. " + strings.Join(columns, ","))
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
