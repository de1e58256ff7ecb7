package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-csv2docx/internal/dateutil"
	"github.com/alnah/go-csv2docx/internal/fileutil"
	"github.com/alnah/go-csv2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength       = 100  // author, city
	MaxTitleLength      = 200  // document title
	MaxPathLength       = 4096 // output paths, style path, assets dir
	MaxFontFamilyLength = 64
)

// Numeric bounds.
const (
	MaxFontSize   = 96.0 // points
	MaxSpacing    = 144.0
	MinMargin     = 0.25 // inches
	MaxMargin     = 3.0
	MaxSkillsCols = 6
)

// Accepted enumeration values. Matching is case-insensitive.
var (
	Variants      = []string{"debutant", "accompli"}
	SkillsLayouts = []string{"list", "table"}
	PageSizes     = []string{"a4", "letter", "legal"}
	Orientations  = []string{"portrait", "landscape"}
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Config holds all configuration for document generation.
type Config struct {
	Style    string         `yaml:"style"`  // preset name or path to a .yaml preset
	Styles   StylesConfig   `yaml:"styles"` // overrides applied on top of the preset
	Letter   LetterConfig   `yaml:"letter"`
	CV       CVConfig       `yaml:"cv"`
	Page     PageConfig     `yaml:"page"`
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// LetterConfig defines cover letter options.
type LetterConfig struct {
	City       string `yaml:"city"`       // prefix of the date line
	DateFormat string `yaml:"dateFormat"` // dateutil format for the default date
	Output     string `yaml:"output"`     // output path (empty = derived from source)
}

// CVConfig defines CV options.
type CVConfig struct {
	Variant string       `yaml:"variant"` // "debutant" or "accompli"
	Output  string       `yaml:"output"`
	Skills  SkillsConfig `yaml:"skills"`
}

// SkillsConfig defines how the skills section is laid out.
type SkillsConfig struct {
	Layout  string `yaml:"layout"`  // "list" or "table"
	Columns int    `yaml:"columns"` // table columns (table layout only)
}

// PageConfig defines page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Author string `yaml:"author"`
	Title  string `yaml:"title"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks field lengths, enumerations and numeric ranges.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"style", c.Style, MaxPathLength},
		{"letter.city", c.Letter.City, MaxNameLength},
		{"letter.output", c.Letter.Output, MaxPathLength},
		{"cv.output", c.CV.Output, MaxPathLength},
		{"document.author", c.Document.Author, MaxNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Letter.DateFormat != "" {
		if err := dateutil.Validate(c.Letter.DateFormat); err != nil {
			return fmt.Errorf("%w: letter.dateFormat: %v", ErrInvalidValue, err)
		}
	}

	if err := validateEnum("cv.variant", c.CV.Variant, Variants); err != nil {
		return err
	}
	if err := validateEnum("cv.skills.layout", c.CV.Skills.Layout, SkillsLayouts); err != nil {
		return err
	}
	if c.CV.Skills.Columns < 0 || c.CV.Skills.Columns > MaxSkillsCols {
		return fmt.Errorf("%w: cv.skills.columns: must be between 1 and %d, got %d",
			ErrInvalidValue, MaxSkillsCols, c.CV.Skills.Columns)
	}

	if err := validateEnum("page.size", c.Page.Size, PageSizes); err != nil {
		return err
	}
	if err := validateEnum("page.orientation", c.Page.Orientation, Orientations); err != nil {
		return err
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin: must be between %.2f and %.1f inches, got %.2f",
			ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}

	return c.Styles.Validate()
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, ignoring case.
func validateEnum(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)",
		ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Style:  "default",
		Letter: LetterConfig{City: "Nice", DateFormat: dateutil.DefaultFormat},
		CV: CVConfig{
			Variant: "debutant",
			Skills:  SkillsConfig{Layout: "list", Columns: 2},
		},
		Page: PageConfig{Size: "a4", Orientation: "portrait", Margin: 1.0},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.DecodeFile(configPath, &cfg, yamlutil.Strict); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name:
// the current directory, then the user config directory, each with .yaml
// then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-csv2docx", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
