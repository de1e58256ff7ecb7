package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-csv2docx/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CSV2DOCX_CONFIG: config file name or path
	Style      string // CSV2DOCX_STYLE: style preset name or path
	OutputDir  string // CSV2DOCX_OUTPUT_DIR: default output directory
	AssetPath  string // CSV2DOCX_ASSET_PATH: custom asset directory
	City       string // CSV2DOCX_CITY: letter date city
	Variant    string // CSV2DOCX_VARIANT: CV variant
	PageSize   string // CSV2DOCX_PAGE_SIZE: a4, letter, legal
	Author     string // CSV2DOCX_AUTHOR: document author
	Workers    int    // CSV2DOCX_WORKERS: parallel workers
}

// knownEnvVars lists valid CSV2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CSV2DOCX_CONFIG":     true,
	"CSV2DOCX_STYLE":      true,
	"CSV2DOCX_OUTPUT_DIR": true,
	"CSV2DOCX_ASSET_PATH": true,
	"CSV2DOCX_CITY":       true,
	"CSV2DOCX_VARIANT":    true,
	"CSV2DOCX_PAGE_SIZE":  true,
	"CSV2DOCX_AUTHOR":     true,
	"CSV2DOCX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CSV2DOCX_CONFIG"),
		Style:      os.Getenv("CSV2DOCX_STYLE"),
		OutputDir:  os.Getenv("CSV2DOCX_OUTPUT_DIR"),
		AssetPath:  os.Getenv("CSV2DOCX_ASSET_PATH"),
		City:       os.Getenv("CSV2DOCX_CITY"),
		Variant:    os.Getenv("CSV2DOCX_VARIANT"),
		PageSize:   os.Getenv("CSV2DOCX_PAGE_SIZE"),
		Author:     os.Getenv("CSV2DOCX_AUTHOR"),
	}

	// Invalid or non-positive worker counts are ignored.
	if workers := os.Getenv("CSV2DOCX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CSV2DOCX_* variables.
// Helps catch typos like CSV2DOCX_AUTOR instead of CSV2DOCX_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "CSV2DOCX_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment variables over the config file.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.City != "" {
		cfg.Letter.City = env.City
	}
	if env.Variant != "" {
		cfg.CV.Variant = env.Variant
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Author != "" {
		cfg.Document.Author = env.Author
	}
}
