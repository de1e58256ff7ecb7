package main

// Notes:
// - mergeFlags: CLI values override config, zero values keep it.
// - buildStyles: embedded preset, preset file, overrides, unknown preset.
// - buildPageSettings / resolveVariant / buildOptions: defaults and
//   validation paths.
// - loadConfig: empty name gives defaults, unknown name carries a hint.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/assets"
	"github.com/alnah/go-csv2docx/internal/config"
)

// ---------------------------------------------------------------------------
// TestMergeFlags
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		f := &generateFlags{
			style:    styleFlags{style: "compact", assetPath: "/assets"},
			page:     pageFlags{size: "letter", orientation: "landscape", margin: 0.5},
			document: documentFlags{author: "Jean", title: "Candidature"},
			letter:   letterFlags{city: "Lyon", dateFormat: "D MMMM YYYY"},
			skills:   skillsFlags{table: true, columns: 3},
		}

		mergeFlags(f, cfg)

		if cfg.Style != "compact" || cfg.Assets.BasePath != "/assets" {
			t.Errorf("style = %q, assets = %q", cfg.Style, cfg.Assets.BasePath)
		}
		if cfg.Page != (config.PageConfig{Size: "letter", Orientation: "landscape", Margin: 0.5}) {
			t.Errorf("page = %+v", cfg.Page)
		}
		if cfg.Document != (config.DocumentConfig{Author: "Jean", Title: "Candidature"}) {
			t.Errorf("document = %+v", cfg.Document)
		}
		if cfg.Letter.City != "Lyon" || cfg.Letter.DateFormat != "D MMMM YYYY" {
			t.Errorf("letter = %+v", cfg.Letter)
		}
		if cfg.CV.Skills != (config.SkillsConfig{Layout: "table", Columns: 3}) {
			t.Errorf("skills = %+v", cfg.CV.Skills)
		}
	})

	t.Run("zero flags keep config", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		want := *config.DefaultConfig()

		mergeFlags(&generateFlags{}, cfg)

		if cfg.Style != want.Style || cfg.Page != want.Page || cfg.Letter != want.Letter || cfg.CV.Skills != want.CV.Skills {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildStyles
// ---------------------------------------------------------------------------

func TestBuildStyles(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("embedded preset", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Style = "compact"

		st, err := buildStyles(cfg, loader)
		if err != nil {
			t.Fatalf("buildStyles: %v", err)
		}
		if st.BodySize != 10.5 || st.TitleSize != 20 {
			t.Errorf("sizes = %v/%v, want 10.5/20", st.BodySize, st.TitleSize)
		}
		if st.PersonalSpacing != 0 {
			t.Errorf("PersonalSpacing = %v, want 0", st.PersonalSpacing)
		}
	})

	t.Run("config overrides preset", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Style = "compact"
		cfg.Styles.BodySize = 11
		cfg.Styles.Highlight = "yellow"

		st, err := buildStyles(cfg, loader)
		if err != nil {
			t.Fatalf("buildStyles: %v", err)
		}
		if st.BodySize != 11 || st.SubjectHighlight != "yellow" {
			t.Errorf("BodySize = %v, SubjectHighlight = %q", st.BodySize, st.SubjectHighlight)
		}
	})

	t.Run("preset file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "mine.yaml", "fontFamily: Georgia\ntitleSize: 30\n")
		cfg := config.DefaultConfig()
		cfg.Style = path

		st, err := buildStyles(cfg, loader)
		if err != nil {
			t.Fatalf("buildStyles: %v", err)
		}
		if st.FontFamily != "Georgia" || st.TitleSize != 30 {
			t.Errorf("FontFamily = %q, TitleSize = %v", st.FontFamily, st.TitleSize)
		}
		if st.BodySize != csv2docx.DefaultStyles().BodySize {
			t.Errorf("BodySize = %v, want default", st.BodySize)
		}
	})

	t.Run("missing preset file", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Style = filepath.Join(t.TempDir(), "none.yaml")

		_, err := buildStyles(cfg, loader)
		if !errors.Is(err, ErrReadStyle) {
			t.Errorf("error = %v, want ErrReadStyle", err)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()
		cfg := config.DefaultConfig()
		cfg.Style = "fancy"

		_, err := buildStyles(cfg, loader)
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Fatalf("error = %v, want ErrStyleNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should carry a hint: %v", err)
		}
	})

	t.Run("invalid preset file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "bad.yaml", "unknownField: 1\n")
		cfg := config.DefaultConfig()
		cfg.Style = path

		_, err := buildStyles(cfg, loader)
		if !errors.Is(err, config.ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildPageSettings
// ---------------------------------------------------------------------------

func TestBuildPageSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    config.PageConfig
		want    csv2docx.PageSettings
		wantErr error
	}{
		{
			name: "defaults",
			want: csv2docx.PageSettings{Size: csv2docx.PageSizeA4, Orientation: csv2docx.OrientationPortrait, Margin: csv2docx.DefaultMargin},
		},
		{
			name: "explicit",
			page: config.PageConfig{Size: "legal", Orientation: "landscape", Margin: 2},
			want: csv2docx.PageSettings{Size: "legal", Orientation: "landscape", Margin: 2},
		},
		{
			name:    "invalid size",
			page:    config.PageConfig{Size: "a5"},
			wantErr: csv2docx.ErrInvalidPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &config.Config{Page: tt.page}

			got, err := buildPageSettings(cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("buildPageSettings() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveVariant
// ---------------------------------------------------------------------------

func TestResolveVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		positional  string
		configured  string
		want        csv2docx.Variant
		wantWarning bool
	}{
		{"default", "", "debutant", csv2docx.VariantDebutant, false},
		{"from config", "", "accompli", csv2docx.VariantAccompli, false},
		{"argument wins", "accompli", "debutant", csv2docx.VariantAccompli, false},
		{"case insensitive", "ACCOMPLI", "", csv2docx.VariantAccompli, false},
		{"unknown warns", "senior", "", csv2docx.Variant("senior"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.DefaultConfig()
			cfg.CV.Variant = tt.configured

			got, warning := resolveVariant(tt.positional, cfg)
			if got != tt.want {
				t.Errorf("variant = %q, want %q", got, tt.want)
			}
			if tt.wantWarning != (warning != "") {
				t.Errorf("warning = %q, wantWarning %v", warning, tt.wantWarning)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig / TestBuildOptions
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name gives defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Letter.City != "Nice" {
			t.Errorf("City = %q, want Nice", cfg.Letter.City)
		}
	})

	t.Run("unknown name has hint", func(t *testing.T) {
		t.Parallel()
		_, err := loadConfig("csv2docx-no-such-config")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error should carry a hint: %v", err)
		}
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, t.TempDir(), "work.yaml", "letter:\n  city: Lyon\n")
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig: %v", err)
		}
		if cfg.Letter.City != "Lyon" {
			t.Errorf("City = %q, want Lyon", cfg.Letter.City)
		}
	})
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	t.Run("valid config builds a generator", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()

		opts, err := buildOptions(config.DefaultConfig(), env)
		if err != nil {
			t.Fatalf("buildOptions: %v", err)
		}
		if _, err := csv2docx.NewGenerator(opts...); err != nil {
			t.Errorf("NewGenerator: %v", err)
		}
	})

	t.Run("bad asset path", func(t *testing.T) {
		t.Parallel()
		env, _, _ := testEnv()
		cfg := config.DefaultConfig()
		cfg.Assets.BasePath = filepath.Join(t.TempDir(), "missing")

		_, err := buildOptions(cfg, env)
		if !errors.Is(err, assets.ErrInvalidBasePath) {
			t.Errorf("error = %v, want ErrInvalidBasePath", err)
		}
	})
}
