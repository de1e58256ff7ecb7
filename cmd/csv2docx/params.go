package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/assets"
	"github.com/alnah/go-csv2docx/internal/config"
	"github.com/alnah/go-csv2docx/internal/fileutil"
	"github.com/alnah/go-csv2docx/internal/hints"
)

// ErrReadStyle is returned when a style preset file cannot be read.
var ErrReadStyle = errors.New("failed to read style preset")

// loadConfig loads the named config, or the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.style.style != "" {
		cfg.Style = flags.style.style
	}
	if flags.style.assetPath != "" {
		cfg.Assets.BasePath = flags.style.assetPath
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}

	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}

	if flags.letter.city != "" {
		cfg.Letter.City = flags.letter.city
	}
	if flags.letter.dateFormat != "" {
		cfg.Letter.DateFormat = flags.letter.dateFormat
	}

	if flags.skills.table {
		cfg.CV.Skills.Layout = string(csv2docx.SkillsTable)
	}
	if flags.skills.columns > 0 {
		cfg.CV.Skills.Columns = flags.skills.columns
	}
}

// newAssetLoader returns the embedded loader, or a resolver trying basePath
// first when one is configured.
func newAssetLoader(basePath string) (assets.AssetLoader, error) {
	if basePath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	return assets.NewAssetResolver(basePath)
}

// buildStyles resolves the style preset and applies the config overrides on
// top of it. cfg.Style is a preset name, or a path when it contains a separator.
func buildStyles(cfg *config.Config, loader assets.AssetLoader) (csv2docx.Styles, error) {
	var preset config.StylesConfig
	if cfg.Style != "" {
		data, err := loadStylePreset(cfg.Style, loader)
		if err != nil {
			return csv2docx.Styles{}, err
		}
		preset, err = config.ParseStyles([]byte(data))
		if err != nil {
			return csv2docx.Styles{}, fmt.Errorf("style %q: %w", cfg.Style, err)
		}
	}
	return toStyles(preset.Merge(cfg.Styles)), nil
}

func loadStylePreset(nameOrPath string, loader assets.AssetLoader) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		return string(data), nil
	}
	data, err := loader.LoadStyle(nameOrPath)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.StyleNames()))
		}
		return "", err
	}
	return data, nil
}

// toStyles converts a preset into library styles. Unset fields keep
// csv2docx.DefaultStyles values.
func toStyles(sc config.StylesConfig) csv2docx.Styles {
	st := csv2docx.DefaultStyles()

	if sc.FontFamily != "" {
		st.FontFamily = sc.FontFamily
	}
	if sc.TextColor != "" {
		st.TextColor = csv2docx.Color(sc.TextColor)
	}
	if sc.HeadingColor != "" {
		st.HeadingColor = csv2docx.Color(sc.HeadingColor)
	}
	setPt(&st.BodySize, sc.BodySize)
	setPt(&st.TitleSize, sc.TitleSize)
	setPt(&st.SectionSize, sc.SectionSize)
	setPt(&st.EntrySize, sc.EntrySize)
	setPt(&st.SubjectSize, sc.SubjectSize)
	st.SubjectHighlight = sc.Highlight

	setSpacing(&st.ParagraphSpacing, sc.Spacing.Paragraph)
	setSpacing(&st.PersonalSpacing, sc.Spacing.Personal)
	setSpacing(&st.EntrySpacing, sc.Spacing.Entry)
	setSpacing(&st.DescriptionSpacing, sc.Spacing.Description)
	setSpacing(&st.SkillSpacing, sc.Spacing.Skill)
	return st
}

func setPt(dst *csv2docx.Pt, v float64) {
	if v > 0 {
		*dst = csv2docx.Pt(v)
	}
}

func setSpacing(dst *csv2docx.Pt, v *float64) {
	if v != nil {
		*dst = csv2docx.Pt(*v)
	}
}

// buildPageSettings creates csv2docx.PageSettings from config, with defaults
// for unset fields.
func buildPageSettings(cfg *config.Config) (*csv2docx.PageSettings, error) {
	ps := &csv2docx.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	if ps.Size == "" {
		ps.Size = csv2docx.PageSizeA4
	}
	if ps.Orientation == "" {
		ps.Orientation = csv2docx.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = csv2docx.DefaultMargin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// resolveVariant picks the CV variant: positional argument, then config.
// An unknown variant is kept (it lays out as non-accompli) and reported
// through the returned warning.
func resolveVariant(positional string, cfg *config.Config) (csv2docx.Variant, string) {
	raw := positional
	if raw == "" {
		raw = cfg.CV.Variant
	}
	v, known := csv2docx.ParseVariant(raw)
	if !known {
		return v, fmt.Sprintf("warning: unknown variant %q (expected %s), using the %s layout",
			raw, strings.Join(config.Variants, " or "), csv2docx.VariantDebutant)
	}
	return v, ""
}

// buildOptions converts the merged config into generator options.
func buildOptions(cfg *config.Config, env *Environment) ([]csv2docx.Option, error) {
	loader, err := newAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}
	styles, err := buildStyles(cfg, loader)
	if err != nil {
		return nil, err
	}
	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}

	opts := []csv2docx.Option{
		csv2docx.WithStyles(styles),
		csv2docx.WithPage(page),
		csv2docx.WithSkillsLayout(csv2docx.SkillsLayout(strings.ToLower(cfg.CV.Skills.Layout)), cfg.CV.Skills.Columns),
		csv2docx.WithAuthor(cfg.Document.Author),
		csv2docx.WithTitle(cfg.Document.Title),
	}
	if cfg.Letter.City != "" {
		opts = append(opts, csv2docx.WithCity(cfg.Letter.City))
	}
	if cfg.Letter.DateFormat != "" {
		opts = append(opts, csv2docx.WithDateFormat(cfg.Letter.DateFormat))
	}
	if env.Now != nil {
		opts = append(opts, csv2docx.WithClock(env.Now))
	}
	return opts, nil
}
