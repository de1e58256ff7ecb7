package config

import (
	"fmt"

	"github.com/alnah/go-csv2docx/internal/yamlutil"
)

// StylesConfig is the YAML form of a style preset. Zero values and nil
// spacing pointers mean "keep the base value", so a preset or config only
// names what it changes.
type StylesConfig struct {
	FontFamily   string        `yaml:"fontFamily"`
	TextColor    string        `yaml:"textColor"`    // RRGGBB, leading # allowed
	HeadingColor string        `yaml:"headingColor"` // RRGGBB, leading # allowed
	BodySize     float64       `yaml:"bodySize"`     // points
	TitleSize    float64       `yaml:"titleSize"`
	SectionSize  float64       `yaml:"sectionSize"`
	EntrySize    float64       `yaml:"entrySize"`
	SubjectSize  float64       `yaml:"subjectSize"`
	Highlight    string        `yaml:"highlight"` // highlight color name for the letter subject
	Spacing      SpacingConfig `yaml:"spacing"`
}

// SpacingConfig holds space-after values in points.
type SpacingConfig struct {
	Paragraph   *float64 `yaml:"paragraph"`   // letter blocks and CV objective
	Personal    *float64 `yaml:"personal"`    // CV personal lines
	Entry       *float64 `yaml:"entry"`       // CV entry line
	Description *float64 `yaml:"description"` // CV entry description
	Skill       *float64 `yaml:"skill"`       // CV skill line
}

// highlightColors are the names w:highlight accepts.
var highlightColors = map[string]bool{
	"black": true, "blue": true, "cyan": true, "green": true, "magenta": true,
	"red": true, "yellow": true, "white": true, "darkBlue": true, "darkCyan": true,
	"darkGreen": true, "darkMagenta": true, "darkRed": true, "darkYellow": true,
	"darkGray": true, "lightGray": true,
}

// ParseStyles decodes and validates a style preset.
func ParseStyles(data []byte) (StylesConfig, error) {
	var s StylesConfig
	if err := yamlutil.Decode(data, &s, yamlutil.Strict); err != nil {
		return StylesConfig{}, fmt.Errorf("%w: style preset: %v", ErrConfigParse, err)
	}
	if err := s.Validate(); err != nil {
		return StylesConfig{}, err
	}
	return s, nil
}

// Merge returns s with every field set in over replacing its counterpart.
func (s StylesConfig) Merge(over StylesConfig) StylesConfig {
	out := s
	if over.FontFamily != "" {
		out.FontFamily = over.FontFamily
	}
	if over.TextColor != "" {
		out.TextColor = over.TextColor
	}
	if over.HeadingColor != "" {
		out.HeadingColor = over.HeadingColor
	}
	if over.BodySize != 0 {
		out.BodySize = over.BodySize
	}
	if over.TitleSize != 0 {
		out.TitleSize = over.TitleSize
	}
	if over.SectionSize != 0 {
		out.SectionSize = over.SectionSize
	}
	if over.EntrySize != 0 {
		out.EntrySize = over.EntrySize
	}
	if over.SubjectSize != 0 {
		out.SubjectSize = over.SubjectSize
	}
	if over.Highlight != "" {
		out.Highlight = over.Highlight
	}
	out.Spacing = SpacingConfig{
		Paragraph:   pick(s.Spacing.Paragraph, over.Spacing.Paragraph),
		Personal:    pick(s.Spacing.Personal, over.Spacing.Personal),
		Entry:       pick(s.Spacing.Entry, over.Spacing.Entry),
		Description: pick(s.Spacing.Description, over.Spacing.Description),
		Skill:       pick(s.Spacing.Skill, over.Spacing.Skill),
	}
	return out
}

func pick(base, over *float64) *float64 {
	if over != nil {
		return over
	}
	return base
}

// Validate checks colors, font sizes and spacing ranges.
func (s StylesConfig) Validate() error {
	if err := validateFieldLength("styles.fontFamily", s.FontFamily, MaxFontFamilyLength); err != nil {
		return err
	}
	for _, c := range []struct{ name, value string }{
		{"styles.textColor", s.TextColor},
		{"styles.headingColor", s.HeadingColor},
	} {
		if c.value != "" && !hexColorPattern.MatchString(c.value) {
			return fmt.Errorf("%w: %s: %q (must be a hex color like #1F2937)", ErrInvalidValue, c.name, c.value)
		}
	}
	if s.Highlight != "" && !highlightColors[s.Highlight] {
		return fmt.Errorf("%w: styles.highlight: unknown color %q", ErrInvalidValue, s.Highlight)
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"styles.bodySize", s.BodySize},
		{"styles.titleSize", s.TitleSize},
		{"styles.sectionSize", s.SectionSize},
		{"styles.entrySize", s.EntrySize},
		{"styles.subjectSize", s.SubjectSize},
	} {
		if f.value < 0 || f.value > MaxFontSize {
			return fmt.Errorf("%w: %s: must be between 1 and %.0f, got %.1f", ErrInvalidValue, f.name, MaxFontSize, f.value)
		}
	}

	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"styles.spacing.paragraph", s.Spacing.Paragraph},
		{"styles.spacing.personal", s.Spacing.Personal},
		{"styles.spacing.entry", s.Spacing.Entry},
		{"styles.spacing.description", s.Spacing.Description},
		{"styles.spacing.skill", s.Spacing.Skill},
	} {
		if f.value != nil && (*f.value < 0 || *f.value > MaxSpacing) {
			return fmt.Errorf("%w: %s: must be between 0 and %.0f, got %.1f", ErrInvalidValue, f.name, MaxSpacing, *f.value)
		}
	}
	return nil
}
