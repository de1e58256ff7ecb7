package csv2docx

import (
	"fmt"
	"regexp"
)

// Style bounds.
const (
	MaxFontSize Pt = 96
	MaxSpacing  Pt = 144
)

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Styles gathers every typographic value the layout builders use.
type Styles struct {
	FontFamily   string
	TextColor    Color
	HeadingColor Color

	BodySize    Pt // letter blocks, personal lines, objective, skills
	TitleSize   Pt // CV title heading
	SectionSize Pt // CV section headings
	EntrySize   Pt // bold experience/education line
	SubjectSize Pt // letter subject line

	SubjectHighlight string // w:highlight color name, empty for none

	ParagraphSpacing   Pt // space after letter blocks and the objective
	PersonalSpacing    Pt
	EntrySpacing       Pt
	DescriptionSpacing Pt
	SkillSpacing       Pt
}

// DefaultStyles returns the built-in styles: black Calibri, 12pt body.
func DefaultStyles() Styles {
	return Styles{
		FontFamily:         "Calibri",
		TextColor:          "000000",
		HeadingColor:       "000000",
		BodySize:           12,
		TitleSize:          24,
		SectionSize:        18,
		EntrySize:          14,
		SubjectSize:        14,
		ParagraphSpacing:   12,
		PersonalSpacing:    2,
		EntrySpacing:       4,
		DescriptionSpacing: 6,
		SkillSpacing:       4,
	}
}

// Validate checks sizes, spacing and colors.
func (s Styles) Validate() error {
	for _, f := range []struct {
		name string
		v    Pt
	}{
		{"body size", s.BodySize},
		{"title size", s.TitleSize},
		{"section size", s.SectionSize},
		{"entry size", s.EntrySize},
		{"subject size", s.SubjectSize},
	} {
		if f.v <= 0 || f.v > MaxFontSize {
			return fmt.Errorf("%w: %s %.1f (must be between 1 and %.0f)", ErrInvalidStyles, f.name, f.v, MaxFontSize)
		}
	}

	for _, f := range []struct {
		name string
		v    Pt
	}{
		{"paragraph spacing", s.ParagraphSpacing},
		{"personal spacing", s.PersonalSpacing},
		{"entry spacing", s.EntrySpacing},
		{"description spacing", s.DescriptionSpacing},
		{"skill spacing", s.SkillSpacing},
	} {
		if f.v < 0 || f.v > MaxSpacing {
			return fmt.Errorf("%w: %s %.1f (must be between 0 and %.0f)", ErrInvalidStyles, f.name, f.v, MaxSpacing)
		}
	}

	for _, c := range []struct {
		name string
		v    Color
	}{
		{"text color", s.TextColor},
		{"heading color", s.HeadingColor},
	} {
		if c.v != "" && !hexColor.MatchString(string(c.v)) {
			return fmt.Errorf("%w: %s %q", ErrInvalidStyles, c.name, c.v)
		}
	}
	return nil
}
