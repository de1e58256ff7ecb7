package csv2docx

import (
	"fmt"
	"strings"

	"github.com/alnah/go-csv2docx/internal/ooxml"
)

// Row is one source record: field name to value. Fields missing from the
// source are absent keys.
type Row map[string]string

// Get returns the value of field, or "" when absent.
func (r Row) Get(field string) string {
	return r[field]
}

// Source field names.
const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldSection     = "section"
	FieldDescription = "description"
	FieldSubtitle    = "subtitle"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

// Variant selects the CV layout.
type Variant string

// CV variants.
const (
	VariantDebutant Variant = "debutant"
	VariantAccompli Variant = "accompli"
)

// DefaultVariant is used when no variant is given.
const DefaultVariant = VariantDebutant

// ParseVariant lowercases s and reports whether it names a known variant.
// Unknown values are still returned: they lay out like any non-accompli CV.
func ParseVariant(s string) (Variant, bool) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return DefaultVariant, true
	}
	return v, v == VariantDebutant || v == VariantAccompli
}

// Pt is a length in typographic points.
type Pt float64

// Color is an RRGGBB hex color, with or without a leading '#'.
type Color string

// Alignment is a paragraph alignment.
type Alignment int

// Paragraph alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

func (a Alignment) ooxml() string {
	switch a {
	case AlignCenter:
		return ooxml.AlignCenter
	case AlignRight:
		return ooxml.AlignRight
	case AlignJustify:
		return ooxml.AlignJustify
	default:
		return ooxml.AlignLeft
	}
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 1.0
)

// PageSettings configures page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// setup converts validated settings to the package page description.
func (p *PageSettings) setup() ooxml.PageSetup {
	if p == nil {
		p = DefaultPageSettings()
	}
	var ps ooxml.PageSetup
	switch strings.ToLower(p.Size) {
	case PageSizeLetter:
		ps = ooxml.PageLetter
	case PageSizeLegal:
		ps = ooxml.PageLegal
	default:
		ps = ooxml.PageA4
	}
	ps.Landscape = strings.EqualFold(p.Orientation, OrientationLandscape)
	ps.Margin = ooxml.TwipsFromInches(p.Margin)
	return ps
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}
