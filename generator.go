package csv2docx

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-csv2docx/internal/dateutil"
)

// Generator turns sources into cover letters and CVs.
// Create with NewGenerator; a Generator is safe for concurrent use.
type Generator struct {
	styles        Styles
	city          string
	dateFormat    string
	now           func() time.Time
	skillsLayout  SkillsLayout
	skillsColumns int
	page          *PageSettings
	author        string
	title         string
	sink          Sink
}

// NewGenerator creates a Generator with default styles, the .docx sink and
// the options applied. Returns error if styles, page settings or the date
// format are invalid.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		styles:     DefaultStyles(),
		city:       DefaultCity,
		dateFormat: dateutil.DefaultFormat,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := g.styles.Validate(); err != nil {
		return nil, err
	}
	if err := g.page.Validate(); err != nil {
		return nil, err
	}
	if err := dateutil.Validate(g.dateFormat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	if _, err := g.cvSettings("").withDefaults(); err != nil {
		return nil, err
	}

	if g.sink == nil {
		g.sink = &DocxSink{
			Page:   g.page,
			Author: g.author,
			Title:  g.title,
			Now:    g.now,
		}
	}

	return g, nil
}

// CoverLetter classifies rows and lays out a cover letter.
func (g *Generator) CoverLetter(rows []Row) (*Document, error) {
	if err := requireColumn(rows, FieldTitle); err != nil {
		return nil, err
	}
	return BuildCoverLetter(ClassifyLetter(rows), LetterSettings{
		Styles:     g.styles,
		City:       g.city,
		DateFormat: g.dateFormat,
		Now:        g.now(),
	})
}

// CV classifies rows and lays out a CV in the given variant.
func (g *Generator) CV(rows []Row, variant Variant) (*Document, error) {
	if err := requireColumn(rows, FieldSection); err != nil {
		return nil, err
	}
	return BuildCV(ClassifyCV(rows), g.cvSettings(variant))
}

func (g *Generator) cvSettings(variant Variant) CVSettings {
	return CVSettings{
		Styles:        g.styles,
		Variant:       variant,
		SkillsLayout:  g.skillsLayout,
		SkillsColumns: g.skillsColumns,
	}
}

// GenerateCoverLetter reads src, builds the letter and writes it to dst.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) GenerateCoverLetter(ctx context.Context, src, dst string) (doc *Document, err error) {
	defer recoverInternal(&err)
	return g.generate(ctx, src, dst, g.CoverLetter)
}

// GenerateCV reads src, builds the CV in variant and writes it to dst.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) GenerateCV(ctx context.Context, src, dst string, variant Variant) (doc *Document, err error) {
	defer recoverInternal(&err)
	return g.generate(ctx, src, dst, func(rows []Row) (*Document, error) {
		return g.CV(rows, variant)
	})
}

func (g *Generator) generate(ctx context.Context, src, dst string, build func([]Row) (*Document, error)) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dst == "" {
		return nil, ErrEmptyOutput
	}

	rows, err := ReadRows(src)
	if err != nil {
		return nil, err
	}

	doc, err := build(rows)
	if err != nil {
		return nil, err
	}

	if err := g.sink.Write(ctx, doc, dst); err != nil {
		return nil, err
	}
	return doc, nil
}

func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("internal error: %v", r)
	}
}
