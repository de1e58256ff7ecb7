package csv2docx

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-csv2docx/internal/fileutil"
	"github.com/alnah/go-csv2docx/internal/ooxml"
)

// Sink persists a document. Implementations must refuse a document that was
// already written (see Document.Written).
type Sink interface {
	Write(ctx context.Context, doc *Document, dst string) error
}

// DocxSink writes documents as Office Open XML (.docx) files.
type DocxSink struct {
	Page   *PageSettings    // nil uses DefaultPageSettings
	Author string           // dc:creator
	Title  string           // dc:title, empty uses the document title
	Now    func() time.Time // creation date, nil uses time.Now
	NewID  func() string    // document identifier, nil uses a random UUID
	Perm   os.FileMode      // 0 uses 0644
}

// Write renders doc and replaces dst atomically. The document is sealed:
// a second Write of the same document fails with ErrDocumentWritten.
func (s *DocxSink) Write(ctx context.Context, doc *Document, dst string) error {
	if dst == "" {
		return ErrEmptyOutput
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	blocks, err := doc.seal()
	if err != nil {
		return err
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}
	err = fileutil.WriteFileAtomic(dst, perm, func(w io.Writer) error {
		return s.encode(doc, blocks, w)
	})
	if err != nil {
		doc.unseal()
		return fmt.Errorf("%w: %s: %w", ErrWriteDocument, dst, err)
	}
	return nil
}

// Encode renders doc to w. Unlike Write it does not seal the document.
func (s *DocxSink) Encode(doc *Document, w io.Writer) error {
	return s.encode(doc, doc.Blocks(), w)
}

func (s *DocxSink) encode(doc *Document, blocks []Block, w io.Writer) error {
	pkg, err := s.pkg(doc, blocks)
	if err != nil {
		return err
	}
	_, err = pkg.WriteTo(w)
	return err
}

func (s *DocxSink) pkg(doc *Document, blocks []Block) (*ooxml.Package, error) {
	if err := s.Page.Validate(); err != nil {
		return nil, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	id := uuid.NewString
	if s.NewID != nil {
		id = s.NewID
	}
	title := s.Title
	if title == "" {
		title = doc.Title
	}

	pkg := &ooxml.Package{
		Properties: ooxml.CoreProperties{
			Title:      title,
			Creator:    s.Author,
			Identifier: "urn:uuid:" + id(),
			Language:   "fr-FR",
			Created:    now(),
		},
		Font:     doc.FontFamily,
		FontSize: ooxml.HalfPoints(float64(doc.FontSize)),
		Page:     s.Page.setup(),
	}

	for _, b := range blocks {
		el, err := toElement(b)
		if err != nil {
			return nil, err
		}
		pkg.Body = append(pkg.Body, el)
	}
	return pkg, nil
}

func toElement(b Block) (ooxml.Element, error) {
	switch v := b.(type) {
	case *Heading:
		style := ooxml.StyleHeading1
		if v.Level >= 2 {
			style = ooxml.StyleHeading2
		}
		return &ooxml.Paragraph{
			Style: style,
			Align: v.Alignment.ooxml(),
			Runs:  []ooxml.Run{{Text: v.Text, Size: ooxml.HalfPoints(float64(v.FontSize)), Color: hex(v.Color)}},
		}, nil
	case *Paragraph:
		return toParagraph(v), nil
	case *Table:
		if v.Columns < 1 {
			return nil, fmt.Errorf("%w: %d columns", ErrInvalidSkills, v.Columns)
		}
		t := &ooxml.Table{Style: v.Style, Columns: v.Columns}
		for _, row := range v.Rows() {
			cells := make([]ooxml.Cell, len(row))
			for i, text := range row {
				cells[i] = ooxml.Cell{Paragraphs: []ooxml.Paragraph{{
					Align: ooxml.AlignLeft,
					Runs:  []ooxml.Run{{Text: text, Size: ooxml.HalfPoints(float64(v.FontSize)), Color: hex(v.Color)}},
				}}}
			}
			t.Rows = append(t.Rows, cells)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported block %T", b)
	}
}

// toParagraph leaves run-less paragraphs bare so spacers inherit Normal.
func toParagraph(p *Paragraph) *ooxml.Paragraph {
	out := &ooxml.Paragraph{}
	if len(p.Runs) == 0 && p.SpaceAfter == 0 {
		return out
	}
	after := ooxml.Twips(float64(p.SpaceAfter))
	out.Align = p.Alignment.ooxml()
	out.SpaceAfter = &after
	for _, r := range p.Runs {
		out.Runs = append(out.Runs, ooxml.Run{
			Text:      r.Text,
			Bold:      r.Bold,
			Size:      ooxml.HalfPoints(float64(r.FontSize)),
			Color:     hex(r.Color),
			Highlight: r.Highlight,
		})
	}
	return out
}

func hex(c Color) string {
	return strings.ToUpper(strings.TrimPrefix(string(c), "#"))
}

// Compile-time interface check.
var _ Sink = (*DocxSink)(nil)
