package csv2docx

import (
	"fmt"
	"strings"
	"sync"
)

// Block is one element of a Document: *Heading, *Paragraph or *Table.
type Block interface {
	// PlainText returns the block's text without formatting.
	PlainText() string
	block()
}

// Heading is a title line rendered with a heading style.
type Heading struct {
	Text      string
	Level     int // 1 or 2
	FontSize  Pt
	Color     Color
	Alignment Alignment
}

// Paragraph is a sequence of styled runs. Newlines in run text are line breaks.
type Paragraph struct {
	Runs       []Run
	Alignment  Alignment
	SpaceAfter Pt
}

// Run is a styled fragment of a paragraph.
type Run struct {
	Text      string
	Bold      bool
	FontSize  Pt    // 0 inherits the document default
	Color     Color // empty inherits
	Highlight string
}

// Table lays cells out row-major in Columns columns.
type Table struct {
	Style    string
	Columns  int
	Cells    []string
	FontSize Pt
	Color    Color
}

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*Table) block()     {}

// PlainText returns the heading text.
func (h *Heading) PlainText() string { return h.Text }

// PlainText returns the concatenated run text.
func (p *Paragraph) PlainText() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// PlainText returns the cells joined by tabs, rows separated by newlines.
func (t *Table) PlainText() string {
	var sb strings.Builder
	for i, c := range t.Cells {
		if i > 0 {
			if t.Columns > 0 && i%t.Columns == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte('\t')
			}
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// Bold reports whether the paragraph has text and every run is bold.
func (p *Paragraph) Bold() bool {
	if len(p.Runs) == 0 {
		return false
	}
	for _, r := range p.Runs {
		if !r.Bold {
			return false
		}
	}
	return true
}

// Rows returns the table cells grouped by row, padding the last row.
func (t *Table) Rows() [][]string {
	if t.Columns < 1 || len(t.Cells) == 0 {
		return nil
	}
	rows := make([][]string, 0, (len(t.Cells)+t.Columns-1)/t.Columns)
	for i := 0; i < len(t.Cells); i += t.Columns {
		row := make([]string, t.Columns)
		copy(row, t.Cells[i:min(i+t.Columns, len(t.Cells))])
		rows = append(rows, row)
	}
	return rows
}

// DocumentKind tells what a Document holds.
type DocumentKind string

// Document kinds.
const (
	KindCoverLetter DocumentKind = "cover-letter"
	KindCV          DocumentKind = "cv"
)

// Document is an ordered, append-only block sequence. It can be written once.
type Document struct {
	Kind       DocumentKind
	Title      string
	FontFamily string // default font, empty for the package default
	FontSize   Pt     // default size, 0 for the package default

	mu      sync.Mutex
	blocks  []Block
	written bool
}

// NewDocument creates an empty document.
func NewDocument(kind DocumentKind, title string) *Document {
	return &Document{Kind: kind, Title: title}
}

// Append adds blocks at the end. It fails once the document was written.
func (d *Document) Append(blocks ...Block) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.written {
		return ErrDocumentWritten
	}
	for _, b := range blocks {
		if b == nil {
			return fmt.Errorf("appending to %s: nil block", d.Kind)
		}
	}
	d.blocks = append(d.blocks, blocks...)
	return nil
}

// Blocks returns a copy of the block sequence.
func (d *Document) Blocks() []Block {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Block, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.blocks)
}

// Written reports whether the document was handed to a sink.
func (d *Document) Written() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.written
}

// seal marks the document written and returns its blocks.
// A second call fails with ErrDocumentWritten.
func (d *Document) seal() ([]Block, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.written {
		return nil, ErrDocumentWritten
	}
	d.written = true
	return d.blocks, nil
}

// unseal reverts seal after a failed write so the caller may retry.
func (d *Document) unseal() {
	d.mu.Lock()
	d.written = false
	d.mu.Unlock()
}
