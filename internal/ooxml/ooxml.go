// Package ooxml writes and reads the WordprocessingML subset csv2docx
// produces: paragraphs (optionally styled as headings) made of formatted
// runs, grid tables, page setup and core document properties.
//
// A .docx file is a ZIP archive of XML parts:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/_rels/document.xml.rels
//
// Measurements follow the file format: font sizes in half-points, spacing
// and page dimensions in twentieths of a point (twips).
package ooxml

import (
	"math"
	"time"
)

// Paragraph alignment values (w:jc).
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "both"
)

// Built-in style identifiers declared in styles.xml.
const (
	StyleHeading1  = "Heading1"
	StyleHeading2  = "Heading2"
	StyleTableGrid = "TableGrid"
)

// Element is a block-level body element: *Paragraph or *Table.
type Element interface {
	element()
}

// Paragraph is a w:p element.
type Paragraph struct {
	Style      string // paragraph style ID, empty for Normal
	Align      string // one of the Align* constants, empty to inherit
	SpaceAfter *int   // twips, nil to inherit
	Runs       []Run
}

// Run is a w:r element. Newlines in Text become line breaks.
type Run struct {
	Text      string
	Bold      bool
	Size      int    // half-points, 0 to inherit
	Color     string // RRGGBB, empty to inherit
	Highlight string // highlight color name (yellow, green, ...), empty for none
}

// Table is a w:tbl element with equal-width columns.
type Table struct {
	Style   string
	Columns int
	Rows    [][]Cell
}

// Cell is a w:tc element. An empty cell still receives one empty paragraph.
type Cell struct {
	Paragraphs []Paragraph
}

func (*Paragraph) element() {}
func (*Table) element()     {}

// PageSetup describes w:sectPr.
type PageSetup struct {
	Width     int // twips
	Height    int // twips
	Landscape bool
	Margin    int // twips, applied to all sides
}

// CoreProperties is the docProps/core.xml metadata.
type CoreProperties struct {
	Title      string
	Creator    string
	Identifier string
	Language   string
	Created    time.Time
}

// Package is a complete document ready to be written.
type Package struct {
	Properties CoreProperties
	Font       string // default font family
	FontSize   int    // default size in half-points
	Page       PageSetup
	Body       []Element
}

// Standard page sizes in twips (portrait).
var (
	PageA4     = PageSetup{Width: 11906, Height: 16838, Margin: 1440}
	PageLetter = PageSetup{Width: 12240, Height: 15840, Margin: 1440}
	PageLegal  = PageSetup{Width: 12240, Height: 20160, Margin: 1440}
)

// Twips converts points to twentieths of a point.
func Twips(pt float64) int {
	return int(math.Round(pt * 20))
}

// HalfPoints converts points to half-points.
func HalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}

// TwipsFromInches converts inches to twentieths of a point.
func TwipsFromInches(in float64) int {
	return int(math.Round(in * 1440))
}
