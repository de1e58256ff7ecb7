package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for package writing.
var (
	ErrInvalidTable = errors.New("ooxml: table must have at least one column")
	ErrInvalidPage  = errors.New("ooxml: page dimensions must be positive")
	ErrUnknownBlock = errors.New("ooxml: unknown body element")
)

const (
	nsW       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsCP      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsDCTerms = "http://purl.org/dc/terms/"
	nsXSI     = "http://www.w3.org/2001/XMLSchema-instance"
)

// ---------------------------------------------------------------------------
// Writer
// ---------------------------------------------------------------------------

// WriteTo writes the package as a .docx archive to w.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := p.write(cw); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func (p *Package) write(w io.Writer) error {
	if p.Page.Width <= 0 || p.Page.Height <= 0 || p.Page.Margin < 0 {
		return ErrInvalidPage
	}

	document, err := p.documentXML()
	if err != nil {
		return err
	}
	core, err := p.coreXML()
	if err != nil {
		return err
	}

	modified := p.Properties.Created
	if modified.IsZero() {
		modified = time.Now()
	}

	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"docProps/core.xml", core},
		{"docProps/app.xml", []byte(appXML)},
		{"word/document.xml", document},
		{"word/styles.xml", []byte(stylesXML(p.Font, p.FontSize))},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("ooxml: creating %s: %w", part.name, err)
		}
		if _, err := fw.Write(part.data); err != nil {
			return fmt.Errorf("ooxml: writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("ooxml: closing archive: %w", err)
	}
	return nil
}

func (p *Package) documentXML() ([]byte, error) {
	body := xBody{SectPr: p.Page.sectPr()}
	textWidth := p.Page.textWidth()

	for _, el := range p.Body {
		switch v := el.(type) {
		case *Paragraph:
			body.Elements = append(body.Elements, v.xml())
		case *Table:
			tbl, err := v.xml(textWidth)
			if err != nil {
				return nil, err
			}
			body.Elements = append(body.Elements, tbl)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownBlock, el)
		}
	}

	doc := xDocument{W: nsW, R: nsR, Body: body}
	return marshalPart(doc)
}

func (p *Package) coreXML() ([]byte, error) {
	created := p.Properties.Created.UTC().Format(time.RFC3339)
	core := xCoreProperties{
		CP:         nsCP,
		DC:         nsDC,
		DCTerms:    nsDCTerms,
		XSI:        nsXSI,
		Title:      p.Properties.Title,
		Creator:    p.Properties.Creator,
		Identifier: p.Properties.Identifier,
		Language:   p.Properties.Language,
		Created:    xW3CDate{Type: "dcterms:W3CDTF", Value: created},
		Modified:   xW3CDate{Type: "dcterms:W3CDTF", Value: created},
	}
	return marshalPart(core)
}

func marshalPart(v any) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	enc := xml.NewEncoder(&sb)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("ooxml: encoding part: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("ooxml: encoding part: %w", err)
	}
	return []byte(sb.String()), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// ---------------------------------------------------------------------------
// Conversion to XML structures
// ---------------------------------------------------------------------------

func (p *Paragraph) xml() xParagraph {
	out := xParagraph{}

	var ppr xPPr
	if p.Style != "" {
		ppr.PStyle = &xVal{Val: p.Style}
	}
	if p.SpaceAfter != nil {
		ppr.Spacing = &xSpacing{After: strconv.Itoa(*p.SpaceAfter)}
	}
	if p.Align != "" {
		ppr.Jc = &xVal{Val: p.Align}
	}
	if ppr != (xPPr{}) {
		out.PPr = &ppr
	}

	for _, r := range p.Runs {
		out.Runs = append(out.Runs, r.xml())
	}
	return out
}

func (r Run) xml() xRun {
	out := xRun{Text: r.Text}

	var rpr xRPr
	if r.Bold {
		rpr.B = &xEmpty{}
	}
	if r.Color != "" {
		rpr.Color = &xVal{Val: strings.TrimPrefix(r.Color, "#")}
	}
	if r.Size > 0 {
		size := strconv.Itoa(r.Size)
		rpr.Sz = &xVal{Val: size}
		rpr.SzCs = &xVal{Val: size}
	}
	if r.Highlight != "" {
		rpr.Highlight = &xVal{Val: r.Highlight}
	}
	if rpr != (xRPr{}) {
		out.RPr = &rpr
	}
	return out
}

func (t *Table) xml(textWidth int) (xTable, error) {
	if t.Columns < 1 {
		return xTable{}, ErrInvalidTable
	}
	colWidth := textWidth / t.Columns

	out := xTable{
		TblPr: xTblPr{Width: xWidth{W: "0", Type: "auto"}},
	}
	if t.Style != "" {
		out.TblPr.Style = &xVal{Val: t.Style}
	}
	for range t.Columns {
		out.Grid.Cols = append(out.Grid.Cols, xGridCol{W: strconv.Itoa(colWidth)})
	}

	for _, row := range t.Rows {
		xr := xRow{}
		for i := range t.Columns {
			cell := xCell{TcPr: xTcPr{Width: xWidth{W: strconv.Itoa(colWidth), Type: "dxa"}}}
			if i < len(row) {
				for j := range row[i].Paragraphs {
					cell.Paragraphs = append(cell.Paragraphs, row[i].Paragraphs[j].xml())
				}
			}
			if len(cell.Paragraphs) == 0 {
				cell.Paragraphs = []xParagraph{{}}
			}
			xr.Cells = append(xr.Cells, cell)
		}
		out.Rows = append(out.Rows, xr)
	}
	return out, nil
}

func (ps PageSetup) sectPr() xSectPr {
	w, h := ps.Width, ps.Height
	size := xPgSz{W: w, H: h}
	if ps.Landscape {
		size = xPgSz{W: h, H: w, Orient: "landscape"}
	}
	return xSectPr{
		PgSz: size,
		PgMar: xPgMar{
			Top: ps.Margin, Right: ps.Margin, Bottom: ps.Margin, Left: ps.Margin,
			Header: 708, Footer: 708,
		},
	}
}

func (ps PageSetup) textWidth() int {
	w := ps.Width
	if ps.Landscape {
		w = ps.Height
	}
	if tw := w - 2*ps.Margin; tw > 0 {
		return tw
	}
	return w
}

// ---------------------------------------------------------------------------
// WordprocessingML structures
// ---------------------------------------------------------------------------

type xDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xBody    `xml:"w:body"`
}

// xBody keeps paragraphs and tables in document order, followed by the
// section properties.
type xBody struct {
	Elements []any
	SectPr   xSectPr
}

func (b xBody) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, el := range b.Elements {
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	if err := e.Encode(b.SectPr); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

type xParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *xPPr    `xml:"w:pPr,omitempty"`
	Runs    []xRun   `xml:"w:r"`
}

type xPPr struct {
	PStyle  *xVal     `xml:"w:pStyle,omitempty"`
	Spacing *xSpacing `xml:"w:spacing,omitempty"`
	Jc      *xVal     `xml:"w:jc,omitempty"`
}

type xVal struct {
	Val string `xml:"w:val,attr"`
}

type xSpacing struct {
	After string `xml:"w:after,attr"`
}

type xEmpty struct{}

// xRun writes its text as alternating w:t and w:br elements.
type xRun struct {
	RPr  *xRPr
	Text string
}

type xRPr struct {
	XMLName   xml.Name `xml:"w:rPr"`
	B         *xEmpty  `xml:"w:b,omitempty"`
	Color     *xVal    `xml:"w:color,omitempty"`
	Sz        *xVal    `xml:"w:sz,omitempty"`
	SzCs      *xVal    `xml:"w:szCs,omitempty"`
	Highlight *xVal    `xml:"w:highlight,omitempty"`
}

type xText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type xBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

func (r xRun) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.RPr != nil {
		if err := e.Encode(r.RPr); err != nil {
			return err
		}
	}
	for i, line := range strings.Split(r.Text, "\n") {
		if i > 0 {
			if err := e.Encode(xBreak{}); err != nil {
				return err
			}
		}
		if line == "" {
			continue
		}
		t := xText{Value: line}
		if strings.TrimSpace(line) != line {
			t.Space = "preserve"
		}
		if err := e.Encode(t); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type xTable struct {
	XMLName xml.Name `xml:"w:tbl"`
	TblPr   xTblPr   `xml:"w:tblPr"`
	Grid    xTblGrid `xml:"w:tblGrid"`
	Rows    []xRow   `xml:"w:tr"`
}

type xTblPr struct {
	Style *xVal  `xml:"w:tblStyle,omitempty"`
	Width xWidth `xml:"w:tblW"`
}

type xWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type xTblGrid struct {
	Cols []xGridCol `xml:"w:gridCol"`
}

type xGridCol struct {
	W string `xml:"w:w,attr"`
}

type xRow struct {
	Cells []xCell `xml:"w:tc"`
}

type xCell struct {
	TcPr       xTcPr        `xml:"w:tcPr"`
	Paragraphs []xParagraph `xml:"w:p"`
}

type xTcPr struct {
	Width xWidth `xml:"w:tcW"`
}

type xSectPr struct {
	XMLName xml.Name `xml:"w:sectPr"`
	PgSz    xPgSz    `xml:"w:pgSz"`
	PgMar   xPgMar   `xml:"w:pgMar"`
}

type xPgSz struct {
	W      int    `xml:"w:w,attr"`
	H      int    `xml:"w:h,attr"`
	Orient string `xml:"w:orient,attr,omitempty"`
}

type xPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xCoreProperties struct {
	XMLName    xml.Name `xml:"cp:coreProperties"`
	CP         string   `xml:"xmlns:cp,attr"`
	DC         string   `xml:"xmlns:dc,attr"`
	DCTerms    string   `xml:"xmlns:dcterms,attr"`
	XSI        string   `xml:"xmlns:xsi,attr"`
	Title      string   `xml:"dc:title,omitempty"`
	Creator    string   `xml:"dc:creator,omitempty"`
	Identifier string   `xml:"dc:identifier,omitempty"`
	Language   string   `xml:"dc:language,omitempty"`
	Created    xW3CDate `xml:"dcterms:created"`
	Modified   xW3CDate `xml:"dcterms:modified"`
}

type xW3CDate struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}
