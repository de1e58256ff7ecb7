package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for package reading.
var (
	ErrNotDocx      = errors.New("ooxml: not a docx package")
	ErrMissingPart  = errors.New("ooxml: missing package part")
	ErrPartTooLarge = errors.New("ooxml: package part too large")
)

// maxPartSize bounds decompressed part reads.
const maxPartSize = 64 << 20

// Contents is what Read extracts from a .docx: body elements in document
// order and the core properties.
type Contents struct {
	Properties CoreProperties
	Page       PageSetup
	Body       []Element
}

// Paragraphs returns the top-level paragraphs, skipping tables.
func (c *Contents) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, el := range c.Body {
		if p, ok := el.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns the tables in document order.
func (c *Contents) Tables() []*Table {
	var out []*Table
	for _, el := range c.Body {
		if t, ok := el.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Text returns the concatenated run text of a paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Text returns the cell paragraphs joined by newlines.
func (c Cell) Text() string {
	lines := make([]string, 0, len(c.Paragraphs))
	for i := range c.Paragraphs {
		lines = append(lines, c.Paragraphs[i].Text())
	}
	return strings.Join(lines, "\n")
}

// ReadFile opens and reads a .docx file.
func ReadFile(path string) (*Contents, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrNotDocx, path)
		}
		return nil, err
	}
	defer func() { _ = zr.Close() }()
	return readArchive(&zr.Reader)
}

// Read reads a .docx package from r.
func Read(r io.ReaderAt, size int64) (*Contents, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotDocx, err)
	}
	return readArchive(zr)
}

// ReadBytes reads a .docx package held in memory.
func ReadBytes(data []byte) (*Contents, error) {
	return Read(bytes.NewReader(data), int64(len(data)))
}

func readArchive(zr *zip.Reader) (*Contents, error) {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	docFile, ok := files["word/document.xml"]
	if !ok {
		return nil, fmt.Errorf("%w: word/document.xml", ErrMissingPart)
	}
	data, err := readPart(docFile)
	if err != nil {
		return nil, err
	}

	contents := &Contents{}
	if err := parseDocument(data, contents); err != nil {
		return nil, err
	}

	if coreFile, ok := files["docProps/core.xml"]; ok {
		data, err := readPart(coreFile)
		if err != nil {
			return nil, err
		}
		props, err := parseCore(data)
		if err != nil {
			return nil, err
		}
		contents.Properties = props
	}

	return contents, nil
}

func readPart(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > maxPartSize {
		return nil, fmt.Errorf("%w: %s", ErrPartTooLarge, f.Name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("ooxml: opening %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("ooxml: reading %s: %w", f.Name, err)
	}
	if len(data) > maxPartSize {
		return nil, fmt.Errorf("%w: %s", ErrPartTooLarge, f.Name)
	}
	return data, nil
}

// parseDocument walks the direct children of w:body so paragraphs and
// tables keep their relative order.
func parseDocument(data []byte, contents *Contents) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	inBody := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ooxml: parsing document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !inBody {
				if t.Name.Local == "body" {
					inBody = true
				}
				continue
			}
			switch t.Name.Local {
			case "p":
				var rp rParagraph
				if err := dec.DecodeElement(&rp, &t); err != nil {
					return fmt.Errorf("ooxml: parsing paragraph: %w", err)
				}
				p := rp.paragraph()
				contents.Body = append(contents.Body, &p)
			case "tbl":
				var rt rTable
				if err := dec.DecodeElement(&rt, &t); err != nil {
					return fmt.Errorf("ooxml: parsing table: %w", err)
				}
				contents.Body = append(contents.Body, rt.table())
			case "sectPr":
				var rs rSectPr
				if err := dec.DecodeElement(&rs, &t); err != nil {
					return fmt.Errorf("ooxml: parsing section: %w", err)
				}
				contents.Page = rs.page()
			default:
				if err := dec.Skip(); err != nil {
					return fmt.Errorf("ooxml: parsing document.xml: %w", err)
				}
			}
		case xml.EndElement:
			if inBody && t.Name.Local == "body" {
				return nil
			}
		}
	}
}

func parseCore(data []byte) (CoreProperties, error) {
	var rc rCore
	if err := xml.Unmarshal(data, &rc); err != nil {
		return CoreProperties{}, fmt.Errorf("ooxml: parsing core.xml: %w", err)
	}
	props := CoreProperties{
		Title:      rc.Title,
		Creator:    rc.Creator,
		Identifier: rc.Identifier,
		Language:   rc.Language,
	}
	if rc.Created != "" {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(rc.Created)); err == nil {
			props.Created = t
		}
	}
	return props, nil
}

// ---------------------------------------------------------------------------
// Reading structures (matched by local name, any prefix)
// ---------------------------------------------------------------------------

type rVal struct {
	Val string `xml:"val,attr"`
}

type rParagraph struct {
	PPr struct {
		PStyle  rVal `xml:"pStyle"`
		Jc      rVal `xml:"jc"`
		Spacing *struct {
			After string `xml:"after,attr"`
		} `xml:"spacing"`
	} `xml:"pPr"`
	Runs []rRun `xml:"r"`
}

type rRun struct {
	RPr struct {
		B         *rToggle `xml:"b"`
		Color     rVal     `xml:"color"`
		Sz        rVal     `xml:"sz"`
		Highlight rVal     `xml:"highlight"`
	} `xml:"rPr"`
	Content []rRunChild `xml:",any"`
}

type rToggle struct {
	Val string `xml:"val,attr"`
}

type rRunChild struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

type rTable struct {
	TblPr struct {
		Style rVal `xml:"tblStyle"`
	} `xml:"tblPr"`
	Grid struct {
		Cols []struct{} `xml:"gridCol"`
	} `xml:"tblGrid"`
	Rows []struct {
		Cells []struct {
			Paragraphs []rParagraph `xml:"p"`
		} `xml:"tc"`
	} `xml:"tr"`
}

type rSectPr struct {
	PgSz struct {
		W      int    `xml:"w,attr"`
		H      int    `xml:"h,attr"`
		Orient string `xml:"orient,attr"`
	} `xml:"pgSz"`
	PgMar struct {
		Top int `xml:"top,attr"`
	} `xml:"pgMar"`
}

type rCore struct {
	Title      string `xml:"title"`
	Creator    string `xml:"creator"`
	Identifier string `xml:"identifier"`
	Language   string `xml:"language"`
	Created    string `xml:"created"`
}

func (rp rParagraph) paragraph() Paragraph {
	p := Paragraph{
		Style: rp.PPr.PStyle.Val,
		Align: rp.PPr.Jc.Val,
	}
	if rp.PPr.Spacing != nil && rp.PPr.Spacing.After != "" {
		if n, err := strconv.Atoi(rp.PPr.Spacing.After); err == nil {
			p.SpaceAfter = &n
		}
	}
	for _, rr := range rp.Runs {
		p.Runs = append(p.Runs, rr.run())
	}
	return p
}

func (rr rRun) run() Run {
	r := Run{
		Color:     rr.RPr.Color.Val,
		Highlight: rr.RPr.Highlight.Val,
	}
	if rr.RPr.B != nil {
		r.Bold = rr.RPr.B.Val == "" || rr.RPr.B.Val == "1" || rr.RPr.B.Val == "true"
	}
	if n, err := strconv.Atoi(rr.RPr.Sz.Val); err == nil {
		r.Size = n
	}

	var sb strings.Builder
	for _, c := range rr.Content {
		switch c.XMLName.Local {
		case "t":
			sb.WriteString(c.Text)
		case "br", "cr":
			sb.WriteByte('\n')
		case "tab":
			sb.WriteByte('\t')
		}
	}
	r.Text = sb.String()
	return r
}

func (rt rTable) table() *Table {
	t := &Table{Style: rt.TblPr.Style.Val, Columns: len(rt.Grid.Cols)}
	for _, row := range rt.Rows {
		cells := make([]Cell, 0, len(row.Cells))
		for _, c := range row.Cells {
			cell := Cell{}
			for _, rp := range c.Paragraphs {
				cell.Paragraphs = append(cell.Paragraphs, rp.paragraph())
			}
			cells = append(cells, cell)
		}
		if len(cells) > t.Columns {
			t.Columns = len(cells)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func (rs rSectPr) page() PageSetup {
	ps := PageSetup{
		Width:  rs.PgSz.W,
		Height: rs.PgSz.H,
		Margin: rs.PgMar.Top,
	}
	if rs.PgSz.Orient == "landscape" {
		ps.Landscape = true
		ps.Width, ps.Height = ps.Height, ps.Width
	}
	return ps
}
