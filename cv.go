package csv2docx

import (
	"fmt"
	"strings"

	"github.com/alnah/go-csv2docx/internal/ooxml"
)

// CV section headings.
const (
	HeadingExperience = "Expériences professionnelles"
	HeadingEducation  = "Formation"
	HeadingSkills     = "Compétences"
)

// SkillsLayout selects how skills are rendered.
type SkillsLayout string

// Skills layouts.
const (
	SkillsList  SkillsLayout = "list"
	SkillsTable SkillsLayout = "table"
)

// DefaultSkillsColumns is the table width when none is set.
const DefaultSkillsColumns = 2

// CVSettings configures BuildCV.
type CVSettings struct {
	Styles        Styles // zero value uses DefaultStyles
	Variant       Variant
	SkillsLayout  SkillsLayout // empty uses SkillsList
	SkillsColumns int          // table layout only, 0 uses DefaultSkillsColumns
}

func (s CVSettings) withDefaults() (CVSettings, error) {
	if s.Styles == (Styles{}) {
		s.Styles = DefaultStyles()
	}
	if s.Variant == "" {
		s.Variant = DefaultVariant
	}
	switch SkillsLayout(strings.ToLower(string(s.SkillsLayout))) {
	case "", SkillsList:
		s.SkillsLayout = SkillsList
	case SkillsTable:
		s.SkillsLayout = SkillsTable
	default:
		return s, fmt.Errorf("%w: %q", ErrInvalidSkills, s.SkillsLayout)
	}
	if s.SkillsColumns == 0 {
		s.SkillsColumns = DefaultSkillsColumns
	}
	if s.SkillsColumns < 0 {
		return s, fmt.Errorf("%w: %d columns", ErrInvalidSkills, s.SkillsColumns)
	}
	return s, nil
}

// entryKind distinguishes experience entries, which carry a duration, from
// education entries.
type entryKind int

const (
	entryEducation entryKind = iota
	entryExperience
)

// BuildCV lays out a CV: personal lines, title heading, objective (debutant
// only), experience and education in variant order, then skills. Empty
// sections produce no blocks.
func BuildCV(sections CVSections, settings CVSettings) (*Document, error) {
	set, err := settings.withDefaults()
	if err != nil {
		return nil, err
	}
	st := set.Styles

	var blocks []Block

	for _, row := range sections.Personal {
		blocks = append(blocks, textParagraph(personalText(row), AlignLeft, st.PersonalSpacing, st))
	}

	if sections.Title != "" {
		blocks = append(blocks, &Heading{
			Text:      sections.Title,
			Level:     1,
			FontSize:  st.TitleSize,
			Color:     st.HeadingColor,
			Alignment: AlignCenter,
		})
	}

	if strings.EqualFold(string(set.Variant), string(VariantDebutant)) && len(sections.Objectives) > 0 {
		if text := strings.TrimSpace(sections.Objectives[0].Get(FieldDescription)); text != "" {
			p := textParagraph(text, AlignCenter, st.ParagraphSpacing, st)
			p.Runs[0].Bold = true
			blocks = append(blocks, p)
		}
	}

	experience := entrySection(HeadingExperience, sections.Experience, entryExperience, st)
	education := entrySection(HeadingEducation, sections.Education, entryEducation, st)
	if strings.EqualFold(string(set.Variant), string(VariantAccompli)) {
		blocks = append(blocks, experience...)
		blocks = append(blocks, education...)
	} else {
		blocks = append(blocks, education...)
		blocks = append(blocks, experience...)
	}

	blocks = append(blocks, skillsSection(sections.Skills, set)...)

	title := sections.Title
	if title == "" {
		title = "CV"
	}
	doc := NewDocument(KindCV, title)
	doc.FontFamily, doc.FontSize = st.FontFamily, st.BodySize
	doc.blocks = blocks
	return doc, nil
}

// personalText picks the first non-empty of description, content and
// subtitle, prefixed with "Tel: " for the Tel row.
func personalText(row Row) string {
	var text string
	for _, f := range []string{FieldDescription, FieldContent, FieldSubtitle} {
		if v := row.Get(f); v != "" {
			text = v
			break
		}
	}
	if row.Get(FieldTitle) == "Tel" {
		return "Tel: " + text
	}
	return text
}

func sectionHeading(text string, st Styles) *Heading {
	return &Heading{
		Text:      text,
		Level:     2,
		FontSize:  st.SectionSize,
		Color:     st.HeadingColor,
		Alignment: AlignCenter,
	}
}

func entrySection(heading string, rows []Row, kind entryKind, st Styles) []Block {
	if len(rows) == 0 {
		return nil
	}
	blocks := []Block{sectionHeading(heading, st)}
	for _, row := range rows {
		blocks = append(blocks, &Paragraph{
			Runs: []Run{{
				Text:     row.Get(FieldTitle) + " - " + row.Get(FieldSubtitle) + dateSuffix(row, kind),
				Bold:     true,
				FontSize: st.EntrySize,
				Color:    st.TextColor,
			}},
			Alignment:  AlignLeft,
			SpaceAfter: st.EntrySpacing,
		})
		if desc := row.Get(FieldDescription); desc != "" {
			blocks = append(blocks, textParagraph(desc, AlignJustify, st.DescriptionSpacing, st))
		}
	}
	return blocks
}

// dateSuffix renders " (start - end, N ans)", " (start)" or "".
func dateSuffix(row Row, kind entryKind) string {
	start, end := row.Get(FieldStartDate), row.Get(FieldEndDate)
	switch {
	case start != "" && end != "":
		duration := ""
		if kind == entryExperience {
			duration = ComputeDuration(start, end)
		}
		return " (" + start + " - " + end + duration + ")"
	case start != "":
		return " (" + start + ")"
	default:
		return ""
	}
}

func skillsSection(rows []Row, set CVSettings) []Block {
	if len(rows) == 0 {
		return nil
	}
	st := set.Styles
	blocks := []Block{sectionHeading(HeadingSkills, st)}

	if set.SkillsLayout == SkillsTable {
		cells := make([]string, len(rows))
		for i, row := range rows {
			cells[i] = row.Get(FieldTitle) + ": " + row.Get(FieldDescription)
		}
		return append(blocks, &Table{
			Style:    ooxml.StyleTableGrid,
			Columns:  set.SkillsColumns,
			Cells:    cells,
			FontSize: st.BodySize,
			Color:    st.TextColor,
		})
	}

	for _, row := range rows {
		text := "- " + row.Get(FieldTitle) + ": " + row.Get(FieldDescription)
		blocks = append(blocks, textParagraph(text, AlignLeft, st.SkillSpacing, st))
	}
	return blocks
}
