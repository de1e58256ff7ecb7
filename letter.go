package csv2docx

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-csv2docx/internal/dateutil"
)

// DefaultCity prefixes the letter date line.
const DefaultCity = "Nice"

// LetterSettings configures BuildCoverLetter.
type LetterSettings struct {
	Styles     Styles    // zero value uses DefaultStyles
	City       string    // empty uses DefaultCity
	DateFormat string    // dateutil format for the default date, empty uses dateutil.DefaultFormat
	Now        time.Time // zero uses time.Now
}

func (s LetterSettings) withDefaults() LetterSettings {
	if s.Styles == (Styles{}) {
		s.Styles = DefaultStyles()
	}
	if strings.TrimSpace(s.City) == "" {
		s.City = DefaultCity
	}
	if s.DateFormat == "" {
		s.DateFormat = dateutil.DefaultFormat
	}
	if s.Now.IsZero() {
		s.Now = time.Now()
	}
	return s
}

// BuildCoverLetter lays out a cover letter. Blocks follow a fixed order:
// sender, two spacers, recipient, spacer, date, subject, salutation, body,
// closing formula, signature. Each block except the spacers and the date is
// emitted only when its label is present; the date falls back to today.
func BuildCoverLetter(fields LetterFields, settings LetterSettings) (*Document, error) {
	set := settings.withDefaults()
	st := set.Styles

	date, err := letterDate(fields, set)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	add := func(label LetterLabel, build func(string) Block) {
		if v, ok := fields.Get(label); ok {
			blocks = append(blocks, build(v))
		}
	}
	left := func(v string) Block { return textParagraph(v, AlignLeft, st.ParagraphSpacing, st) }

	add(LabelSender, left)
	blocks = append(blocks, spacer(), spacer())
	add(LabelRecipient, left)
	blocks = append(blocks, spacer())
	blocks = append(blocks, textParagraph(set.City+", le "+date, AlignLeft, st.ParagraphSpacing, st))
	add(LabelSubject, func(v string) Block {
		return &Paragraph{
			Runs: []Run{{
				Text:      "Objet : " + v,
				Bold:      true,
				FontSize:  st.SubjectSize,
				Color:     st.TextColor,
				Highlight: st.SubjectHighlight,
			}},
			Alignment:  AlignCenter,
			SpaceAfter: st.ParagraphSpacing,
		}
	})
	add(LabelSalutation, left)
	add(LabelBody, func(v string) Block {
		return textParagraph(expandLineBreaks(v), AlignJustify, st.ParagraphSpacing, st)
	})
	add(LabelClosing, left)
	add(LabelSignature, left)

	doc := NewDocument(KindCoverLetter, "Lettre de motivation")
	doc.FontFamily, doc.FontSize = st.FontFamily, st.BodySize
	doc.blocks = blocks
	return doc, nil
}

// letterDate returns the Date field, or today's date when it is absent or blank.
// A Date of "auto" or "auto:FORMAT" also renders today, in that format.
func letterDate(fields LetterFields, set LetterSettings) (string, error) {
	if v, ok := fields.Get(LabelDate); ok && strings.TrimSpace(v) != "" {
		lower := strings.ToLower(v)
		if lower != "auto" && !strings.HasPrefix(lower, "auto:") {
			return v, nil
		}
		if lower == "auto" {
			v = "auto:" + set.DateFormat
		}
		today, err := dateutil.ResolveDate(v, set.Now)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
		}
		return today, nil
	}
	today, err := dateutil.Format(set.Now, set.DateFormat)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}
	return today, nil
}

// expandLineBreaks turns the two-character sequence \n into a real newline.
func expandLineBreaks(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

func textParagraph(text string, align Alignment, spaceAfter Pt, st Styles) *Paragraph {
	return &Paragraph{
		Runs:       []Run{{Text: text, FontSize: st.BodySize, Color: st.TextColor}},
		Alignment:  align,
		SpaceAfter: spaceAfter,
	}
}

func spacer() *Paragraph {
	return &Paragraph{}
}
