// Package csv2docx generates French cover letters and CVs as .docx files
// from section-tagged CSV or XLSX sources.
//
// # Quick Start
//
//	gen, err := csv2docx.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = gen.GenerateCV(ctx, "cv.csv", "cv.docx", csv2docx.VariantAccompli)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Every generation runs the same stages:
//
//  1. Read rows from the source (ReadRows) and normalize their values
//     (NormalizeValue: trimmed, one layer of double quotes removed).
//  2. Classify rows: CV rows by their section field (ClassifyCV), letter
//     rows by their title label (ClassifyLetter, last write wins).
//  3. Lay out an ordered, append-only Document of headings, paragraphs and
//     tables (BuildCoverLetter, BuildCV).
//  4. Hand the Document to a Sink, once. DocxSink writes Office Open XML.
//
// # Source Format
//
// A cover letter source has title and content columns, one row per label:
//
//	title,content
//	Expéditeur,Jane Doe
//	Objet,Candidature
//	Corps,Bonjour\nCordialement
//
// The two characters \n in a body become line breaks.
//
// A CV source has section, title, subtitle, description, start_date and
// end_date columns. Sections are personal, title, objectives, experience,
// education and skills; other sections are ignored.
//
// # Configuration
//
// Functional options customize the generator:
//
//	gen, err := csv2docx.NewGenerator(
//	    csv2docx.WithCity("Lyon"),
//	    csv2docx.WithSkillsLayout(csv2docx.SkillsTable, 3),
//	    csv2docx.WithPage(&csv2docx.PageSettings{Size: "letter", Orientation: "portrait", Margin: 0.75}),
//	)
//
// All font sizes, colors and spacing live in Styles, passed explicitly to
// both layout builders.
package csv2docx
