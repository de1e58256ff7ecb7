package csv2docx

// Notes:
// - BuildCV: block order per variant, section omission, entry lines
// - skills: list and table layouts
// - dateSuffix: duration applies to experience entries only

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-csv2docx/internal/ooxml"
)

func sampleSections() CVSections {
	return CVSections{
		Personal: []Row{
			{"title": "Nom", "description": "Marie Martin"},
			{"title": "Tel", "content": "06 12 34 56 78"},
			{"title": "Ville", "subtitle": "Nice"},
		},
		Experience: []Row{
			{"title": "Développeuse", "subtitle": "ACME", "start_date": "2019", "end_date": "2021", "description": "API Go"},
		},
		Education: []Row{
			{"title": "Master", "subtitle": "Université", "start_date": "2015", "end_date": "2017"},
		},
		Skills: []Row{
			{"title": "Langues", "description": "Français, Anglais"},
			{"title": "Go", "description": "Avancé"},
			{"title": "SQL", "description": "Intermédiaire"},
		},
		Objectives: []Row{
			{"description": "Rejoindre une équipe produit"},
			{"description": "ignored"},
		},
		Title: "Développeuse Backend",
	}
}

// ---------------------------------------------------------------------------
// TestBuildCV - Variant ordering
// ---------------------------------------------------------------------------

func TestBuildCV_Variants(t *testing.T) {
	t.Parallel()

	personal := []string{"Marie Martin", "Tel: 06 12 34 56 78", "Nice", "Développeuse Backend"}
	education := []string{HeadingEducation, "Master - Université (2015 - 2017)"}
	experience := []string{HeadingExperience, "Développeuse - ACME (2019 - 2021, 2 ans)", "API Go"}
	skills := []string{HeadingSkills, "- Langues: Français, Anglais", "- Go: Avancé", "- SQL: Intermédiaire"}

	concat := func(parts ...[]string) []string {
		var out []string
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}

	tests := []struct {
		name    string
		variant Variant
		want    []string
	}{
		{
			name:    "debutant",
			variant: VariantDebutant,
			want:    concat(personal, []string{"Rejoindre une équipe produit"}, education, experience, skills),
		},
		{
			name:    "accompli",
			variant: VariantAccompli,
			want:    concat(personal, experience, education, skills),
		},
		{
			name:    "accompli is case-insensitive",
			variant: "ACCOMPLI",
			want:    concat(personal, experience, education, skills),
		},
		{
			name:    "unknown variant is not accompli and has no objective",
			variant: "senior",
			want:    concat(personal, education, experience, skills),
		},
		{
			name:    "empty variant defaults to debutant",
			variant: "",
			want:    concat(personal, []string{"Rejoindre une équipe produit"}, education, experience, skills),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := BuildCV(sampleSections(), CVSettings{Variant: tt.variant})
			if err != nil {
				t.Fatalf("BuildCV() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, blockTexts(doc)); diff != "" {
				t.Errorf("blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildCV_Formatting(t *testing.T) {
	t.Parallel()

	st := DefaultStyles()
	doc, err := BuildCV(sampleSections(), CVSettings{Styles: st, Variant: VariantDebutant})
	if err != nil {
		t.Fatalf("BuildCV() error = %v", err)
	}
	blocks := doc.Blocks()

	title, ok := blocks[3].(*Heading)
	if !ok {
		t.Fatalf("block 3 = %T, want *Heading", blocks[3])
	}
	if title.Level != 1 || title.FontSize != st.TitleSize || title.Alignment != AlignCenter {
		t.Errorf("title = %+v", title)
	}

	objective := blocks[4].(*Paragraph)
	if !objective.Bold() || objective.Alignment != AlignCenter {
		t.Errorf("objective = %+v, want centered bold", objective)
	}

	section := blocks[5].(*Heading)
	if section.Level != 2 || section.FontSize != st.SectionSize {
		t.Errorf("section heading = %+v", section)
	}

	entry := blocks[6].(*Paragraph)
	if !entry.Bold() || entry.Runs[0].FontSize != st.EntrySize {
		t.Errorf("entry line = %+v, want bold %vpt", entry, st.EntrySize)
	}

	description := blocks[9].(*Paragraph)
	if description.Alignment != AlignJustify || description.SpaceAfter != st.DescriptionSpacing {
		t.Errorf("description = %+v, want justified", description)
	}

	if doc.Kind != KindCV || doc.Title != "Développeuse Backend" || doc.FontFamily != st.FontFamily {
		t.Errorf("document = kind %q title %q font %q", doc.Kind, doc.Title, doc.FontFamily)
	}
}

// ---------------------------------------------------------------------------
// TestBuildCV - Omission
// ---------------------------------------------------------------------------

func TestBuildCV_EmptySections(t *testing.T) {
	t.Parallel()

	doc, err := BuildCV(CVSections{}, CVSettings{})
	if err != nil {
		t.Fatalf("BuildCV() error = %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0: %q", doc.Len(), blockTexts(doc))
	}
	if doc.Title != "CV" {
		t.Errorf("Title = %q, want CV", doc.Title)
	}
}

func TestBuildCV_SkillsOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	s := sampleSections()
	s.Skills = nil
	doc, err := BuildCV(s, CVSettings{Variant: VariantAccompli})
	if err != nil {
		t.Fatalf("BuildCV() error = %v", err)
	}
	for _, text := range blockTexts(doc) {
		if text == HeadingSkills {
			t.Fatal("skills heading emitted for empty bucket")
		}
	}
}

func TestBuildCV_BlankObjectiveOmitted(t *testing.T) {
	t.Parallel()

	doc, err := BuildCV(CVSections{Objectives: []Row{{"description": ""}}}, CVSettings{})
	if err != nil {
		t.Fatalf("BuildCV() error = %v", err)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}
}

func TestPersonalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  Row
		want string
	}{
		{"description first", Row{"description": "a", "content": "b", "subtitle": "c"}, "a"},
		{"content second", Row{"content": "b", "subtitle": "c"}, "b"},
		{"subtitle last", Row{"subtitle": "c"}, "c"},
		{"empty description skipped", Row{"description": "", "content": "b"}, "b"},
		{"tel prefix", Row{"title": "Tel", "description": "0600"}, "Tel: 0600"},
		{"tel is case-sensitive", Row{"title": "tel", "description": "0600"}, "0600"},
		{"nothing", Row{"title": "Email"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := personalText(tt.row); got != tt.want {
				t.Errorf("personalText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  Row
		kind entryKind
		want string
	}{
		{"experience with duration", Row{"start_date": "2019", "end_date": "2021"}, entryExperience, " (2019 - 2021, 2 ans)"},
		{"education has no duration", Row{"start_date": "2019", "end_date": "2021"}, entryEducation, " (2019 - 2021)"},
		{"non-numeric dates", Row{"start_date": "2019", "end_date": "aujourd'hui"}, entryExperience, " (2019 - aujourd'hui)"},
		{"start only", Row{"start_date": "2019"}, entryExperience, " (2019)"},
		{"end only", Row{"end_date": "2021"}, entryExperience, ""},
		{"none", Row{}, entryExperience, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dateSuffix(tt.row, tt.kind); got != tt.want {
				t.Errorf("dateSuffix() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildCV - Skills table
// ---------------------------------------------------------------------------

func TestBuildCV_SkillsTable(t *testing.T) {
	t.Parallel()

	s := CVSections{Skills: sampleSections().Skills}
	doc, err := BuildCV(s, CVSettings{SkillsLayout: "TABLE"})
	if err != nil {
		t.Fatalf("BuildCV() error = %v", err)
	}

	blocks := doc.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("len(blocks) = %d, want 2", len(blocks))
	}
	table, ok := blocks[1].(*Table)
	if !ok {
		t.Fatalf("block 1 = %T, want *Table", blocks[1])
	}
	if table.Style != ooxml.StyleTableGrid || table.Columns != DefaultSkillsColumns {
		t.Errorf("table style %q columns %d", table.Style, table.Columns)
	}

	want := [][]string{
		{"Langues: Français, Anglais", "Go: Avancé"},
		{"SQL: Intermédiaire", ""},
	}
	if diff := cmp.Diff(want, table.Rows()); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCV_InvalidSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings CVSettings
	}{
		{"unknown layout", CVSettings{SkillsLayout: "grid"}},
		{"negative columns", CVSettings{SkillsLayout: SkillsTable, SkillsColumns: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := BuildCV(CVSections{}, tt.settings); !errors.Is(err, ErrInvalidSkills) {
				t.Errorf("error = %v, want ErrInvalidSkills", err)
			}
		})
	}
}
