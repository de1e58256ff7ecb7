package records

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
)

// ---------------------------------------------------------------------------
// TestReadCSV - CSV decoding and header mapping
// ---------------------------------------------------------------------------

func TestReadCSV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "header keyed rows",
			input: "title,content\nExpéditeur,Jane Doe\nObjet,Candidature\n",
			want: []Record{
				{"title": "Expéditeur", "content": "Jane Doe"},
				{"title": "Objet", "content": "Candidature"},
			},
		},
		{
			name:  "quoted field keeps comma and escaped newline",
			input: "title,content\nCorps,\"Bonjour,\\nCordialement\"\n",
			want: []Record{
				{"title": "Corps", "content": `Bonjour,\nCordialement`},
			},
		},
		{
			name:  "short row leaves trailing columns absent",
			input: "section,title,description\npersonal,Tel\n",
			want: []Record{
				{"section": "personal", "title": "Tel"},
			},
		},
		{
			name:  "extra cells are dropped",
			input: "title,content\nDate,1er mars,extra\n",
			want: []Record{
				{"title": "Date", "content": "1er mars"},
			},
		},
		{
			name:  "blank lines skipped",
			input: "title,content\n\nSignature,Jane\n\n",
			want: []Record{
				{"title": "Signature", "content": "Jane"},
			},
		},
		{
			name:  "utf-8 byte order mark stripped from header",
			input: "\ufefftitle,content\nObjet,Stage\n",
			want: []Record{
				{"title": "Objet", "content": "Stage"},
			},
		},
		{
			name:  "decomposed accents normalized to NFC",
			input: "title,content\nExpe\u0301diteur,Jane\n",
			want: []Record{
				{"title": "Expéditeur", "content": "Jane"},
			},
		},
		{
			name:  "header names trimmed",
			input: " title , content \nObjet,Stage\n",
			want: []Record{
				{"title": "Objet", "content": "Stage"},
			},
		},
		{
			name:  "values are not trimmed",
			input: "title,content\nObjet,  \"Stage\"  \n",
			want: []Record{
				{"title": "Objet", "content": `  "Stage"  `},
			},
		},
		{
			name:  "header only",
			input: "title,content\n",
			want:  []Record{},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadCSV(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadCSV() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCSV_UTF16WithBOM(t *testing.T) {
	t.Parallel()

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.String("title,content\nSalutation,Bonjour Madame\n")
	if err != nil {
		t.Fatal(err)
	}

	got, err := ReadCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}
	want := []Record{{"title": "Salutation", "content": "Bonjour Madame"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadCSV() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestReadXLSX - First worksheet, first row header
// ---------------------------------------------------------------------------

func newWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			t.Fatal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()

	buf := newWorkbook(t, [][]any{
		{"section", "title", "subtitle", "start_date", "end_date"},
		{"experience", "Développeuse", "ACME", 2019, 2021},
		{},
		{"education", "Master", "Université"},
	})

	got, err := ReadXLSX(buf)
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}

	want := []Record{
		{"section": "experience", "title": "Développeuse", "subtitle": "ACME", "start_date": "2019", "end_date": "2021"},
		{"section": "education", "title": "Master", "subtitle": "Université"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadXLSX() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	t.Parallel()

	got, err := ReadXLSX(newWorkbook(t, nil))
	if err != nil {
		t.Fatalf("ReadXLSX() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadXLSX() = %v, want no records", got)
	}
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	t.Parallel()

	_, err := ReadXLSX(strings.NewReader("title,content\n"))
	if !errors.Is(err, ErrReadSource) {
		t.Errorf("ReadXLSX() error = %v, want ErrReadSource", err)
	}
}

// ---------------------------------------------------------------------------
// TestReadFile - Extension dispatch
// ---------------------------------------------------------------------------

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	csvPath := filepath.Join(dir, "letter.CSV")
	if err := os.WriteFile(csvPath, []byte("title,content\nObjet,Stage\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	xlsxPath := filepath.Join(dir, "cv.xlsx")
	if err := os.WriteFile(xlsxPath, newWorkbook(t, [][]any{{"section", "title"}, {"skills", "Go"}}).Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("csv by extension, case-insensitive", func(t *testing.T) {
		t.Parallel()
		got, err := ReadFile(csvPath)
		if err != nil {
			t.Fatalf("ReadFile() unexpected error: %v", err)
		}
		if len(got) != 1 || got[0]["content"] != "Stage" {
			t.Errorf("ReadFile() = %v", got)
		}
	})

	t.Run("xlsx by extension", func(t *testing.T) {
		t.Parallel()
		got, err := ReadFile(xlsxPath)
		if err != nil {
			t.Fatalf("ReadFile() unexpected error: %v", err)
		}
		if len(got) != 1 || got[0]["title"] != "Go" {
			t.Errorf("ReadFile() = %v", got)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile(filepath.Join(dir, "notes.txt"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ReadFile() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile(filepath.Join(dir, "missing.csv"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("ReadFile() error = %v, want os.ErrNotExist", err)
		}
	})
}
