package main

// Notes:
// - runInspect: reads documents produced by run(), so the test covers the
//   write and read-back paths together.
// - Error paths: argument count, non-docx input.

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-csv2docx/internal/ooxml"
)

func TestRunInspect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	letter := writeFile(t, dir, "lettre.csv", letterSource)
	cv := writeFile(t, dir, "cv.csv", cvSource)
	env, _, stderr := testEnv()
	if code := run(context.Background(), []string{"csv2docx", "letter", letter, "-q", "--author", "Jean Dupont"}, env); code != ExitSuccess {
		t.Fatalf("letter: exit %d: %s", code, stderr.String())
	}
	if code := run(context.Background(), []string{"csv2docx", "cv", cv, "-q", "--skills-table"}, env); code != ExitSuccess {
		t.Fatalf("cv: exit %d: %s", code, stderr.String())
	}

	t.Run("letter body", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()

		if err := runInspect([]string{filepath.Join(dir, "lettre.docx")}, env); err != nil {
			t.Fatalf("runInspect: %v", err)
		}
		out := stdout.String()
		for _, want := range []string{"Nice, le 18 octobre 2026\n", "Premier paragraphe. / Second paragraphe.\n"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Author:") {
			t.Error("properties printed without --properties")
		}
	})

	t.Run("properties", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()

		if err := runInspect([]string{"--properties", filepath.Join(dir, "lettre.docx")}, env); err != nil {
			t.Fatalf("runInspect: %v", err)
		}
		for _, want := range []string{"Author:     Jean Dupont", "Page:       11906x16838 twips, portrait"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("output missing %q:\n%s", want, stdout.String())
			}
		}
	})

	t.Run("table rows", func(t *testing.T) {
		t.Parallel()
		env, stdout, _ := testEnv()

		if err := runInspect([]string{filepath.Join(dir, "cv.docx")}, env); err != nil {
			t.Fatalf("runInspect: %v", err)
		}
		if !strings.Contains(stdout.String(), "Go: Avancé\t\n") {
			t.Errorf("output missing skills row:\n%s", stdout.String())
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		notDocx := writeFile(t, t.TempDir(), "x.docx", "plain text")

		tests := []struct {
			name    string
			args    []string
			wantErr error
		}{
			{"no argument", nil, ErrUsage},
			{"two arguments", []string{"a.docx", "b.docx"}, ErrUsage},
			{"not a docx", []string{notDocx}, ooxml.ErrNotDocx},
		}
		for _, tt := range tests {
			env, _, _ := testEnv()
			if err := runInspect(tt.args, env); !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})
}
