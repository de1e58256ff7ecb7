package main

// Notes:
// - generateBatch: driven by a fake generateFunc so no document is written.
//   We check ordering, per-file errors, output directory creation, and
//   cancellation.
// - printResults: French success lines, quiet and verbose modes, summary.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alnah/go-csv2docx"
)

func fakeGenerate(fail string) generateFunc {
	return func(_ context.Context, src, _ string) (*csv2docx.Document, error) {
		if filepath.Base(src) == fail {
			return nil, errors.New("bad source")
		}
		doc := csv2docx.NewDocument(csv2docx.KindCoverLetter, "")
		_ = doc.Append(&csv2docx.Paragraph{Runs: []csv2docx.Run{{Text: src}}})
		return doc, nil
	}
}

// ---------------------------------------------------------------------------
// TestGenerateBatch
// ---------------------------------------------------------------------------

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if got := generateBatch(context.Background(), 4, nil, fakeGenerate("")); got != nil {
			t.Errorf("results = %v, want nil", got)
		}
	})

	t.Run("keeps order and reports failures", func(t *testing.T) {
		t.Parallel()
		out := t.TempDir()
		files := []SourceFile{
			{InputPath: "a.csv", OutputPath: filepath.Join(out, "a.docx")},
			{InputPath: "b.csv", OutputPath: filepath.Join(out, "b.docx")},
			{InputPath: "c.csv", OutputPath: filepath.Join(out, "c.docx")},
		}

		results := generateBatch(context.Background(), 2, files, fakeGenerate("b.csv"))

		if len(results) != 3 {
			t.Fatalf("len(results) = %d, want 3", len(results))
		}
		for i, r := range results {
			if r.InputPath != files[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
			}
		}
		if results[1].Err == nil {
			t.Error("results[1] should have failed")
		}
		if results[0].Err != nil || results[0].Blocks != 1 {
			t.Errorf("results[0] = %+v, want success with 1 block", results[0])
		}
		if got := countResults(results); got != (ResultSummary{Succeeded: 2, Failed: 1}) {
			t.Errorf("countResults() = %+v", got)
		}
	})

	t.Run("creates output directories", func(t *testing.T) {
		t.Parallel()
		dst := filepath.Join(t.TempDir(), "deep", "nested", "a.docx")

		results := generateBatch(context.Background(), 1, []SourceFile{{InputPath: "a.csv", OutputPath: dst}}, fakeGenerate(""))

		if results[0].Err != nil {
			t.Fatalf("unexpected error: %v", results[0].Err)
		}
		if _, err := os.Stat(filepath.Dir(dst)); err != nil {
			t.Errorf("output directory not created: %v", err)
		}
	})

	t.Run("cancelled context skips work", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		gen := func(context.Context, string, string) (*csv2docx.Document, error) {
			calls.Add(1)
			return csv2docx.NewDocument(csv2docx.KindCV, ""), nil
		}
		files := []SourceFile{{InputPath: "a.csv", OutputPath: "a.docx"}, {InputPath: "b.csv", OutputPath: "b.docx"}}

		results := generateBatch(ctx, 2, files, gen)

		if calls.Load() != 0 {
			t.Errorf("generate called %d times, want 0", calls.Load())
		}
		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("%s: error = %v, want context.Canceled", r.InputPath, r.Err)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestPrintResults
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []GenerationResult{
		{InputPath: "a.csv", OutputPath: "a.docx", Blocks: 4},
		{InputPath: "b.csv", OutputPath: "b.docx", Err: errors.New("bad source")},
	}

	tests := []struct {
		name       string
		kind       csv2docx.DocumentKind
		quiet      bool
		verbose    bool
		wantStdout []string
		notStdout  []string
	}{
		{
			name:       "letter",
			kind:       csv2docx.KindCoverLetter,
			wantStdout: []string{"Lettre de motivation générée et sauvegardée dans a.docx", "1 succeeded, 1 failed"},
		},
		{
			name:       "cv",
			kind:       csv2docx.KindCV,
			wantStdout: []string{"CV généré et sauvegardé dans a.docx"},
		},
		{
			name:       "verbose",
			kind:       csv2docx.KindCV,
			verbose:    true,
			wantStdout: []string{"a.csv -> a.docx (4 blocks"},
			notStdout:  []string{"sauvegardé"},
		},
		{
			name:      "quiet",
			kind:      csv2docx.KindCV,
			quiet:     true,
			notStdout: []string{"sauvegardé", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			failed := printResults(results, tt.kind, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.csv: bad source") {
				t.Errorf("stderr = %q, want FAILED line", stderr.String())
			}
			for _, s := range tt.wantStdout {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout missing %q:\n%s", s, stdout.String())
				}
			}
			for _, s := range tt.notStdout {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout should not contain %q:\n%s", s, stdout.String())
				}
			}
		})
	}
}
