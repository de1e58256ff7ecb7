package main

// Notes:
// - runInit: writes into t.TempDir() only; the default destination
//   (./<name>.csv) is not exercised to keep the working directory clean.
// - The written sample is generated end to end to prove it is a valid source.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-csv2docx/internal/assets"
)

func TestRunInit(t *testing.T) {
	t.Parallel()

	t.Run("writes sample that generates", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{cmdLetter, cmdCV} {
			dest := filepath.Join(t.TempDir(), "source.csv")
			env, stdout, stderr := testEnv()

			if err := runInit([]string{name, dest}, env); err != nil {
				t.Fatalf("runInit(%s): %v", name, err)
			}
			if stdout.String() != "Created "+dest+"\n" {
				t.Errorf("stdout = %q", stdout.String())
			}
			if code := run(context.Background(), []string{"csv2docx", name, dest, "-q"}, env); code != ExitSuccess {
				t.Errorf("%s sample does not generate: exit %d: %s", name, code, stderr.String())
			}
		}
	})

	t.Run("directory destination", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		env, _, _ := testEnv()

		if err := runInit([]string{cmdCV, dir}, env); err != nil {
			t.Fatalf("runInit: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "cv.csv")); err != nil {
			t.Errorf("cv.csv not written: %v", err)
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()
		dest := writeFile(t, t.TempDir(), "mine.csv", "keep me")
		env, _, _ := testEnv()

		err := runInit([]string{cmdLetter, dest}, env)
		if !errors.Is(err, ErrOutputExists) {
			t.Fatalf("error = %v, want ErrOutputExists", err)
		}
		data, _ := os.ReadFile(dest)
		if string(data) != "keep me" {
			t.Error("existing file was modified")
		}

		if err := runInit([]string{"--force", cmdLetter, dest}, env); err != nil {
			t.Fatalf("runInit --force: %v", err)
		}
		data, _ = os.ReadFile(dest)
		if !strings.HasPrefix(string(data), "title,content") {
			t.Errorf("file not overwritten: %q", data)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name    string
			args    []string
			wantErr error
		}{
			{"no sample", nil, ErrUsage},
			{"too many arguments", []string{"cv", "a", "b"}, ErrUsage},
			{"unknown sample", []string{"resume", filepath.Join(t.TempDir(), "x.csv")}, assets.ErrSampleNotFound},
		}
		for _, tt := range tests {
			env, _, _ := testEnv()
			if err := runInit(tt.args, env); !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.wantErr)
			}
		}
	})
}
