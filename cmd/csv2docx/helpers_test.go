package main

// Notes:
// - Shared fixtures for the CLI tests: a fixed clock, a buffered
//   Environment, and small CSV sources.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock of every test Environment.
var fixedNow = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

const letterSource = `title,content
Expéditeur,Jean Dupont
Destinataire,ACME
Objet,Candidature
Salutation,"Madame, Monsieur,"
Corps,Premier paragraphe.\nSecond paragraphe.
Formule de politesse,Cordialement
Signature,Jean Dupont
`

const cvSource = `section,title,subtitle,description,start_date,end_date
personal,Nom,,Jean Dupont,,
personal,Tel,,0600000000,,
title,,,Ingénieur,,
objectives,,,Apprendre,,
experience,Dev,ACME,Go,2019,2021
education,Master,Nice,,2017,2019
skills,Go,,Avancé,,
`

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeFile writes content to dir/name, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
