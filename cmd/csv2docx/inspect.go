package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-csv2docx/internal/ooxml"
)

// runInspect prints the text of a .docx file in body order: one line per
// paragraph, tables as tab-separated rows. Line breaks inside a paragraph are
// printed as " / " so every paragraph stays on one line.
func runInspect(args []string, env *Environment) error {
	fs := flag.NewFlagSet(cmdInspect, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var showProps bool
	fs.BoolVar(&showProps, "properties", false, "print core properties and page setup first")
	fs.Usage = func() { printInspectUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		printInspectUsage(env.Stderr)
		return fmt.Errorf("%w: inspect takes exactly one .docx file", ErrUsage)
	}

	contents, err := ooxml.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	if showProps {
		printProperties(env.Stdout, contents)
	}
	printBody(env.Stdout, contents.Body)
	return nil
}

func printProperties(w io.Writer, c *ooxml.Contents) {
	p := c.Properties
	fmt.Fprintf(w, "Title:      %s\n", p.Title)
	fmt.Fprintf(w, "Author:     %s\n", p.Creator)
	fmt.Fprintf(w, "Identifier: %s\n", p.Identifier)
	if !p.Created.IsZero() {
		fmt.Fprintf(w, "Created:    %s\n", p.Created.Format("2006-01-02 15:04:05 MST"))
	}
	orientation := "portrait"
	if c.Page.Landscape {
		orientation = "landscape"
	}
	fmt.Fprintf(w, "Page:       %dx%d twips, %s, margin %d\n", c.Page.Width, c.Page.Height, orientation, c.Page.Margin)
	fmt.Fprintln(w)
}

func printBody(w io.Writer, body []ooxml.Element) {
	for _, el := range body {
		switch v := el.(type) {
		case *ooxml.Paragraph:
			fmt.Fprintln(w, oneLine(v.Text()))
		case *ooxml.Table:
			for _, row := range v.Rows {
				cells := make([]string, len(row))
				for i, c := range row {
					cells[i] = oneLine(c.Text())
				}
				fmt.Fprintln(w, strings.Join(cells, "\t"))
			}
		}
	}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " / ")
}
