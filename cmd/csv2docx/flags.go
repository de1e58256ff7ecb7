package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-csv2docx"
)

// ErrUsage wraps flag parsing errors so they exit with ExitUsage.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds typography and asset flags.
type styleFlags struct {
	style     string // preset name or .yaml path
	assetPath string // directory overriding embedded presets
}

// letterFlags holds cover letter flags.
type letterFlags struct {
	city       string
	dateFormat string
}

// skillsFlags holds CV skills layout flags.
type skillsFlags struct {
	table   bool
	columns int
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	author string
	title  string
}

// generateFlags holds all flags for the letter and cv commands.
type generateFlags struct {
	common   commonFlags
	output   string
	workers  int
	style    styleFlags
	page     pageFlags
	document documentFlags
	letter   letterFlags
	skills   skillsFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addStyleFlags adds style preset flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "style preset name or .yaml path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.author, "author", "", "document author metadata")
	fs.StringVar(&f.title, "title", "", "document title metadata")
}

// addLetterFlags adds cover letter flags to a FlagSet.
func addLetterFlags(fs *flag.FlagSet, f *letterFlags) {
	fs.StringVar(&f.city, "city", "", "city of the date line (default Nice)")
	fs.StringVar(&f.dateFormat, "date", "", "format of the default date, e.g. \"D MMMM YYYY\"")
}

// addSkillsFlags adds CV skills flags to a FlagSet.
func addSkillsFlags(fs *flag.FlagSet, f *skillsFlags) {
	fs.BoolVar(&f.table, "skills-table", false, "render skills as a table")
	fs.IntVar(&f.columns, "skills-columns", 0, "skills table columns (1-6, default 2)")
}

// buildGenerateFlagSet registers the flags of the letter or cv command.
// Completion reuses it so both stay in sync.
func buildGenerateFlagSet(kind csv2docx.DocumentKind, f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(commandName(kind), flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output .docx file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directories (0 = auto)")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addPageFlags(fs, &f.page)
	addDocumentFlags(fs, &f.document)
	if kind == csv2docx.KindCV {
		addSkillsFlags(fs, &f.skills)
	} else {
		addLetterFlags(fs, &f.letter)
	}
	return fs
}

// parseGenerateFlags parses letter or cv flags and returns positional args.
func parseGenerateFlags(kind csv2docx.DocumentKind, args []string, stderr io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := buildGenerateFlagSet(kind, f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printGenerateUsage(stderr, kind) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return f, fs.Args(), nil
}

// commandName returns the CLI command generating kind.
func commandName(kind csv2docx.DocumentKind) string {
	if kind == csv2docx.KindCV {
		return cmdCV
	}
	return cmdLetter
}
