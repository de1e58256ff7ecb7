package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-csv2docx"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  letter       Generate a cover letter from a CSV or XLSX source")
	fmt.Fprintln(w, "  cv           Generate a CV from a CSV or XLSX source")
	fmt.Fprintln(w, "  inspect      Print the text of a .docx file")
	fmt.Fprintln(w, "  init         Write a sample source")
	fmt.Fprintln(w, "  doctor       Check configuration and environment")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'csv2docx help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the letter or cv command.
func printGenerateUsage(w io.Writer, kind csv2docx.DocumentKind) {
	if kind == csv2docx.KindCV {
		fmt.Fprintln(w, "Usage: csv2docx cv <source> [variant] [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Generate a CV. Rows are grouped by the section column:")
		fmt.Fprintln(w, "personal, title, objectives, experience, education, skills.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  source     .csv or .xlsx file, or a directory of them")
		fmt.Fprintln(w, "  variant    debutant (default): objective, education before experience")
		fmt.Fprintln(w, "             accompli: experience before education, no objective")
	} else {
		fmt.Fprintln(w, "Usage: csv2docx letter <source> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Generate a cover letter. Rows pair a title label with its content:")
		fmt.Fprintln(w, "Expéditeur, Destinataire, Date, Objet, Salutation, Corps,")
		fmt.Fprintln(w, "Formule de politesse, Signature.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  source     .csv or .xlsx file, or a directory of them")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .docx file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   Style preset (default, compact, classic) or .yaml file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/ and samples/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --author <s>          Author metadata")
	fmt.Fprintln(w, "      --title <s>           Title metadata")
	fmt.Fprintln(w)
	if kind == csv2docx.KindCV {
		fmt.Fprintln(w, "Skills:")
		fmt.Fprintln(w, "      --skills-table        Render skills as a table")
		fmt.Fprintln(w, "      --skills-columns <n>  Table columns (1-6, default 2)")
	} else {
		fmt.Fprintln(w, "Letter:")
		fmt.Fprintln(w, "      --city <s>            City of the date line (default Nice)")
		fmt.Fprintln(w, "      --date <format>       Format of the default date (default \"DD MMMM YYYY\")")
		fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
		fmt.Fprintln(w, "                            Use [text] to escape literals")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2docx inspect <file.docx> [--properties]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the paragraphs of a .docx file in document order.")
	fmt.Fprintln(w, "Table rows are printed tab-separated.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --properties          Print title, author and page setup first")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: csv2docx init <letter|cv> [dest] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a sample source to dest (default <name>.csv).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdLetter:
		printGenerateUsage(env.Stdout, csv2docx.KindCoverLetter)
	case cmdCV:
		printGenerateUsage(env.Stdout, csv2docx.KindCV)
	case cmdInspect:
		printInspectUsage(env.Stdout)
	case cmdInit:
		printInitUsage(env.Stdout)
	case cmdDoctor:
		fmt.Fprintln(env.Stdout, "Usage: csv2docx doctor [--json] [-c config]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check configuration, style presets and output directory.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: csv2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: csv2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
