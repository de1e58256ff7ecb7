package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/config"
	"github.com/alnah/go-csv2docx/internal/fileutil"
	"github.com/alnah/go-csv2docx/internal/hints"
)

// sourceMissingError reports a source path that does not exist.
type sourceMissingError struct {
	path string
}

func (e *sourceMissingError) Error() string {
	return fmt.Sprintf("Le fichier %s n'existe pas.", e.path) + hints.ForMissingSource()
}

func (e *sourceMissingError) Unwrap() error {
	return csv2docx.ErrSourceNotFound
}

// runGenerate implements the letter and cv commands.
func runGenerate(ctx context.Context, kind csv2docx.DocumentKind, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(kind, args, env.Stderr)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	maxArgs := 1
	if kind == csv2docx.KindCV {
		maxArgs = 2 // source and variant
	}
	if len(positional) == 0 {
		printGenerateUsage(env.Stderr, kind)
		return ErrNoInput
	}
	if len(positional) > maxArgs {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[maxArgs])
	}
	input := positional[0]

	// Configuration: CLI flags > env vars > config file > defaults
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	var variant csv2docx.Variant
	if kind == csv2docx.KindCV {
		var arg string
		if len(positional) > 1 {
			arg = positional[1]
		}
		var warning string
		variant, warning = resolveVariant(arg, cfg)
		if warning != "" {
			fmt.Fprintln(env.Stderr, warning)
		}
	}

	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		return &sourceMissingError{path: input}
	}

	files, err := discoverSources(input, resolveOutput(flags.output, input, kind, cfg))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .csv or .xlsx file in %s", csv2docx.ErrSourceNotFound, input)
	}

	opts, err := buildOptions(cfg, env)
	if err != nil {
		return err
	}
	gen, err := csv2docx.NewGenerator(opts...)
	if err != nil {
		return err
	}

	generate := func(ctx context.Context, src, dst string) (*csv2docx.Document, error) {
		var doc *csv2docx.Document
		var err error
		if kind == csv2docx.KindCV {
			doc, err = gen.GenerateCV(ctx, src, dst, variant)
		} else {
			doc, err = gen.GenerateCoverLetter(ctx, src, dst)
		}
		return doc, withHint(err, kind)
	}

	workers = resolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Sources: %d, workers: %d\n", len(files), min(workers, len(files)))
	}

	start := time.Now()
	results := generateBatch(ctx, workers, files, generate)

	if len(results) == 1 && results[0].Err != nil {
		return results[0].Err
	}
	failed := printResults(results, kind, flags.common.quiet, flags.common.verbose, env)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", time.Since(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d source(s)", ErrGenerationFailed, failed, len(results))
	}
	return nil
}

// resolveOutput picks the output target: --output, then the per-kind config
// output (file sources only), then output.defaultDir. Empty means next to
// the source.
func resolveOutput(flagOutput, input string, kind csv2docx.DocumentKind, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if !fileutil.DirExists(input) {
		perKind := cfg.Letter.Output
		if kind == csv2docx.KindCV {
			perKind = cfg.CV.Output
		}
		if perKind != "" {
			return perKind
		}
	}
	return cfg.Output.DefaultDir
}

// withHint appends an actionable hint to errors users can fix in the source.
func withHint(err error, kind csv2docx.DocumentKind) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, csv2docx.ErrMissingColumns) {
		columns := csv2docx.LetterColumns
		if kind == csv2docx.KindCV {
			columns = csv2docx.CVColumns
		}
		return fmt.Errorf("%w%s", err, hints.ForMissingColumns(columns))
	}
	return err
}
