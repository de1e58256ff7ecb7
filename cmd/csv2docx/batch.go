package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-csv2docx"
	"github.com/alnah/go-csv2docx/internal/hints"
)

// File permission constants.
const (
	dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute
)

// ErrGenerationFailed is returned when at least one source of a batch failed.
var ErrGenerationFailed = errors.New("generation failed")

// generateFunc reads src and writes the document to dst.
type generateFunc func(ctx context.Context, src, dst string) (*csv2docx.Document, error)

// GenerationResult holds the outcome of a single generation.
type GenerationResult struct {
	InputPath  string
	OutputPath string
	Blocks     int
	Err        error
	Duration   time.Duration
}

// generateBatch processes files concurrently with at most workers goroutines.
// Results keep the order of files.
func generateBatch(ctx context.Context, workers int, files []SourceFile, generate generateFunc) []GenerationResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]GenerationResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = GenerationResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generateFile(ctx, generate, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateFile processes a single source and returns the result.
func generateFile(ctx context.Context, generate generateFunc, f SourceFile) GenerationResult {
	start := time.Now()
	result := GenerationResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	doc, err := generate(ctx, f.InputPath, f.OutputPath)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	result.Blocks = doc.Len()
	return result
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []GenerationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// successMessage is the line printed for a generated document.
func successMessage(kind csv2docx.DocumentKind, path string) string {
	if kind == csv2docx.KindCV {
		return "CV généré et sauvegardé dans " + path
	}
	return "Lettre de motivation générée et sauvegardée dans " + path
}

// printResults outputs generation results and returns the failure count.
func printResults(results []GenerationResult, kind csv2docx.DocumentKind, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%d blocks, %v)\n", r.InputPath, r.OutputPath, r.Blocks, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintln(env.Stdout, successMessage(kind, r.OutputPath))
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
