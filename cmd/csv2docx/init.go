package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-csv2docx/internal/assets"
	"github.com/alnah/go-csv2docx/internal/fileutil"
)

// ErrOutputExists is returned when init would overwrite a file.
var ErrOutputExists = errors.New("file already exists")

// filePermissions is the mode of written sample sources.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// runInit writes an embedded sample source: csv2docx init <letter|cv> [dest].
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet(cmdInit, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var force bool
	fs.BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	fs.Usage = func() { printInitUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		printInitUsage(env.Stderr)
		return fmt.Errorf("%w: init takes a sample name and an optional destination", ErrUsage)
	}

	name := fs.Arg(0)
	content, err := assets.LoadSample(name)
	if err != nil {
		return err
	}

	dest := name + ".csv"
	if fs.NArg() == 2 {
		dest = fs.Arg(1)
	}
	if fileutil.DirExists(dest) {
		dest = filepath.Join(dest, name+".csv")
	}
	if !force && fileutil.FileExists(dest) {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, dest)
	}

	// #nosec G306 -- sample sources are meant to be readable
	if err := os.WriteFile(dest, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", dest)
	return nil
}
