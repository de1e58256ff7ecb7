package assets

import (
	"io/fs"
	"path"
	"slices"
	"strings"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a style preset by name using the default embedded loader.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadSample loads a sample source by name using the default embedded loader.
func LoadSample(name string) (string, error) {
	return defaultLoader.LoadSample(name)
}

// StyleNames lists the embedded style presets, sorted.
func StyleNames() []string {
	return embeddedNames(styles, "styles", ".yaml")
}

// SampleNames lists the embedded sample sources, sorted.
func SampleNames() []string {
	return embeddedNames(samples, "samples", ".csv")
}

func embeddedNames(fsys fs.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(names)
	return names
}
