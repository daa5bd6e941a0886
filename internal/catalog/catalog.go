// Package catalog holds the name sources bundled into the binary.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed data/sources.yaml data/*.csv
var dataFS embed.FS

const manifestPath = "data/sources.yaml"

// Source is one bundled origin of candidate names.
type Source struct {
	Name string
	Data []byte
}

// Catalog is the ordered set of sources for a run.
type Catalog struct {
	sources []Source
}

type manifest struct {
	Sources []struct {
		Name string `yaml:"name"`
		File string `yaml:"file"`
	} `yaml:"sources"`
}

// Load resolves the embedded manifest into a Catalog.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded data: %w", err)
	}

	raw, err := dataFS.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return FromFS(sub, raw)
}

// FromFS builds a Catalog from a manifest whose file entries are resolved
// against fsys.
func FromFS(fsys fs.FS, manifestData []byte) (*Catalog, error) {
	var m manifest
	if err := yaml.Unmarshal(manifestData, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	cat := &Catalog{sources: make([]Source, 0, len(m.Sources))}
	for _, entry := range m.Sources {
		data, err := fs.ReadFile(fsys, entry.File)
		if err != nil {
			return nil, fmt.Errorf("reading source %q: %w", entry.Name, err)
		}
		cat.sources = append(cat.sources, Source{Name: entry.Name, Data: data})
	}

	return cat, nil
}

// New builds a Catalog directly from sources, in the given order.
func New(sources ...Source) *Catalog {
	return &Catalog{sources: append([]Source(nil), sources...)}
}

// Sources returns the sources in merge order.
func (c *Catalog) Sources() []Source {
	return append([]Source(nil), c.sources...)
}
