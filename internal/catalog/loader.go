package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk YAML layout of a full catalog.
type fileFormat struct {
	Pillars []Pillar `yaml:"pillars"`
}

// LoadFile reads a catalog from a YAML file with a top-level "pillars" list.
// Pillars keep the order in which they appear in the file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return build(f.Pillars, path)
}

// LoadDir reads one pillar per YAML file found anywhere under dir and orders
// them by id.
func LoadDir(dir string) (*Catalog, error) {
	fsys := os.DirFS(dir)
	matches, err := doublestar.Glob(fsys, "**/*.{yml,yaml}")
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	sort.Strings(matches)

	pillars := make([]Pillar, 0, len(matches))
	for _, m := range matches {
		data, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", m, err)
		}
		var p Pillar
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Join(dir, m), err)
		}
		pillars = append(pillars, p)
	}
	sort.SliceStable(pillars, func(i, j int) bool { return pillars[i].ID < pillars[j].ID })
	return build(pillars, dir)
}

func build(pillars []Pillar, source string) (*Catalog, error) {
	c, err := New(pillars)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", source, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", source, err)
	}
	return c, nil
}

// WriteFile writes the catalog to path in the format LoadFile reads.
func WriteFile(c *Catalog, path string) error {
	data, err := yaml.Marshal(fileFormat{Pillars: c.pillars})
	if err != nil {
		return fmt.Errorf("marshalling catalog: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog to %s: %w", path, err)
	}
	return nil
}
