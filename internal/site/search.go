package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// SearchEntry represents a single searchable page of the site.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex builds one entry per pillar in catalog order.
func BuildSearchIndex(c *catalog.Catalog) []SearchEntry {
	pillars := c.All()
	entries := make([]SearchEntry, 0, len(pillars))
	for _, p := range pillars {
		var parts []string
		for _, s := range p.Sections {
			parts = append(parts, s.Title, s.Body)
		}
		content := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
		if len(content) > 2000 {
			content = content[:2000]
		}
		entries = append(entries, SearchEntry{
			Path:    pagePath(p),
			Title:   p.Title,
			Summary: p.Description,
			Content: content,
		})
	}
	return entries
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
