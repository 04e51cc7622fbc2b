package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/pillars/internal/catalog"
	"github.com/ziadkadry99/pillars/internal/progress"
	"github.com/ziadkadry99/pillars/internal/render"
)

// SiteGenerator converts the pillar catalog into a static HTML site.
type SiteGenerator struct {
	Catalog   *catalog.Catalog
	OutputDir string
	Title     string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator for the given catalog.
func NewSiteGenerator(c *catalog.Catalog, outputDir, title string) *SiteGenerator {
	return &SiteGenerator{
		Catalog:   c,
		OutputDir: outputDir,
		Title:     title,
		Reporter:  progress.Nop{},
	}
}

// navLink is a link to a neighbouring pillar. A nil *navLink hides the link.
type navLink struct {
	Title string
	Href  string
}

// pageData holds the data passed to the pillar template.
type pageData struct {
	SiteTitle string
	BasePath  string
	Pillar    catalog.Pillar
	Sections  []render.Section
	Previous  *navLink
	Next      *navLink
	Prereq    *navLink
}

// indexData holds the data passed to the index template.
type indexData struct {
	SiteTitle string
	BasePath  string
	Pillars   []indexEntry
}

type indexEntry struct {
	catalog.Pillar
	Href string
}

// Generate builds the full static site. Returns the number of pages written.
func (g *SiteGenerator) Generate() (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := WriteSearchIndex(BuildSearchIndex(g.Catalog), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	pageTmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	indexTmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing index template: %w", err)
	}

	renderer := render.New()
	pillars := g.Catalog.All()

	g.Reporter.Start(len(pillars))
	for i, p := range pillars {
		g.Reporter.Update(i+1, p.Title)
		if err := g.renderPillar(renderer, pageTmpl, p); err != nil {
			return 0, fmt.Errorf("rendering pillar %d: %w", p.ID, err)
		}
	}
	g.Reporter.Finish()

	idx := indexData{SiteTitle: g.Title}
	for _, p := range pillars {
		idx.Pillars = append(idx.Pillars, indexEntry{Pillar: p, Href: pagePath(p)})
	}
	if err := writeTemplate(indexTmpl, idx, filepath.Join(g.OutputDir, "index.html")); err != nil {
		return 0, err
	}

	return len(pillars) + 1, nil
}

// renderPillar writes one pillar page. Previous/next links are emitted only
// when the catalog reports a neighbour.
func (g *SiteGenerator) renderPillar(renderer *render.Renderer, tmpl *template.Template, p catalog.Pillar) error {
	article, err := renderer.RenderPillar(p)
	if err != nil {
		return err
	}

	rel := pagePath(p)
	base := basePath(rel)
	data := pageData{
		SiteTitle: g.Title,
		BasePath:  base,
		Pillar:    p,
		Sections:  article.Sections,
	}
	if prev, ok := g.Catalog.Previous(p.ID); ok {
		data.Previous = &navLink{Title: prev.Title, Href: base + pagePath(prev)}
	}
	if next, ok := g.Catalog.Next(p.ID); ok {
		data.Next = &navLink{Title: next.Title, Href: base + pagePath(next)}
	}
	if p.Prerequisite != nil {
		if pre, ok := g.Catalog.Get(*p.Prerequisite); ok {
			data.Prereq = &navLink{Title: pre.Title, Href: base + pagePath(pre)}
		}
	}

	return writeTemplate(tmpl, data, filepath.Join(g.OutputDir, filepath.FromSlash(rel)))
}

func writeTemplate(tmpl *template.Template, data any, outPath string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// pagePath maps a pillar's URL path to its file under the output directory,
// e.g. "/pillars/budgeting" -> "pillars/budgeting.html".
func pagePath(p catalog.Pillar) string {
	rel := strings.Trim(p.Path, "/")
	if rel == "" {
		rel = fmt.Sprintf("pillar-%d", p.ID)
	}
	return rel + ".html"
}

// basePath returns the relative prefix from a page back to the site root.
func basePath(rel string) string {
	return strings.Repeat("../", strings.Count(rel, "/"))
}
