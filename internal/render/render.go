package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// Renderer converts pillar markdown into HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with GFM tables, syntax highlighting and automatic
// heading ids. Raw HTML in article bodies is dropped from the output.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts a markdown string to HTML.
func (r *Renderer) Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Section is a pillar section with its body rendered.
type Section struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	HTML  template.HTML `json:"html"`
}

// Article is a pillar ready for display.
type Article struct {
	Pillar   catalog.Pillar `json:"pillar"`
	Sections []Section      `json:"sections"`
}

// RenderPillar renders every section of p in order.
func (r *Renderer) RenderPillar(p catalog.Pillar) (Article, error) {
	a := Article{Pillar: p, Sections: make([]Section, 0, len(p.Sections))}
	for _, s := range p.Sections {
		html, err := r.Render(s.Body)
		if err != nil {
			return Article{}, fmt.Errorf("pillar %d section %s: %w", p.ID, s.ID, err)
		}
		a.Sections = append(a.Sections, Section{ID: s.ID, Title: s.Title, HTML: html})
	}
	return a, nil
}
