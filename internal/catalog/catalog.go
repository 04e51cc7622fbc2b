package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCatalog is returned when building a catalog with no pillars.
var ErrEmptyCatalog = errors.New("catalog must contain at least one pillar")

// Catalog is an ordered, read-only list of pillars. Position in the list
// defines adjacency. A Catalog is never mutated after construction and every
// accessor returns deep copies, so it is safe for concurrent use without
// locking.
type Catalog struct {
	pillars []Pillar
}

// New builds a catalog from pillars in the given order. The pillars are
// deep-copied.
// New does not validate ids; use Validate for that.
func New(pillars []Pillar) (*Catalog, error) {
	if len(pillars) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{pillars: cloneAll(pillars)}, nil
}

// Len returns the number of pillars.
func (c *Catalog) Len() int { return len(c.pillars) }

// All returns a copy of the pillars in catalog order.
func (c *Catalog) All() []Pillar {
	return cloneAll(c.pillars)
}

func cloneAll(pillars []Pillar) []Pillar {
	out := make([]Pillar, len(pillars))
	for i, p := range pillars {
		out[i] = p.clone()
	}
	return out
}

// First returns the pillar at the start of the catalog.
func (c *Catalog) First() Pillar { return c.pillars[0].clone() }

// Last returns the pillar at the end of the catalog.
func (c *Catalog) Last() Pillar { return c.pillars[len(c.pillars)-1].clone() }

// IndexOf returns the position of the first pillar with the given id, or -1.
func (c *Catalog) IndexOf(id int) int {
	for i, p := range c.pillars {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the pillar with the given id.
func (c *Catalog) Get(id int) (Pillar, bool) {
	i := c.IndexOf(id)
	if i < 0 {
		return Pillar{}, false
	}
	return c.pillars[i].clone(), true
}

// Next returns the pillar immediately after currentID. The boolean is false
// both when currentID is the last pillar and when it is not in the catalog;
// callers cannot tell the two apart.
func (c *Catalog) Next(currentID int) (Pillar, bool) {
	i := c.IndexOf(currentID)
	if i < 0 || i >= len(c.pillars)-1 {
		return Pillar{}, false
	}
	return c.pillars[i+1].clone(), true
}

// Previous returns the pillar immediately before currentID. Like Next, an
// unknown id and the first pillar both yield false.
func (c *Catalog) Previous(currentID int) (Pillar, bool) {
	i := c.IndexOf(currentID)
	if i <= 0 {
		return Pillar{}, false
	}
	return c.pillars[i-1].clone(), true
}

// Neighbors returns the pillar with the given id together with its
// neighbours. ok is false only when id is unknown.
func (c *Catalog) Neighbors(id int) (nav Navigation, ok bool) {
	cur, ok := c.Get(id)
	if !ok {
		return Navigation{}, false
	}
	nav.Current = cur
	if p, ok := c.Previous(id); ok {
		nav.Previous = &p
	}
	if n, ok := c.Next(id); ok {
		nav.Next = &n
	}
	return nav, true
}

// Search returns pillars whose title, description or section titles contain
// every whitespace-separated term of query, case-insensitively. An empty
// query matches everything. Catalog order is preserved.
func (c *Catalog) Search(query string) []Pillar {
	terms := strings.Fields(strings.ToLower(query))
	var out []Pillar
	for _, p := range c.pillars {
		if matchesAll(searchText(p), terms) {
			out = append(out, p.clone())
		}
	}
	return out
}

func searchText(p Pillar) string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteByte(' ')
	b.WriteString(p.Description)
	for _, s := range p.Sections {
		b.WriteByte(' ')
		b.WriteString(s.Title)
	}
	return strings.ToLower(b.String())
}

func matchesAll(text string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// Validate checks catalog integrity: ids dense from 1 in positional order,
// references that point at existing pillars, and required display fields.
// The lookups never call Validate. All problems are reported together.
func (c *Catalog) Validate() error {
	var errs []error
	known := make(map[int]bool, len(c.pillars))
	for _, p := range c.pillars {
		if known[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate pillar id %d", p.ID))
		}
		known[p.ID] = true
	}

	for i, p := range c.pillars {
		if p.ID != i+1 {
			errs = append(errs, fmt.Errorf("pillar at position %d has id %d, want %d", i, p.ID, i+1))
		}
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("pillar %d: title is required", p.ID))
		}
		if strings.TrimSpace(p.Path) == "" {
			errs = append(errs, fmt.Errorf("pillar %d: path is required", p.ID))
		}
		if p.Difficulty < DifficultyBeginner || p.Difficulty > DifficultyAdvanced {
			errs = append(errs, fmt.Errorf("pillar %d: difficulty %d out of range 1-3", p.ID, p.Difficulty))
		}
		if p.Prerequisite != nil && !known[*p.Prerequisite] {
			errs = append(errs, fmt.Errorf("pillar %d: prerequisite %d does not exist", p.ID, *p.Prerequisite))
		}
		if p.NextPillar != nil && !known[*p.NextPillar] {
			errs = append(errs, fmt.Errorf("pillar %d: next_pillar %d does not exist", p.ID, *p.NextPillar))
		}
		seen := make(map[string]bool, len(p.Sections))
		for _, s := range p.Sections {
			if s.ID == "" {
				errs = append(errs, fmt.Errorf("pillar %d: section with empty id", p.ID))
				continue
			}
			if seen[s.ID] {
				errs = append(errs, fmt.Errorf("pillar %d: duplicate section id %q", p.ID, s.ID))
			}
			seen[s.ID] = true
		}
	}
	return errors.Join(errs...)
}
