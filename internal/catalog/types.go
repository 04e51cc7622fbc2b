package catalog

import "slices"

// Difficulty is the display tier of a pillar. It never affects ordering.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

// Label returns the human-readable name of the tier.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Pillar is one top-level unit of educational content, roughly a chapter.
type Pillar struct {
	ID          int        `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Icon        string     `json:"icon" yaml:"icon"`
	Path        string     `json:"path" yaml:"path"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty"`
	ReadMinutes int        `json:"read_minutes,omitempty" yaml:"read_minutes,omitempty"`

	// Prerequisite and NextPillar are informational only. Ordering is
	// always positional.
	Prerequisite *int `json:"prerequisite,omitempty" yaml:"prerequisite,omitempty"`
	NextPillar   *int `json:"next_pillar,omitempty" yaml:"next_pillar,omitempty"`

	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	Stats    []Stat    `json:"stats,omitempty" yaml:"stats,omitempty"`
	Related  []Link    `json:"related,omitempty" yaml:"related,omitempty"`
}

// clone returns a deep copy of p. The catalog hands out clones so callers
// never share slices or pointers with it.
func (p Pillar) clone() Pillar {
	p.Prerequisite = cloneInt(p.Prerequisite)
	p.NextPillar = cloneInt(p.NextPillar)
	p.Sections = slices.Clone(p.Sections)
	p.Stats = slices.Clone(p.Stats)
	p.Related = slices.Clone(p.Related)
	return p
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// DifficultyLabel is a shortcut for p.Difficulty.Label(), handy in templates.
func (p Pillar) DifficultyLabel() string { return p.Difficulty.Label() }

// SectionIDs returns the ids of the pillar's sections in order.
func (p Pillar) SectionIDs() []string {
	ids := make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// FirstSectionID returns the id of the first section, or "" if the
// pillar has none.
func (p Pillar) FirstSectionID() string {
	if len(p.Sections) == 0 {
		return ""
	}
	return p.Sections[0].ID
}

// HasSection reports whether the pillar contains a section with the given id.
func (p Pillar) HasSection(id string) bool {
	for _, s := range p.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Section is one article section within a pillar. Body is markdown.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// Stat is a key figure displayed alongside an article.
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Link points to a related resource.
type Link struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Navigation bundles a pillar with its positional neighbours. Previous and
// Next are nil at the catalog boundaries.
type Navigation struct {
	Current  Pillar  `json:"current"`
	Previous *Pillar `json:"previous"`
	Next     *Pillar `json:"next"`
}

func intPtr(v int) *int { return &v }
