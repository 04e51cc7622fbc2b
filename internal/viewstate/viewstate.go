package viewstate

// ViewState is the reader state of one pillar page: which section is shown,
// which sections are bookmarked or completed, and how far the page has been
// scrolled. It is owned by whoever renders the page and is not safe for
// concurrent use on its own; Sessions serializes access.
type ViewState struct {
	PillarID       int
	ActiveSection  string
	Bookmarks      Set[string]
	Completed      Set[string]
	ScrollProgress float64
}

// New returns the initial state for a pillar page.
func New(pillarID int, firstSection string) *ViewState {
	return &ViewState{PillarID: pillarID, ActiveSection: firstSection}
}

// SetActiveSection selects the section on display.
func (v *ViewState) SetActiveSection(id string) { v.ActiveSection = id }

// ToggleBookmark flips the bookmark on a section and reports the new state.
func (v *ViewState) ToggleBookmark(id string) bool { return v.Bookmarks.Toggle(id) }

// ToggleCompleted flips the completion mark on a section and reports the new state.
func (v *ViewState) ToggleCompleted(id string) bool { return v.Completed.Toggle(id) }

// SetScrollProgress stores a percentage, clamped to [0, 100].
func (v *ViewState) SetScrollProgress(p float64) { v.ScrollProgress = clamp(p) }

// CompletionPercent returns the share of total sections marked complete.
func (v *ViewState) CompletionPercent(total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(float64(v.Completed.Len()) / float64(total) * 100)
}

// ScrollPercent converts raw scroll metrics into a reading progress
// percentage. Pages that do not scroll report 0.
func ScrollPercent(scrollTop, scrollHeight, clientHeight float64) float64 {
	scrollable := scrollHeight - clientHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp(scrollTop / scrollable * 100)
}

func clamp(p float64) float64 {
	switch {
	case p != p: // NaN
		return 0
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Snapshot is a serializable copy of a ViewState.
type Snapshot struct {
	SessionID      string   `json:"session_id,omitempty"`
	PillarID       int      `json:"pillar_id"`
	ActiveSection  string   `json:"active_section"`
	Bookmarks      []string `json:"bookmarks"`
	Completed      []string `json:"completed"`
	ScrollProgress float64  `json:"scroll_progress"`
}

// Snapshot copies the state with members in sorted order.
func (v *ViewState) Snapshot() Snapshot {
	return Snapshot{
		PillarID:       v.PillarID,
		ActiveSection:  v.ActiveSection,
		Bookmarks:      Sorted(&v.Bookmarks),
		Completed:      Sorted(&v.Completed),
		ScrollProgress: v.ScrollProgress,
	}
}
