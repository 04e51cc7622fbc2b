package viewstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// errUnknownSection is returned when a section id does not belong to the
// session's pillar.
var errUnknownSection = errors.New("unknown section")

// RegisterRoutes mounts the reading-session API. Section ids are checked
// against the catalog so a session can only reference sections of its pillar.
func RegisterRoutes(r chi.Router, sessions *Sessions, c *catalog.Catalog) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", handleCreate(sessions, c))
		r.Get("/{sid}", handleGet(sessions))
		r.Delete("/{sid}", handleDelete(sessions))
		r.Put("/{sid}/section", handleSetSection(sessions, c))
		r.Post("/{sid}/bookmarks/{section}", handleToggle(sessions, c, (*ViewState).ToggleBookmark))
		r.Post("/{sid}/completed/{section}", handleToggle(sessions, c, (*ViewState).ToggleCompleted))
		r.Put("/{sid}/progress", handleProgress(sessions))
		r.Get("/{sid}/summary", handleSummary(sessions, c))
	})
}

type createRequest struct {
	PillarID int `json:"pillar_id"`
}

func handleCreate(sessions *Sessions, c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p, ok := c.Get(req.PillarID)
		if !ok {
			writeError(w, http.StatusNotFound, "pillar not found")
			return
		}
		snap, err := sessions.Create(p.ID, p.FirstSectionID())
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, snap)
	}
}

func handleGet(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := sessions.Get(chi.URLParam(r, "sid"))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func handleDelete(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Delete(chi.URLParam(r, "sid")); err != nil {
			writeSessionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type sectionRequest struct {
	Section string `json:"section"`
}

func handleSetSection(sessions *Sessions, c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		snap, err := sessions.Update(chi.URLParam(r, "sid"), func(v *ViewState) error {
			if err := checkSection(c, v.PillarID, req.Section); err != nil {
				return err
			}
			v.SetActiveSection(req.Section)
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func handleToggle(sessions *Sessions, c *catalog.Catalog, toggle func(*ViewState, string) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		snap, err := sessions.Update(chi.URLParam(r, "sid"), func(v *ViewState) error {
			if err := checkSection(c, v.PillarID, section); err != nil {
				return err
			}
			toggle(v, section)
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// progressRequest carries either raw scroll metrics or a ready percentage.
type progressRequest struct {
	Percent      *float64 `json:"percent"`
	ScrollTop    float64  `json:"scroll_top"`
	ScrollHeight float64  `json:"scroll_height"`
	ClientHeight float64  `json:"client_height"`
}

func handleProgress(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req progressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		pct := ScrollPercent(req.ScrollTop, req.ScrollHeight, req.ClientHeight)
		if req.Percent != nil {
			pct = *req.Percent
		}
		snap, err := sessions.Update(chi.URLParam(r, "sid"), func(v *ViewState) error {
			v.SetScrollProgress(pct)
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// Summary reports reading progress through a pillar.
type Summary struct {
	Snapshot
	TotalSections     int     `json:"total_sections"`
	CompletionPercent float64 `json:"completion_percent"`
}

func handleSummary(sessions *Sessions, c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid := chi.URLParam(r, "sid")
		var sum Summary
		err := sessions.View(sid, func(v *ViewState) {
			p, _ := c.Get(v.PillarID)
			sum = Summary{
				Snapshot:          snapshotOf(sid, v),
				TotalSections:     len(p.Sections),
				CompletionPercent: v.CompletionPercent(len(p.Sections)),
			}
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func checkSection(c *catalog.Catalog, pillarID int, section string) error {
	p, ok := c.Get(pillarID)
	if !ok || !p.HasSection(section) {
		return fmt.Errorf("%w %q for pillar %d", errUnknownSection, section, pillarID)
	}
	return nil
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errUnknownSection):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTooManySessions):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
