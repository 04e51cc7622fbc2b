package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the read-only pillar API.
func RegisterRoutes(r chi.Router, c *Catalog) {
	r.Route("/api/pillars", func(r chi.Router) {
		r.Get("/", handleList(c))
		r.Get("/{id}", handleGet(c))
		r.Get("/{id}/next", handleNext(c))
		r.Get("/{id}/previous", handlePrevious(c))
		r.Get("/{id}/navigation", handleNavigation(c))
	})
}

// ParseID reads the integer "id" URL parameter. On failure it writes a 400
// response and returns false.
func ParseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "pillar id must be an integer")
		return 0, false
	}
	return id, true
}

func handleList(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pillars := c.All()
		if q := r.URL.Query().Get("q"); q != "" {
			pillars = c.Search(q)
		}
		if pillars == nil {
			pillars = []Pillar{}
		}
		writeJSON(w, http.StatusOK, pillars)
	}
}

func handleGet(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(w, r)
		if !ok {
			return
		}
		p, ok := c.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "pillar not found")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// Absent neighbours answer 204 whether the id is unknown or at a boundary.
func handleNext(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(w, r)
		if !ok {
			return
		}
		p, ok := c.Next(id)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handlePrevious(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(w, r)
		if !ok {
			return
		}
		p, ok := c.Previous(id)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func handleNavigation(c *Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(w, r)
		if !ok {
			return
		}
		nav, ok := c.Neighbors(id)
		if !ok {
			writeError(w, http.StatusNotFound, "pillar not found")
			return
		}
		writeJSON(w, http.StatusOK, nav)
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
