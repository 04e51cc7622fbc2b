package render

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

// RegisterRoutes mounts the rendered-article endpoint.
func RegisterRoutes(r chi.Router, c *catalog.Catalog, renderer *Renderer) {
	r.Get("/api/content/{id}", handleArticle(c, renderer))
}

func handleArticle(c *catalog.Catalog, renderer *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := catalog.ParseID(w, r)
		if !ok {
			return
		}
		p, ok := c.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "pillar not found")
			return
		}
		article, err := renderer.RenderPillar(p)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, article)
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
