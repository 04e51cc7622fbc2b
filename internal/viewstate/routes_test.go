package viewstate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/pillars/internal/catalog"
)

func setupRouter(t *testing.T) (chi.Router, *Sessions) {
	t.Helper()
	sessions := NewSessions()
	r := chi.NewRouter()
	RegisterRoutes(r, sessions, catalog.Default())
	return r, sessions
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, r http.Handler, pillarID string) Snapshot {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/api/sessions", `{"pillar_id":`+pillarID+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var snap Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return snap
}

func TestCreateSessionRoute(t *testing.T) {
	r, sessions := setupRouter(t)
	snap := createSession(t, r, "3")
	if snap.PillarID != 3 || snap.ActiveSection != "good-vs-bad" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if sessions.Len() != 1 {
		t.Errorf("sessions = %d, want 1", sessions.Len())
	}

	if rec := do(t, r, http.MethodPost, "/api/sessions", `{"pillar_id":99}`); rec.Code != http.StatusNotFound {
		t.Errorf("unknown pillar status = %d, want 404", rec.Code)
	}
	if rec := do(t, r, http.MethodPost, "/api/sessions", `not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", rec.Code)
	}
}

func TestToggleRoutes(t *testing.T) {
	r, _ := setupRouter(t)
	snap := createSession(t, r, "1")
	base := "/api/sessions/" + snap.SessionID

	rec := do(t, r, http.MethodPost, base+"/bookmarks/tracking", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("bookmark status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got Snapshot
	json.NewDecoder(rec.Body).Decode(&got)
	if len(got.Bookmarks) != 1 || got.Bookmarks[0] != "tracking" {
		t.Errorf("bookmarks = %v, want [tracking]", got.Bookmarks)
	}

	rec = do(t, r, http.MethodPost, base+"/bookmarks/tracking", "")
	json.NewDecoder(rec.Body).Decode(&got)
	if len(got.Bookmarks) != 0 {
		t.Errorf("bookmarks after second toggle = %v, want none", got.Bookmarks)
	}

	if rec := do(t, r, http.MethodPost, base+"/completed/no-such-section", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown section status = %d, want 400", rec.Code)
	}
	if rec := do(t, r, http.MethodPost, "/api/sessions/nope/completed/tracking", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", rec.Code)
	}
}

func TestSectionAndProgressRoutes(t *testing.T) {
	r, _ := setupRouter(t)
	snap := createSession(t, r, "1")
	base := "/api/sessions/" + snap.SessionID

	rec := do(t, r, http.MethodPut, base+"/section", `{"section":"50-30-20"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("section status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, http.MethodPut, base+"/progress", `{"scroll_top":250,"scroll_height":1500,"client_height":1000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("progress status = %d", rec.Code)
	}
	var got Snapshot
	json.NewDecoder(rec.Body).Decode(&got)
	if got.ActiveSection != "50-30-20" {
		t.Errorf("active section = %q", got.ActiveSection)
	}
	if got.ScrollProgress != 50 {
		t.Errorf("scroll progress = %v, want 50", got.ScrollProgress)
	}

	rec = do(t, r, http.MethodPut, base+"/progress", `{"percent":-3}`)
	json.NewDecoder(rec.Body).Decode(&got)
	if got.ScrollProgress != 0 {
		t.Errorf("clamped progress = %v, want 0", got.ScrollProgress)
	}

	if rec := do(t, r, http.MethodPut, base+"/section", `{"section":"missing"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("unknown section status = %d, want 400", rec.Code)
	}
}

func TestSummaryAndDeleteRoutes(t *testing.T) {
	r, _ := setupRouter(t)
	snap := createSession(t, r, "2")
	base := "/api/sessions/" + snap.SessionID

	do(t, r, http.MethodPost, base+"/completed/how-much", "")

	rec := do(t, r, http.MethodGet, base+"/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary status = %d", rec.Code)
	}
	var sum Summary
	json.NewDecoder(rec.Body).Decode(&sum)
	if sum.TotalSections != 3 {
		t.Errorf("total sections = %d, want 3", sum.TotalSections)
	}
	if sum.SessionID != snap.SessionID {
		t.Errorf("session id = %q, want %q", sum.SessionID, snap.SessionID)
	}
	if sum.CompletionPercent < 33.3 || sum.CompletionPercent > 33.4 {
		t.Errorf("completion = %v, want ~33.3", sum.CompletionPercent)
	}

	if rec := do(t, r, http.MethodDelete, base, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}
	if rec := do(t, r, http.MethodGet, base, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestCreateSessionRouteFull(t *testing.T) {
	sessions := NewSessions(WithMaxSessions(1))
	r := chi.NewRouter()
	RegisterRoutes(r, sessions, catalog.Default())

	createSession(t, r, "1")
	if rec := do(t, r, http.MethodPost, "/api/sessions", `{"pillar_id":1}`); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("full registry status = %d, want 503", rec.Code)
	}
}
