package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// ScheduleHandler serves the read-only schedule endpoints.
type ScheduleHandler struct {
	logger *observability.Logger
	store  *dataset.Store
}

// NewScheduleHandler creates a new schedule handler.
func NewScheduleHandler(logger *observability.Logger, store *dataset.Store) *ScheduleHandler {
	return &ScheduleHandler{logger: logger, store: store}
}

// List handles GET /api/schedule.
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Schedule())
}

// Regular handles GET /api/schedule/regular.
func (h *ScheduleHandler) Regular(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, matchesOrEmpty(h.store.ScheduleByPhase("regular")))
}

// Playoffs handles GET /api/schedule/playoffs.
func (h *ScheduleHandler) Playoffs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, matchesOrEmpty(h.store.ScheduleByPhase("playoffs")))
}

// ByTeam handles GET /api/schedule/team/{name}, split by phase the way the
// original frontend expects.
func (h *ScheduleHandler) ByTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	team, ok := h.store.TeamByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Tim tidak ditemukan")
		return
	}

	regular := make([]dataset.MatchEntry, 0)
	playoffs := make([]dataset.MatchEntry, 0)
	for _, m := range h.store.MatchesFor(team.Name) {
		if m.Phase == "playoffs" {
			playoffs = append(playoffs, m)
		} else {
			regular = append(regular, m)
		}
	}

	writeJSON(w, http.StatusOK, map[string][]dataset.MatchEntry{
		"regular":  regular,
		"playoffs": playoffs,
	})
}

func matchesOrEmpty(matches []dataset.MatchEntry) []dataset.MatchEntry {
	if matches == nil {
		return []dataset.MatchEntry{}
	}
	return matches
}
