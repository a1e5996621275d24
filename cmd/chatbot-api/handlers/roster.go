package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// RosterHandler serves the read-only roster endpoints.
type RosterHandler struct {
	logger *observability.Logger
	store  *dataset.Store
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(logger *observability.Logger, store *dataset.Store) *RosterHandler {
	return &RosterHandler{logger: logger, store: store}
}

// List handles GET /api/roster.
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Rosters())
}

// Get handles GET /api/roster/{team}.
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "team")

	team, ok := h.store.TeamByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Roster tim tidak ditemukan")
		return
	}

	roster, ok := h.store.Roster(team.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "Roster tim tidak ditemukan")
		return
	}

	writeJSON(w, http.StatusOK, roster)
}
