package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// TeamsHandler serves the read-only team endpoints backed by the snapshot.
type TeamsHandler struct {
	logger *observability.Logger
	store  *dataset.Store
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(logger *observability.Logger, store *dataset.Store) *TeamsHandler {
	return &TeamsHandler{logger: logger, store: store}
}

// List handles GET /api/teams.
func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Teams())
}

// Get handles GET /api/teams/{name}.
func (h *TeamsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	team, ok := h.store.TeamByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Tim tidak ditemukan")
		return
	}

	writeJSON(w, http.StatusOK, team)
}
