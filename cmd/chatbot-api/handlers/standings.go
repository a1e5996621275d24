package handlers

import (
	"net/http"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/dataset"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// StandingsHandler serves the read-only standings endpoint.
type StandingsHandler struct {
	logger *observability.Logger
	store  *dataset.Store
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(logger *observability.Logger, store *dataset.Store) *StandingsHandler {
	return &StandingsHandler{logger: logger, store: store}
}

// List handles GET /api/standings, in stored rank order.
func (h *StandingsHandler) List(w http.ResponseWriter, r *http.Request) {
	standings := h.store.Standings()
	if standings == nil {
		standings = []dataset.StandingEntry{}
	}
	writeJSON(w, http.StatusOK, standings)
}
