package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HafizhRaihan31/Chatbot-MPL/internal/chat"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/llm"
	"github.com/HafizhRaihan31/Chatbot-MPL/internal/observability"
)

// Provider error messages shown to users. Internal error text never leaks.
const (
	msgEmptyQuestion    = "Pertanyaan tidak boleh kosong"
	msgQuotaExceeded    = "Kuota layanan AI habis. Coba lagi nanti."
	msgModelUnavailable = "Model AI tidak tersedia saat ini."
	msgProviderTimeout  = "Permintaan ke layanan AI melebihi batas waktu. Coba lagi."
	msgProviderUnknown  = "Terjadi kesalahan pada layanan AI."
)

// ChatHandler handles the hybrid chat endpoint.
type ChatHandler struct {
	logger *observability.Logger
	router *chat.Router
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(logger *observability.Logger, router *chat.Router) *ChatHandler {
	return &ChatHandler{logger: logger, router: router}
}

type chatRequest struct {
	Message  string `json:"message"`
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmptyQuestion)
		return
	}

	message := req.Message
	if message == "" {
		message = req.Question
	}

	answer, err := h.router.Answer(ctx, message)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

func (h *ChatHandler) respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, chat.ErrEmptyQuestion) {
		writeError(w, http.StatusBadRequest, msgEmptyQuestion)
		return
	}

	switch llm.Classify(err) {
	case llm.KindQuotaExceeded:
		writeError(w, http.StatusTooManyRequests, msgQuotaExceeded)
	case llm.KindModelUnavailable:
		writeError(w, http.StatusInternalServerError, msgModelUnavailable)
	case llm.KindTimeout:
		writeError(w, http.StatusGatewayTimeout, msgProviderTimeout)
	default:
		writeError(w, http.StatusInternalServerError, msgProviderUnknown)
	}
}
