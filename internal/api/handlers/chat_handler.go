package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/healthmate/healthmate/internal/api/middlewares"
	"github.com/healthmate/healthmate/internal/core"
	db "github.com/healthmate/healthmate/internal/core/database"
	"github.com/healthmate/healthmate/internal/core/llm"
	"github.com/healthmate/healthmate/internal/models"
)

type ChatHandler struct {
	dbclient db.DbClient
	llm      core.LLMProvider
}

func NewChatHandler(dbclient db.DbClient, provider core.LLMProvider) *ChatHandler {
	return &ChatHandler{dbclient: dbclient, llm: provider}
}

type askRequest struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Ask forwards a chat message to the model and records the exchange.
// Nothing is written when the AI call fails.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	s := middleware.FromContext(r.Context())

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "No message provided")
		return
	}

	reply, err := h.llm.Generate(r.Context(), llm.ChatPrompt(req.Category, req.Message))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	record := &models.ChatRecord{
		UserID:      s.UserID,
		Category:    req.Category,
		UserMessage: req.Message,
		AIResponse:  reply,
	}
	if err := h.dbclient.InsertChat(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type symptomsRequest struct {
	Symptoms string `json:"symptoms"`
}

// CheckSymptoms is a one-shot call; the exchange is not persisted.
func (h *ChatHandler) CheckSymptoms(w http.ResponseWriter, r *http.Request) {
	var req symptomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	reply, err := h.llm.Generate(r.Context(), llm.SymptomPrompt(req.Symptoms))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type suggestionsRequest struct {
	Conversation string `json:"conversation"`
}

func (h *ChatHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	text, err := h.llm.Generate(r.Context(), llm.SuggestionsPrompt(req.Conversation))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	suggestions := llm.ParseSuggestions(text)
	if suggestions == nil {
		suggestions = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}
